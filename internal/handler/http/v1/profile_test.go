package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetDraft(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := loginAs(m, models.RolePatient)
	draft := models.DefaultProfileDraft()
	draft.Name = "Ravi"

	m.profile.EXPECT().LoadDraft(gomock.Any(), sess.UserID).Return(draft, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/profile/draft", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.ProfileDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ravi", resp.Name)
}

func TestGetDraft_RequiresPatient(t *testing.T) {
	_, m, router := newTestHandler(t)
	_, headers := loginAs(m, models.RoleHospital)

	m.profile.EXPECT().LoadDraft(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/profile/draft", nil, headers)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSaveDraft(t *testing.T) {
	t.Run("additional hospitals text is split", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		sess, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().
			SaveDraft(gomock.Any(), sess.UserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, draft models.ProfileDraft) error {
				assert.Equal(t, "Ravi", draft.Name)
				assert.Equal(t, []string{"Apollo", "Fortis"}, draft.AdditionalHospitals)
				return nil
			}).Times(1)

		w := makeRequest(router, "PUT", "/api/v1/profile/draft",
			jsonBody(t, map[string]any{"name": "Ravi", "additionalHospitalsText": " Apollo , ,Fortis "}), headers)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"additionalHospitals":["Apollo","Fortis"]`)
	})

	t.Run("partial draft is accepted", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().SaveDraft(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		w := makeRequest(router, "PUT", "/api/v1/profile/draft", jsonBody(t, map[string]any{"diabetes": true}), headers)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().SaveDraft(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "PUT", "/api/v1/profile/draft", jsonBody(t, map[string]any{"emergencyContacts": "nobody"}), headers)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestToggleHospital(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := loginAs(m, models.RolePatient)
	draft := models.DefaultProfileDraft()
	draft.PreferredHospitals = []string{"City Care"}

	m.profile.EXPECT().ToggleHospital(gomock.Any(), sess.UserID, "City Care").Return(draft, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/profile/draft/hospitals/toggle", jsonBody(t, ToggleHospitalRequest{Hospital: "City Care"}), headers)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"preferredHospitals":["City Care"]`)
}

func TestValidateStep(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		sess, headers := loginAs(m, models.RolePatient)
		draft := models.DefaultProfileDraft()

		m.profile.EXPECT().LoadDraft(gomock.Any(), sess.UserID).Return(draft, nil).Times(1)
		m.profile.EXPECT().ValidateStep(draft, 2).Return(nil).Times(1)

		w := makeRequest(router, "POST", "/api/v1/profile/steps/2/validate", nil, headers)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"step":2,"name":"Preferences","valid":true}`, w.Body.String())
	})

	t.Run("incomplete", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().LoadDraft(gomock.Any(), gomock.Any()).Return(models.DefaultProfileDraft(), nil).Times(1)
		m.profile.EXPECT().
			ValidateStep(gomock.Any(), 0).
			Return(&service.StepError{Step: 0, Fields: []string{"name", "email"}, Err: service.ErrStepIncomplete}).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/profile/steps/0/validate", nil, headers)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp StepValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Valid)
		assert.Equal(t, "Personal", resp.Name)
		assert.Equal(t, []string{"name", "email"}, resp.Fields)
		assert.Equal(t, service.MsgStepIncomplete, resp.Message)
	})

	t.Run("unknown step", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().LoadDraft(gomock.Any(), gomock.Any()).Return(models.DefaultProfileDraft(), nil).Times(1)
		m.profile.EXPECT().ValidateStep(gomock.Any(), 7).Return(service.ErrUnknownStep).Times(1)

		w := makeRequest(router, "POST", "/api/v1/profile/steps/7/validate", nil, headers)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric step", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().LoadDraft(gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/profile/steps/first/validate", nil, headers)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSubmitProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		sess, headers := loginAs(m, models.RolePatient)
		draft := models.DefaultProfileDraft()
		submittedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		m.profile.EXPECT().LoadDraft(gomock.Any(), sess.UserID).Return(draft, nil).Times(1)
		m.profile.EXPECT().
			Submit(gomock.Any(), sess.UserID, draft).
			Return(&models.Profile{UserID: sess.UserID, Draft: draft, SubmittedAt: submittedAt}, nil).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/profile", nil, headers)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, sess.UserID, resp.UserID)
		assert.True(t, submittedAt.Equal(resp.SubmittedAt))
	})

	t.Run("too few hospitals", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().LoadDraft(gomock.Any(), gomock.Any()).Return(models.DefaultProfileDraft(), nil).Times(1)
		m.profile.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &service.StepError{Step: 2, Fields: []string{"preferredHospitals"}, Err: service.ErrTooFewHospitals}).
			Times(1)

		w := makeRequest(router, "POST", "/api/v1/profile", nil, headers)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), service.MsgTooFewHospitals)
	})

	t.Run("draft storage down", func(t *testing.T) {
		_, m, router := newTestHandler(t)
		_, headers := loginAs(m, models.RolePatient)

		m.profile.EXPECT().LoadDraft(gomock.Any(), gomock.Any()).Return(models.ProfileDraft{}, errors.New("redis down")).Times(1)
		m.profile.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := makeRequest(router, "POST", "/api/v1/profile", nil, headers)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProfileSummary(t *testing.T) {
	_, m, router := newTestHandler(t)
	sess, headers := loginAs(m, models.RolePatient)
	rows := []models.SummaryRow{
		{Label: "Medical History", Value: "Diabetes"},
		{Label: "Insurance", Value: "Active"},
	}

	m.profile.EXPECT().Summary(gomock.Any(), sess.UserID).Return(rows, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/profile/summary", nil, headers)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, service.ProfileSteps, resp.Steps)
	assert.Equal(t, rows, resp.Rows)
}
