package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (*profileService, *mocks.MockProfileRepository, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProfileRepository(ctrl)

	logBuf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logBuf)

	svc, err := NewProfileService(repoMock, logger)
	require.NoError(t, err)
	return svc.(*profileService), repoMock, logBuf
}

func completeDraft() models.ProfileDraft {
	d := models.DefaultProfileDraft()
	d.Name = "Ravi"
	d.Age = "54"
	d.Gender = "male"
	d.Address = "12 MG Road"
	d.BloodGroup = "B+"
	d.ContactNumber = "1234567890"
	d.Email = "ravi@example.com"
	d.EmergencyContacts = [2]string{"9990001111", "9990002222"}
	d.InsuranceProvider = "Star Health"
	d.PolicyNumber = "SH-1"
	return d
}

func TestLoadDraft_Missing(t *testing.T) {
	svc, repo, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().GetDraft(ctx, userID).Return(nil, ErrNotFound)

	draft, err := svc.LoadDraft(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfileDraft(), draft)
}

func TestLoadDraft_OverlaysDefaults(t *testing.T) {
	svc, repo, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().GetDraft(ctx, userID).Return([]byte(`{"name":"Meera","allowSms":false,"emergencyContacts":["111"]}`), nil)

	draft, err := svc.LoadDraft(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Meera", draft.Name)
	assert.False(t, draft.AllowSMS)
	assert.Equal(t, [2]string{"111", ""}, draft.EmergencyContacts)
	// поля, которых нет в черновике, берутся из значений по умолчанию
	assert.True(t, draft.HasInsurance)
	assert.True(t, draft.AllowLocation)
	assert.Equal(t, []string{"City Heart Institute", "MetroCare Cardiac"}, draft.PreferredHospitals)
}

func TestLoadDraft_MalformedFallsBack(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"bad json", `{"name": `},
		{"wrong type", `{"age": 54}`},
		{"not an object", `["a"]`},
		{"too many contacts", `{"emergencyContacts": ["1", "2", "3"]}`},
		{"null hospitals", `{"preferredHospitals": null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, logBuf := newTestProfileService(t)
			ctx := context.Background()
			userID := uuid.New()
			repo.EXPECT().GetDraft(ctx, userID).Return([]byte(tt.blob), nil)

			draft, err := svc.LoadDraft(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, models.DefaultProfileDraft(), draft)
			assert.Contains(t, logBuf.String(), "Failed to parse patient profile draft")
		})
	}
}

func TestLoadDraft_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestProfileService(t)
	ctx := context.Background()
	repo.EXPECT().GetDraft(ctx, gomock.Any()).Return(nil, errors.New("redis down"))

	_, err := svc.LoadDraft(ctx, uuid.New())
	assert.Error(t, err)
}

func TestSaveDraft_RoundTrip(t *testing.T) {
	svc, repo, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	draft := completeDraft()

	var stored []byte
	repo.EXPECT().SaveDraft(ctx, userID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, data []byte) error {
		stored = data
		return nil
	})
	require.NoError(t, svc.SaveDraft(ctx, userID, draft))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(stored, &raw))
	assert.Equal(t, "Ravi", raw["name"])
	assert.Contains(t, raw, "bloodGroup")

	repo.EXPECT().GetDraft(ctx, userID).Return(stored, nil)
	loaded, err := svc.LoadDraft(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, draft, loaded)
}

func TestValidateStep(t *testing.T) {
	svc, _, _ := newTestProfileService(t)

	t.Run("complete draft passes every step", func(t *testing.T) {
		for step := range ProfileSteps {
			assert.NoError(t, svc.ValidateStep(completeDraft(), step), ProfileSteps[step])
		}
	})

	t.Run("personal step", func(t *testing.T) {
		d := completeDraft()
		d.Email = ""
		d.EmergencyContacts[1] = ""

		err := svc.ValidateStep(d, 0)
		require.ErrorIs(t, err, ErrStepIncomplete)
		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, 0, stepErr.Step)
		assert.ElementsMatch(t, []string{"email", "emergencyContacts"}, stepErr.Fields)
	})

	t.Run("insurance required only when insured", func(t *testing.T) {
		d := completeDraft()
		d.PolicyNumber = ""
		assert.ErrorIs(t, svc.ValidateStep(d, 1), ErrStepIncomplete)

		d.HasInsurance = false
		d.InsuranceProvider = ""
		assert.NoError(t, svc.ValidateStep(d, 1))
	})

	t.Run("preferences need two hospitals", func(t *testing.T) {
		d := completeDraft()
		d.PreferredHospitals = []string{"City Heart Institute"}
		assert.ErrorIs(t, svc.ValidateStep(d, 2), ErrStepIncomplete)
	})

	t.Run("steps do not check other steps", func(t *testing.T) {
		d := models.DefaultProfileDraft()
		d.InsuranceProvider = "Star Health"
		d.PolicyNumber = "SH-1"
		assert.NoError(t, svc.ValidateStep(d, 1))
		assert.NoError(t, svc.ValidateStep(d, 2))
		assert.Error(t, svc.ValidateStep(d, 0))
	})

	t.Run("unknown step", func(t *testing.T) {
		assert.ErrorIs(t, svc.ValidateStep(completeDraft(), 3), ErrUnknownStep)
		assert.ErrorIs(t, svc.ValidateStep(completeDraft(), -1), ErrUnknownStep)
	})
}

func TestSubmit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, repo, _ := newTestProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		draft := completeDraft()

		repo.EXPECT().SaveDraft(ctx, userID, gomock.Any()).Return(nil)
		repo.EXPECT().SaveProfile(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Profile) error {
			assert.Equal(t, userID, p.UserID)
			assert.Equal(t, draft, p.Draft)
			assert.False(t, p.SubmittedAt.IsZero())
			return nil
		})

		profile, err := svc.Submit(ctx, userID, draft)
		require.NoError(t, err)
		assert.Equal(t, userID, profile.UserID)
	})

	t.Run("too few hospitals", func(t *testing.T) {
		svc, _, _ := newTestProfileService(t)
		d := completeDraft()
		d.PreferredHospitals = nil

		_, err := svc.Submit(context.Background(), uuid.New(), d)
		assert.ErrorIs(t, err, ErrTooFewHospitals)
	})

	t.Run("incomplete earlier step", func(t *testing.T) {
		svc, _, _ := newTestProfileService(t)
		d := completeDraft()
		d.Name = ""

		_, err := svc.Submit(context.Background(), uuid.New(), d)
		assert.ErrorIs(t, err, ErrStepIncomplete)
	})
}

func TestToggleHospital(t *testing.T) {
	svc, repo, _ := newTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().GetDraft(ctx, userID).Return(nil, ErrNotFound).Times(2)
	repo.EXPECT().SaveDraft(ctx, userID, gomock.Any()).Return(nil).Times(2)

	draft, err := svc.ToggleHospital(ctx, userID, "Govt Trauma Center")
	require.NoError(t, err)
	assert.Equal(t, []string{"City Heart Institute", "MetroCare Cardiac", "Govt Trauma Center"}, draft.PreferredHospitals)

	draft, err = svc.ToggleHospital(ctx, userID, "City Heart Institute")
	require.NoError(t, err)
	assert.Equal(t, []string{"MetroCare Cardiac"}, draft.PreferredHospitals)
}

func TestSummarizeDraft(t *testing.T) {
	rows := SummarizeDraft(models.DefaultProfileDraft())
	assert.Equal(t, []models.SummaryRow{
		{Label: "Medical history", Value: "Pending"},
		{Label: "Insurance", Value: "Ready"},
		{Label: "Hospitals", Value: "2 preferred"},
		{Label: "Device settings", Value: "GPS, SMS"},
	}, rows)

	d := models.DefaultProfileDraft()
	d.Diabetes = true
	d.HasInsurance = false
	d.AllowLocation, d.AllowSMS = false, false
	d.PreferredHospitals = nil
	rows = SummarizeDraft(d)
	assert.Equal(t, "Captured", rows[0].Value)
	assert.Equal(t, "Not provided", rows[1].Value)
	assert.Equal(t, "0 preferred", rows[2].Value)
	assert.Equal(t, "Pending", rows[3].Value)

	d.WearablePaired = true
	assert.Equal(t, "Wearable", SummarizeDraft(d)[3].Value)
}

func TestParseAdditionalHospitals(t *testing.T) {
	assert.Equal(t, []string{"Apollo", "Fortis East"}, ParseAdditionalHospitals(" Apollo, ,Fortis East ,"))
	assert.Empty(t, ParseAdditionalHospitals(""))
	assert.NotNil(t, ParseAdditionalHospitals(" , "))
}

func TestPatientHospitals(t *testing.T) {
	t.Run("submitted profile wins", func(t *testing.T) {
		svc, repo, _ := newTestProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		d := completeDraft()
		d.AdditionalHospitals = []string{"Apollo", "MetroCare Cardiac"}
		repo.EXPECT().GetProfile(ctx, userID).Return(&models.Profile{UserID: userID, Draft: d}, nil)

		hospitals, err := svc.PatientHospitals(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"City Heart Institute", "MetroCare Cardiac", "Apollo"}, hospitals)
	})

	t.Run("falls back to draft", func(t *testing.T) {
		svc, repo, _ := newTestProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		repo.EXPECT().GetProfile(ctx, userID).Return(nil, ErrNotFound)
		repo.EXPECT().GetDraft(ctx, userID).Return(nil, ErrNotFound)

		hospitals, err := svc.PatientHospitals(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"City Heart Institute", "MetroCare Cardiac"}, hospitals)
	})
}
