package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, []string{"dispatching", "locked"}, phaseNames([]models.Phase{models.PhaseDispatching, models.PhaseLocked}))
	// пустой список передается в запрос как пустой массив, а не NULL
	assert.NotNil(t, phaseNames(nil))
	assert.Empty(t, phaseNames(nil))
}

func TestDraftKey(t *testing.T) {
	id := uuid.MustParse("7f1d6b1e-52a8-4b7e-9c35-2f0f3c4d5e6a")
	assert.Equal(t, "patient-profile-draft:7f1d6b1e-52a8-4b7e-9c35-2f0f3c4d5e6a", draftKey(id))
}

func TestRevocationTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour, revocationTTL(now.Add(time.Hour), now))
	assert.LessOrEqual(t, revocationTTL(now.Add(-time.Minute), now), time.Duration(0))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
