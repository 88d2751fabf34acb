package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/service"
)

const profileDraftKeyPrefix = "patient-profile-draft:"

// ProfileRepository хранит черновики в Redis, отправленные профили - в Postgres
type ProfileRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	draftTTL    time.Duration
}

func NewProfileRepository(db *pgxpool.Pool, redisClient *redis.Client, draftTTL time.Duration) service.ProfileRepository {
	return &ProfileRepository{
		db:          db,
		redisClient: redisClient,
		draftTTL:    draftTTL,
	}
}

func draftKey(userID uuid.UUID) string {
	return profileDraftKeyPrefix + userID.String()
}

// GetDraft возвращает сохраненный черновик как есть. Разбор выполняет сервис.
func (r *ProfileRepository) GetDraft(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile draft: %w", err)
	}
	return val, nil
}

// SaveDraft перезаписывает черновик и продлевает срок его хранения
func (r *ProfileRepository) SaveDraft(ctx context.Context, userID uuid.UUID, data []byte) error {
	if err := r.redisClient.Set(ctx, draftKey(userID), data, r.draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save profile draft: %w", err)
	}
	return nil
}

// GetProfile возвращает отправленный профиль пациента
func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{UserID: userID}
	query := `
		SELECT draft, submitted_at
		FROM patient_profiles
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&profile.Draft, &profile.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient profile: %w", err)
	}
	return profile, nil
}

// SaveProfile сохраняет профиль, повторная отправка его заменяет
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO patient_profiles (user_id, draft, submitted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			draft = EXCLUDED.draft,
			submitted_at = EXCLUDED.submitted_at;
	`
	if _, err := r.db.Exec(ctx, query, profile.UserID, profile.Draft, profile.SubmittedAt); err != nil {
		return fmt.Errorf("failed to save patient profile: %w", err)
	}
	return nil
}
