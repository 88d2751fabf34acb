package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/service"
)

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{db: db}
}

// Upsert сохраняет текущее состояние вызова. created_at не меняется при обновлении.
func (r *DispatchRepository) Upsert(ctx context.Context, d *models.Dispatch) error {
	query := `
		INSERT INTO dispatches (id, patient_id, phase, timeline, location, hospitals, abort_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			phase = EXCLUDED.phase,
			timeline = EXCLUDED.timeline,
			location = EXCLUDED.location,
			hospitals = EXCLUDED.hospitals,
			abort_reason = EXCLUDED.abort_reason,
			updated_at = EXCLUDED.updated_at;
	`
	hospitals := d.Hospitals
	if hospitals == nil {
		hospitals = []string{}
	}
	_, err := r.db.Exec(ctx, query,
		d.ID,
		d.PatientID,
		d.Phase,
		d.Timeline,
		d.Location,
		hospitals,
		d.AbortReason,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert dispatch: %w", err)
	}
	return nil
}

// ListByPhase возвращает вызовы в заданных фазах, новые первыми. Пустой список фаз - все вызовы.
func (r *DispatchRepository) ListByPhase(ctx context.Context, phases []models.Phase, page, pageSize int) ([]*models.Dispatch, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			patient_id,
			phase,
			timeline,
			location,
			hospitals,
			abort_reason,
			created_at,
			updated_at
		FROM dispatches
		WHERE cardinality($1::text[]) = 0 OR phase = ANY($1::text[])
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, phaseNames(phases), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()

	dispatches := make([]*models.Dispatch, 0)
	for rows.Next() {
		d := &models.Dispatch{}
		err := rows.Scan(
			&d.ID,
			&d.PatientID,
			&d.Phase,
			&d.Timeline,
			&d.Location,
			&d.Hospitals,
			&d.AbortReason,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return dispatches, nil
}

// CountTriggeringPatients возвращает количество уникальных пациентов, вызывавших помощь за последние minutes минут
func (r *DispatchRepository) CountTriggeringPatients(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT patient_id)
		FROM dispatches
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get dispatch stats: %w", err)
	}
	return count, nil
}

func phaseNames(phases []models.Phase) []string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = string(p)
	}
	return names
}
