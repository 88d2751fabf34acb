package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// Create сохраняет сообщение очевидца
func (r *ReportRepository) Create(ctx context.Context, report *models.BystanderReport) error {
	var lat, lon, accuracy *float64
	if report.Location != nil {
		lat, lon = &report.Location.Latitude, &report.Location.Longitude
		accuracy = report.Location.AccuracyMeters
	}

	query := `
		INSERT INTO bystander_reports (tag, description, contact, latitude, longitude, accuracy_meters)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Tag,
		report.Description,
		report.Contact,
		lat,
		lon,
		accuracy,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bystander report: %w", err)
	}
	return nil
}
