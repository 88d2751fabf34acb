package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ReportRepository определяет контракт для хранения сообщений очевидцев
type ReportRepository interface {
	Create(ctx context.Context, report *models.BystanderReport) error
}

// TagCatalog проверяет теги происшествий
type TagCatalog interface {
	HasTag(tag string) bool
}

// ReportService определяет контракт приема сообщений очевидцев
type ReportService interface {
	SubmitReport(ctx context.Context, input models.ReportInput) (*models.BystanderReport, error)
}

type reportService struct {
	repo      ReportRepository
	catalog   TagCatalog
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewReportService(repo ReportRepository, catalog TagCatalog, publisher webhook.Publisher, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// SubmitReport сохраняет сообщение и оповещает командный центр
func (s *reportService) SubmitReport(ctx context.Context, input models.ReportInput) (*models.BystanderReport, error) {
	draft := models.NewReportDraft()
	if input.Tag != "" {
		draft.Tag = input.Tag
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
		"tag":     draft.Tag,
	})
	log.Info("Accepting bystander report")

	if !s.catalog.HasTag(draft.Tag) {
		log.Warn("Bystander report with unknown incident tag")
		return nil, fmt.Errorf("%w: %q", ErrUnknownIncidentTag, draft.Tag)
	}

	draft.Description = input.Description
	draft.Contact = input.Contact
	if input.VoiceNote {
		draft.ToggleVoice()
	}
	report := draft.Submit(input.Location)

	if err := s.repo.Create(ctx, &report); err != nil {
		log.WithError(err).Error("Failed to create bystander report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}
	log = log.WithField("report_id", report.ID)

	event := webhook.Event{
		Type: webhook.EventBystanderReport,
		Report: &webhook.ReportPayload{
			ID:          report.ID.String(),
			Tag:         report.Tag,
			Description: report.Description,
			Contact:     report.Contact,
		},
		Timestamp: time.Now().UTC(),
	}
	if report.Location != nil {
		lat, lon := report.Location.Latitude, report.Location.Longitude
		event.Latitude, event.Longitude = &lat, &lon
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// сообщение уже сохранено, командный центр увидит его в общей ленте
		log.WithError(err).Error("Failed to publish bystander report event")
	}

	log.Info("Bystander report accepted")
	return &report, nil
}
