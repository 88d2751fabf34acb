package v1

import (
	"time"

	"github.com/shenikar/jeevan_setu/internal/geo"
	"github.com/shenikar/jeevan_setu/internal/models"
)

// DTOToRegistration преобразует DTO регистрации в доменную модель
func DTOToRegistration(dto RegisterRequest) models.Registration {
	return models.Registration{
		Name:            dto.Name,
		Phone:           dto.Phone,
		Password:        dto.Password,
		ConfirmPassword: dto.ConfirmPassword,
		Role:            models.Role(dto.Role),
	}
}

// ModelToAuthResponse преобразует результат входа в DTO для ответа
func ModelToAuthResponse(result *models.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Role:      string(result.User.Role),
		Landing:   result.Landing,
		User: UserResponse{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Phone: result.User.Phone,
			Role:  string(result.User.Role),
		},
	}
}

// DTOToReportInput преобразует DTO сообщения очевидца в доменную модель
func DTOToReportInput(dto ReportRequest) models.ReportInput {
	input := models.ReportInput{
		Tag:         dto.Tag,
		Description: dto.Description,
		Contact:     dto.Contact,
		VoiceNote:   dto.VoiceNote,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		input.Location = &models.Location{
			Latitude:       *dto.Latitude,
			Longitude:      *dto.Longitude,
			AccuracyMeters: dto.AccuracyMeters,
		}
	}
	return input
}

func modelToLocationResponse(loc *models.Location) *LocationResponse {
	if loc == nil {
		return nil
	}
	return &LocationResponse{
		Latitude:       loc.Latitude,
		Longitude:      loc.Longitude,
		AccuracyMeters: loc.AccuracyMeters,
	}
}

// ModelToReportResponse преобразует сообщение очевидца в DTO для ответа
func ModelToReportResponse(report *models.BystanderReport) *ReportResponse {
	return &ReportResponse{
		ID:          report.ID,
		Tag:         report.Tag,
		Description: report.Description,
		Contact:     report.Contact,
		Location:    modelToLocationResponse(report.Location),
		CreatedAt:   report.CreatedAt,
	}
}

func modelsToTimelineResponses(timeline []models.TimelineEntry) []TimelineEntryResponse {
	responses := make([]TimelineEntryResponse, len(timeline))
	for i, entry := range timeline {
		responses[i] = TimelineEntryResponse{
			Label:     entry.Label,
			Detail:    entry.Detail,
			Status:    string(entry.Status),
			Timestamp: entry.Timestamp,
		}
	}
	return responses
}

// ModelToWatchOptionsResponse преобразует параметры подписки в DTO
func ModelToWatchOptionsResponse(opts geo.WatchOptions) WatchOptionsResponse {
	return WatchOptionsResponse{
		HighAccuracy: opts.HighAccuracy,
		MaximumAgeMs: opts.MaximumAge.Milliseconds(),
	}
}

// ModelToConsoleResponse преобразует состояние консоли в DTO для ответа
func ModelToConsoleResponse(view *models.ConsoleView, opts geo.WatchOptions) *ConsoleResponse {
	return &ConsoleResponse{
		DispatchID:  view.DispatchID,
		Phase:       string(view.Phase),
		ButtonLabel: view.ButtonLabel,
		Timeline:    modelsToTimelineResponses(view.Timeline),
		AbortReason: view.AbortReason,
		TriggeredAt: view.TriggeredAt,
		Location: PositionStateResponse{
			Status:         view.Location.Status,
			Summary:        view.Location.Summary,
			Tone:           view.Location.Tone,
			Latitude:       view.Location.Latitude,
			Longitude:      view.Location.Longitude,
			AccuracyMeters: view.Location.AccuracyMeters,
		},
		WatchOptions: ModelToWatchOptionsResponse(opts),
	}
}

// DTOToFix преобразует отметку устройства в доменную модель. Без времени отметка считается текущей.
func DTOToFix(dto FixRequest, now time.Time) geo.Fix {
	fix := geo.Fix{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		Accuracy:  dto.AccuracyMeters,
		Timestamp: now,
	}
	if dto.Timestamp != nil {
		fix.Timestamp = *dto.Timestamp
	}
	return fix
}

// ModelToDispatchResponse преобразует запись вызова в DTO для ответа
func ModelToDispatchResponse(d *models.Dispatch) *DispatchResponse {
	hospitals := d.Hospitals
	if hospitals == nil {
		hospitals = []string{}
	}
	return &DispatchResponse{
		ID:          d.ID,
		PatientID:   d.PatientID,
		Phase:       string(d.Phase),
		Timeline:    modelsToTimelineResponses(d.Timeline),
		Location:    modelToLocationResponse(d.Location),
		Hospitals:   hospitals,
		AbortReason: d.AbortReason,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ModelsToDispatchResponses преобразует слайс моделей в слайс DTO
func ModelsToDispatchResponses(dispatches []*models.Dispatch) []*DispatchResponse {
	responses := make([]*DispatchResponse, len(dispatches))
	for i, d := range dispatches {
		responses[i] = ModelToDispatchResponse(d)
	}
	return responses
}

// ModelToProfileResponse преобразует профиль в DTO для ответа
func ModelToProfileResponse(profile *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:      profile.UserID,
		Draft:       profile.Draft,
		SubmittedAt: profile.SubmittedAt,
	}
}
