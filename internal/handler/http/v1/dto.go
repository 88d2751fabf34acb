package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
)

// LoginRequest DTO для входа
// @Description DTO для входа по телефону и паролю
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest DTO для регистрации
// @Description DTO для регистрации пациента, водителя или больницы
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	Phone           string `json:"phone" validate:"required,min=6,max=20"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role" validate:"required,oneof=patient driver hospital"`
}

// UserResponse DTO с данными пользователя
// @Description DTO с данными пользователя
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Role  string    `json:"role"`
}

// AuthResponse DTO для ответа на вход и регистрацию
// @Description DTO с токеном сессии и стартовой страницей
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Role      string       `json:"role"`
	Landing   string       `json:"landing"`
	User      UserResponse `json:"user"`
}

// LandingResponse DTO со стартовой страницей
// @Description DTO со стартовой страницей для текущей сессии
type LandingResponse struct {
	Landing string `json:"landing"`
}

// ReportRequest DTO для сообщения очевидца
// @Description DTO для анонимного сообщения очевидца
type ReportRequest struct {
	Tag            string   `json:"tag,omitempty" validate:"omitempty,max=64"`
	Description    string   `json:"description" validate:"max=2000"`
	Contact        string   `json:"contact,omitempty" validate:"max=64"`
	VoiceNote      bool     `json:"voice_note"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
}

// LocationResponse DTO с координатами
// @Description DTO с координатами
type LocationResponse struct {
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty"`
}

// ReportResponse DTO для ответа с сообщением очевидца
// @Description DTO для ответа с сообщением очевидца
type ReportResponse struct {
	ID          uuid.UUID         `json:"id"`
	Tag         string            `json:"tag"`
	Description string            `json:"description"`
	Contact     string            `json:"contact,omitempty"`
	Location    *LocationResponse `json:"location,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// OpenConsoleRequest DTO для открытия экстренной консоли
// @Description DTO для открытия экстренной консоли. Без gps_supported считается, что GPS есть.
type OpenConsoleRequest struct {
	GPSSupported *bool `json:"gps_supported,omitempty"`
}

// TimelineEntryResponse DTO строки таймлайна
// @Description DTO строки таймлайна
type TimelineEntryResponse struct {
	Label     string     `json:"label"`
	Detail    string     `json:"detail"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// PositionStateResponse DTO состояния геопозиции
// @Description DTO состояния геопозиции пациента
type PositionStateResponse struct {
	Status         string   `json:"status"`
	Summary        string   `json:"summary"`
	Tone           string   `json:"tone"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty"`
}

// WatchOptionsResponse DTO параметров подписки на позицию
// @Description DTO параметров, с которыми устройство должно отслеживать позицию
type WatchOptionsResponse struct {
	HighAccuracy bool  `json:"high_accuracy"`
	MaximumAgeMs int64 `json:"maximum_age_ms"`
}

// ConsoleResponse DTO состояния экстренной консоли
// @Description DTO состояния экстренной консоли
type ConsoleResponse struct {
	DispatchID   uuid.UUID               `json:"dispatch_id"`
	Phase        string                  `json:"phase"`
	ButtonLabel  string                  `json:"button_label"`
	Timeline     []TimelineEntryResponse `json:"timeline"`
	AbortReason  string                  `json:"abort_reason,omitempty"`
	TriggeredAt  *time.Time              `json:"triggered_at,omitempty"`
	Location     PositionStateResponse   `json:"location"`
	WatchOptions WatchOptionsResponse    `json:"watch_options"`
}

// FixRequest DTO отметки позиции от устройства
// @Description DTO отметки позиции от устройства
type FixRequest struct {
	Latitude       *float64   `json:"latitude" validate:"required,latitude"`
	Longitude      *float64   `json:"longitude" validate:"required,longitude"`
	AccuracyMeters *float64   `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

// PositionErrorRequest DTO ошибки позиционирования от устройства
// @Description DTO ошибки позиционирования от устройства
type PositionErrorRequest struct {
	Reason string `json:"reason" validate:"required,oneof=denied unavailable"`
}

// DispatchResponse DTO записи вызова
// @Description DTO записи экстренного вызова
type DispatchResponse struct {
	ID          uuid.UUID               `json:"id"`
	PatientID   uuid.UUID               `json:"patient_id"`
	Phase       string                  `json:"phase"`
	Timeline    []TimelineEntryResponse `json:"timeline"`
	Location    *LocationResponse       `json:"location,omitempty"`
	Hospitals   []string                `json:"hospitals"`
	AbortReason string                  `json:"abort_reason,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// SaveDraftRequest DTO черновика профиля.
// additionalHospitalsText, если передан, заменяет additionalHospitals.
// @Description DTO черновика профиля пациента
type SaveDraftRequest struct {
	models.ProfileDraft
	AdditionalHospitalsText *string `json:"additionalHospitalsText,omitempty"`
}

// ToggleHospitalRequest DTO для выбора предпочитаемой больницы
// @Description DTO для выбора предпочитаемой больницы
type ToggleHospitalRequest struct {
	Hospital string `json:"hospital" validate:"required,max=255"`
}

// StepValidationResponse DTO результата проверки шага
// @Description DTO результата проверки шага формы профиля
type StepValidationResponse struct {
	Step    int      `json:"step"`
	Name    string   `json:"name"`
	Valid   bool     `json:"valid"`
	Fields  []string `json:"fields,omitempty"`
	Message string   `json:"message,omitempty"`
}

// ProfileResponse DTO отправленного профиля
// @Description DTO отправленного профиля пациента
type ProfileResponse struct {
	UserID      uuid.UUID           `json:"user_id"`
	Draft       models.ProfileDraft `json:"draft"`
	SubmittedAt time.Time           `json:"submitted_at"`
}

// SummaryResponse DTO сводки профиля
// @Description DTO сводки профиля пациента
type SummaryResponse struct {
	Steps []string            `json:"steps"`
	Rows  []models.SummaryRow `json:"rows"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	PatientCount int `json:"patient_count"`
}
