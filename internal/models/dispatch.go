package models

import (
	"time"

	"github.com/google/uuid"
)

// Phase - фаза экстренного вызова
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhasePrecheck    Phase = "precheck"
	PhaseDispatching Phase = "dispatching"
	PhaseLocked      Phase = "locked"
	// PhaseAborted - терминальная фаза при сбое, таймауте или закрытии консоли
	PhaseAborted Phase = "aborted"
)

// Terminal сообщает, что из фазы больше нет переходов
func (p Phase) Terminal() bool {
	return p == PhaseLocked || p == PhaseAborted
}

// Rank - порядковый номер фазы в успешной последовательности, -1 для aborted
func (p Phase) Rank() int {
	switch p {
	case PhaseIdle:
		return 0
	case PhasePrecheck:
		return 1
	case PhaseDispatching:
		return 2
	case PhaseLocked:
		return 3
	}
	return -1
}

// EntryStatus - статус строки таймлайна
type EntryStatus string

const (
	EntryPending EntryStatus = "pending"
	EntryDone    EntryStatus = "done"
)

// TimelineEntry - строка таймлайна диспетчеризации
type TimelineEntry struct {
	Label     string      `json:"label"`
	Detail    string      `json:"detail"`
	Status    EntryStatus `json:"status"`
	Timestamp *time.Time  `json:"timestamp,omitempty"`
}

// Location - координаты устройства на момент вызова
type Location struct {
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty"`
}

// Dispatch - сохраненная запись экстренного вызова
type Dispatch struct {
	ID          uuid.UUID       `json:"id"`
	PatientID   uuid.UUID       `json:"patient_id"`
	Phase       Phase           `json:"phase"`
	Timeline    []TimelineEntry `json:"timeline"`
	Location    *Location       `json:"location,omitempty"`
	Hospitals   []string        `json:"hospitals"`
	AbortReason string          `json:"abort_reason,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
