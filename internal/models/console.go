package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationView - состояние геопозиции пациента для экрана
type LocationView struct {
	Status         string
	Summary        string
	Tone           string
	Latitude       *float64
	Longitude      *float64
	AccuracyMeters *float64
}

// ConsoleView - состояние экстренной консоли пациента
type ConsoleView struct {
	DispatchID  uuid.UUID
	Phase       Phase
	ButtonLabel string
	Timeline    []TimelineEntry
	AbortReason string
	TriggeredAt *time.Time
	Location    LocationView
}
