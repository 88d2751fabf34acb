package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultIncidentTag - тег, выбранный в форме очевидца по умолчанию
	DefaultIncidentTag = "Cardiac"
	// VoiceNoteText - расшифровка голосовой заметки, добавляемая в описание
	VoiceNoteText = "Voice: Victim unconscious"
)

// BystanderReport - анонимное сообщение об аварии от очевидца
type BystanderReport struct {
	ID          uuid.UUID `json:"id"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	Location    *Location `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReportDraft - черновик формы очевидца. Не сохраняется.
type ReportDraft struct {
	Tag            string
	Description    string
	Contact        string
	VoiceCapturing bool
}

// NewReportDraft возвращает пустой черновик с тегом по умолчанию
func NewReportDraft() *ReportDraft {
	return &ReportDraft{Tag: DefaultIncidentTag}
}

// ToggleVoice включает/выключает запись голоса.
// При включении расшифровка дописывается в описание с новой строки.
func (d *ReportDraft) ToggleVoice() {
	starting := !d.VoiceCapturing
	d.VoiceCapturing = starting
	if !starting {
		return
	}
	if d.Description != "" {
		d.Description = d.Description + "\n" + VoiceNoteText
		return
	}
	d.Description = VoiceNoteText
}

// Submit формирует отчет из черновика и очищает описание и контакт
func (d *ReportDraft) Submit(location *Location) BystanderReport {
	report := BystanderReport{
		Tag:         d.Tag,
		Description: d.Description,
		Contact:     d.Contact,
		Location:    location,
	}
	d.Description = ""
	d.Contact = ""
	return report
}

// ReportInput - данные формы очевидца
type ReportInput struct {
	Tag         string
	Description string
	Contact     string
	// VoiceNote - очевидец записал голосовую заметку, ее расшифровка дописывается к описанию
	VoiceNote bool
	Location  *Location
}
