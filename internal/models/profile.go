package models

import (
	"time"

	"github.com/google/uuid"
)

// PreferredHospitalsMin - минимальное число предпочитаемых больниц в профиле
const PreferredHospitalsMin = 2

// ProfileDraft - черновик медицинского профиля пациента.
// JSON-имена совпадают с форматом черновика, который хранит клиент.
type ProfileDraft struct {
	Name              string    `json:"name" validate:"required"`
	Age               string    `json:"age" validate:"required"`
	Gender            string    `json:"gender" validate:"required"`
	Address           string    `json:"address" validate:"required"`
	BloodGroup        string    `json:"bloodGroup" validate:"required"`
	ContactNumber     string    `json:"contactNumber" validate:"required"`
	Email             string    `json:"email" validate:"required"`
	EmergencyContacts [2]string `json:"emergencyContacts" validate:"dive,required"`

	Diabetes         bool   `json:"diabetes"`
	BPIssues         bool   `json:"bpIssues"`
	HeartConditions  string `json:"heartConditions"`
	KidneyConditions string `json:"kidneyConditions"`
	Allergies        string `json:"allergies"`
	Medications      string `json:"medications"`
	Disabilities     string `json:"disabilities"`

	HasInsurance      bool   `json:"hasInsurance"`
	InsuranceProvider string `json:"insuranceProvider" validate:"required_if=HasInsurance true"`
	PolicyNumber      string `json:"policyNumber" validate:"required_if=HasInsurance true"`
	InsuranceCardName string `json:"insuranceCardName,omitempty"`
	ReportName        string `json:"reportName,omitempty"`

	PreferredHospitals  []string `json:"preferredHospitals" validate:"min=2"`
	AdditionalHospitals []string `json:"additionalHospitals"`

	AllowLocation  bool `json:"allowLocation"`
	AllowSMS       bool `json:"allowSms"`
	AllowVoice     bool `json:"allowVoice"`
	WearablePaired bool `json:"wearablePaired"`
}

// DefaultProfileDraft возвращает черновик, с которого начинается заполнение профиля
func DefaultProfileDraft() ProfileDraft {
	return ProfileDraft{
		HasInsurance:        true,
		PreferredHospitals:  []string{"City Heart Institute", "MetroCare Cardiac"},
		AdditionalHospitals: []string{},
		AllowLocation:       true,
		AllowSMS:            true,
		AllowVoice:          true,
	}
}

// AllHospitals - предпочитаемые и дополнительные больницы без повторов
func (d ProfileDraft) AllHospitals() []string {
	seen := make(map[string]struct{}, len(d.PreferredHospitals)+len(d.AdditionalHospitals))
	hospitals := make([]string, 0, len(d.PreferredHospitals)+len(d.AdditionalHospitals))
	for _, list := range [][]string{d.PreferredHospitals, d.AdditionalHospitals} {
		for _, h := range list {
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			hospitals = append(hospitals, h)
		}
	}
	return hospitals
}

// Profile - отправленный профиль пациента
type Profile struct {
	UserID      uuid.UUID    `json:"user_id"`
	Draft       ProfileDraft `json:"draft"`
	SubmittedAt time.Time    `json:"submitted_at"`
}

// SummaryRow - строка сводки профиля
type SummaryRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
