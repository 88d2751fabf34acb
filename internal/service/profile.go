package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=profile.go -destination=mocks/mock_profile.go -package=mocks

//go:embed schema/profile_draft.schema.json
var profileDraftSchema []byte

const profileDraftSchemaURL = "https://jeevan-setu.local/schema/profile_draft.schema.json"

// ProfileSteps - шаги формы профиля
var ProfileSteps = []string{"Personal", "Medical & Insurance", "Preferences"}

// поля ProfileDraft, которые проверяются на каждом шаге
var stepFields = [][]string{
	{"Name", "Age", "Gender", "Address", "BloodGroup", "ContactNumber", "Email", "EmergencyContacts"},
	{"InsuranceProvider", "PolicyNumber"},
	{"PreferredHospitals"},
}

// ProfileRepository определяет контракт хранения черновика и профиля
type ProfileRepository interface {
	GetDraft(ctx context.Context, userID uuid.UUID) ([]byte, error)
	SaveDraft(ctx context.Context, userID uuid.UUID, data []byte) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
}

// ProfileService определяет контракт для заполнения медицинского профиля
type ProfileService interface {
	LoadDraft(ctx context.Context, userID uuid.UUID) (models.ProfileDraft, error)
	SaveDraft(ctx context.Context, userID uuid.UUID, draft models.ProfileDraft) error
	ToggleHospital(ctx context.Context, userID uuid.UUID, hospital string) (models.ProfileDraft, error)
	ValidateStep(draft models.ProfileDraft, step int) error
	Submit(ctx context.Context, userID uuid.UUID, draft models.ProfileDraft) (*models.Profile, error)
	Summary(ctx context.Context, userID uuid.UUID) ([]models.SummaryRow, error)
	PatientHospitals(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// StepError - шаг формы заполнен не полностью
type StepError struct {
	Step   int
	Fields []string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v: %s", e.Step, ProfileSteps[e.Step], e.Err, strings.Join(e.Fields, ", "))
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type profileService struct {
	repo     ProfileRepository
	logger   *logrus.Logger
	validate *validator.Validate
	schema   *jsonschema.Schema
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) (ProfileService, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(profileDraftSchemaURL, bytes.NewReader(profileDraftSchema)); err != nil {
		return nil, fmt.Errorf("service: profile draft schema load failed: %w", err)
	}
	schema, err := c.Compile(profileDraftSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("service: profile draft schema compile failed: %w", err)
	}

	return &profileService{
		repo:     repo,
		logger:   logger,
		validate: validator.New(),
		schema:   schema,
	}, nil
}

// LoadDraft читает черновик. Сохраненные поля накладываются на значения по умолчанию,
// поврежденный черновик заменяется значениями по умолчанию.
func (s *profileService) LoadDraft(ctx context.Context, userID uuid.UUID) (models.ProfileDraft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "LoadDraft",
		"user_id": userID,
	})

	data, err := s.repo.GetDraft(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debug("No stored draft, using defaults")
			return models.DefaultProfileDraft(), nil
		}
		log.WithError(err).Error("Failed to get profile draft from repository")
		return models.ProfileDraft{}, fmt.Errorf("service: could not load profile draft: %w", err)
	}

	draft, err := s.decodeDraft(data)
	if err != nil {
		log.WithError(err).Warn("Failed to parse patient profile draft")
		return models.DefaultProfileDraft(), nil
	}
	return draft, nil
}

func (s *profileService) decodeDraft(data []byte) (models.ProfileDraft, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.ProfileDraft{}, fmt.Errorf("malformed draft json: %w", err)
	}
	if err := s.schema.Validate(raw); err != nil {
		return models.ProfileDraft{}, fmt.Errorf("draft does not match schema: %w", err)
	}

	draft := models.DefaultProfileDraft()
	if err := json.Unmarshal(data, &draft); err != nil {
		return models.ProfileDraft{}, fmt.Errorf("failed to overlay draft: %w", err)
	}
	return draft, nil
}

// SaveDraft сохраняет черновик
func (s *profileService) SaveDraft(ctx context.Context, userID uuid.UUID, draft models.ProfileDraft) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SaveDraft",
		"user_id": userID,
	})

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("service: could not encode profile draft: %w", err)
	}
	if err := s.repo.SaveDraft(ctx, userID, data); err != nil {
		log.WithError(err).Error("Failed to save profile draft in repository")
		return fmt.Errorf("service: could not save profile draft: %w", err)
	}
	log.Debug("Profile draft saved")
	return nil
}

// ToggleHospital добавляет больницу в предпочитаемые или убирает ее оттуда
func (s *profileService) ToggleHospital(ctx context.Context, userID uuid.UUID, hospital string) (models.ProfileDraft, error) {
	draft, err := s.LoadDraft(ctx, userID)
	if err != nil {
		return models.ProfileDraft{}, err
	}

	if i := slices.Index(draft.PreferredHospitals, hospital); i >= 0 {
		draft.PreferredHospitals = slices.Delete(slices.Clone(draft.PreferredHospitals), i, i+1)
	} else {
		draft.PreferredHospitals = append(slices.Clone(draft.PreferredHospitals), hospital)
	}

	if err := s.SaveDraft(ctx, userID, draft); err != nil {
		return models.ProfileDraft{}, err
	}
	return draft, nil
}

// ValidateStep проверяет обязательные поля шага
func (s *profileService) ValidateStep(draft models.ProfileDraft, step int) error {
	if step < 0 || step >= len(stepFields) {
		return ErrUnknownStep
	}

	err := s.validate.StructPartial(draft, stepFields[step]...)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("service: could not validate step: %w", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := jsonFieldName(fe.StructField())
		if !slices.Contains(fields, name) {
			fields = append(fields, name)
		}
	}
	return &StepError{Step: step, Fields: fields, Err: ErrStepIncomplete}
}

// Submit проверяет все шаги и сохраняет профиль
func (s *profileService) Submit(ctx context.Context, userID uuid.UUID, draft models.ProfileDraft) (*models.Profile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "Submit",
		"user_id": userID,
	})
	log.Info("Attempting to submit patient profile")

	for step := range stepFields {
		if err := s.ValidateStep(draft, step); err != nil {
			var stepErr *StepError
			if errors.As(err, &stepErr) && step == len(stepFields)-1 {
				stepErr.Err = ErrTooFewHospitals
			}
			log.WithError(err).Warn("Profile submission rejected")
			return nil, err
		}
	}

	if err := s.SaveDraft(ctx, userID, draft); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:      userID,
		Draft:       draft,
		SubmittedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to save profile in repository")
		return nil, fmt.Errorf("service: could not save profile: %w", err)
	}

	log.Info("Patient profile submitted successfully")
	return profile, nil
}

// Summary возвращает сводку черновика
func (s *profileService) Summary(ctx context.Context, userID uuid.UUID) ([]models.SummaryRow, error) {
	draft, err := s.LoadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SummarizeDraft(draft), nil
}

// PatientHospitals - больницы для оповещения: из отправленного профиля, иначе из черновика
func (s *profileService) PatientHospitals(ctx context.Context, userID uuid.UUID) ([]string, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return profile.Draft.AllHospitals(), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	draft, err := s.LoadDraft(ctx, userID)
	if err != nil {
		return nil, err
	}
	return draft.AllHospitals(), nil
}

// SummarizeDraft строит строки сводки профиля
func SummarizeDraft(draft models.ProfileDraft) []models.SummaryRow {
	medical := "Pending"
	if draft.HeartConditions != "" || draft.Diabetes || draft.BPIssues {
		medical = "Captured"
	}
	insurance := "Not provided"
	if draft.HasInsurance {
		insurance = "Ready"
	}

	var devices []string
	if draft.AllowLocation {
		devices = append(devices, "GPS")
	}
	if draft.AllowSMS {
		devices = append(devices, "SMS")
	}
	if draft.WearablePaired {
		devices = append(devices, "Wearable")
	}
	deviceSettings := strings.Join(devices, ", ")
	if deviceSettings == "" {
		deviceSettings = "Pending"
	}

	return []models.SummaryRow{
		{Label: "Medical history", Value: medical},
		{Label: "Insurance", Value: insurance},
		{Label: "Hospitals", Value: fmt.Sprintf("%d preferred", len(draft.PreferredHospitals))},
		{Label: "Device settings", Value: deviceSettings},
	}
}

// ParseAdditionalHospitals разбирает список больниц через запятую
func ParseAdditionalHospitals(text string) []string {
	hospitals := make([]string, 0)
	for _, h := range strings.Split(text, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hospitals = append(hospitals, h)
		}
	}
	return hospitals
}

var profileDraftType = reflect.TypeOf(models.ProfileDraft{})

// jsonFieldName переводит имя поля структуры в имя поля черновика
func jsonFieldName(structField string) string {
	if i := strings.IndexByte(structField, '['); i >= 0 {
		structField = structField[:i]
	}
	f, ok := profileDraftType.FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return structField
	}
	return name
}
