package service

import "errors"

// Сообщения формы профиля, которые видит пациент
const (
	MsgStepIncomplete  = "Complete required fields before continuing."
	MsgTooFewHospitals = "Please ensure at least two preferred hospitals are selected."
)

var (
	// ErrNotFound возвращается репозиториями, когда запись не найдена
	ErrNotFound = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPhoneTaken         = errors.New("phone number is already registered")
	ErrInvalidRole        = errors.New("unknown role")
	ErrSessionRevoked     = errors.New("session has been revoked")

	ErrConsoleNotFound       = errors.New("emergency console is not open")
	ErrInvalidPositionReason = errors.New("unknown position error reason")

	ErrStepIncomplete  = errors.New("profile step is incomplete")
	ErrTooFewHospitals = errors.New("too few preferred hospitals")
	ErrUnknownStep     = errors.New("unknown profile step")

	ErrUnknownIncidentTag = errors.New("unknown incident tag")
)
