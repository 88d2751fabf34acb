package models

import (
	"time"

	"github.com/google/uuid"
)

// Role - роль пользователя, определяет стартовую страницу и доступные маршруты
type Role string

const (
	RolePatient  Role = "patient"
	RoleDriver   Role = "driver"
	RoleHospital Role = "hospital"
)

// Valid сообщает, известна ли роль
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDriver, RoleHospital:
		return true
	}
	return false
}

// User представляет учетную запись пациента, водителя или больницы
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Registration - данные формы регистрации
type Registration struct {
	Name            string
	Phone           string
	Password        string
	ConfirmPassword string
	Role            Role
}

// AuthResult - результат входа или регистрации
type AuthResult struct {
	Token     string
	User      *User
	ExpiresAt time.Time
	Landing   string
}
