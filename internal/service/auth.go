package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/shenikar/jeevan_setu/internal/session"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mocks/mock_auth.go -package=mocks

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
}

// RevocationStore хранит отозванные токены до истечения их срока
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ConsoleCloser закрывает консоль пациента при выходе из системы
type ConsoleCloser interface {
	CloseConsole(ctx context.Context, userID uuid.UUID) error
}

// AuthService определяет контракт для входа, регистрации и проверки сессий
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*models.AuthResult, error)
	Register(ctx context.Context, input models.Registration) (*models.AuthResult, error)
	Logout(ctx context.Context, sess session.Session) error
	Authenticate(ctx context.Context, token string) (session.Session, error)
	EnsureDemoAccounts(ctx context.Context) error
}

// demoAccount - учетная запись для демонстрации
type demoAccount struct {
	name     string
	phone    string
	password string
	role     models.Role
}

var demoAccounts = []demoAccount{
	{name: "Demo Patient", phone: "1234567890", password: "patient123", role: models.RolePatient},
	{name: "Demo Driver", phone: "9876543210", password: "driver123", role: models.RoleDriver},
	{name: "Demo Hospital", phone: "1122334455", password: "hospital123", role: models.RoleHospital},
}

type authService struct {
	users      UserRepository
	revoked    RevocationStore
	consoles   ConsoleCloser
	tokens     *session.TokenManager
	logger     *logrus.Logger
	bcryptCost int
}

func NewAuthService(users UserRepository, revoked RevocationStore, consoles ConsoleCloser, tokens *session.TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		users:      users,
		revoked:    revoked,
		consoles:   consoles,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Login проверяет телефон и пароль и выпускает токен
func (s *authService) Login(ctx context.Context, phone, password string) (*models.AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
	})
	log.Info("Attempting to log in")

	user, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown phone")
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	result, err := s.issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return nil, err
	}
	log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User logged in")
	return result, nil
}

// Register создает пользователя и сразу выполняет вход
func (s *authService) Register(ctx context.Context, input models.Registration) (*models.AuthResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"role":    input.Role,
	})
	log.Info("Attempting to register a new user")

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.createUser(ctx, input.Name, input.Phone, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, ErrPhoneTaken) {
			log.Warn("Registration with already registered phone")
			return nil, ErrPhoneTaken
		}
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	result, err := s.issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue session token")
		return nil, err
	}
	log.WithField("user_id", user.ID).Info("User registered successfully")
	return result, nil
}

// Logout отзывает токен и закрывает консоль пациента
func (s *authService) Logout(ctx context.Context, sess session.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
		"user_id": sess.UserID,
	})

	if err := s.revoked.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		log.WithError(err).Error("Failed to revoke session token")
		return fmt.Errorf("service: could not revoke session: %w", err)
	}

	if sess.Role == models.RolePatient && s.consoles != nil {
		if err := s.consoles.CloseConsole(ctx, sess.UserID); err != nil && !errors.Is(err, ErrConsoleNotFound) {
			log.WithError(err).Warn("Failed to close emergency console on logout")
		}
	}
	log.Info("User logged out")
	return nil
}

// Authenticate проверяет токен и что он не отозван
func (s *authService) Authenticate(ctx context.Context, token string) (session.Session, error) {
	sess, err := s.tokens.Parse(token)
	if err != nil {
		return session.Session{}, err
	}
	revoked, err := s.revoked.IsRevoked(ctx, sess.TokenID)
	if err != nil {
		return session.Session{}, fmt.Errorf("service: could not check token revocation: %w", err)
	}
	if revoked {
		return session.Session{}, ErrSessionRevoked
	}
	return sess, nil
}

// EnsureDemoAccounts создает демо-пользователей, если их еще нет
func (s *authService) EnsureDemoAccounts(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "EnsureDemoAccounts",
	})

	created := 0
	for _, acc := range demoAccounts {
		_, err := s.users.GetByPhone(ctx, acc.phone)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("service: could not check demo account %s: %w", acc.role, err)
		}
		if _, err := s.createUser(ctx, acc.name, acc.phone, acc.password, acc.role); err != nil && !errors.Is(err, ErrPhoneTaken) {
			return fmt.Errorf("service: could not seed demo account %s: %w", acc.role, err)
		}
		created++
	}
	log.WithField("created", created).Info("Demo accounts ensured")
	return nil
}

func (s *authService) createUser(ctx context.Context, name, phone, password string, role models.Role) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}
	user := &models.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrPhoneTaken) {
			return nil, ErrPhoneTaken
		}
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}
	return user, nil
}

func (s *authService) issue(user *models.User) (*models.AuthResult, error) {
	token, sess, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("service: could not issue token: %w", err)
	}
	return &models.AuthResult{
		Token:     token,
		User:      user,
		ExpiresAt: sess.ExpiresAt,
		Landing:   session.LandingPath(&sess),
	}, nil
}
