// Package session выпускает и проверяет токены сессии и переносит сессию через context.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
)

const issuer = "jeevan-setu"

// ErrInvalidToken - токен не прошел проверку подписи, срока или содержит неизвестную роль
var ErrInvalidToken = errors.New("session: invalid token")

// Session - аутентифицированный пользователь текущего запроса
type Session struct {
	UserID    uuid.UUID
	Phone     string
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

// Claims - содержимое JWT сессии
type Claims struct {
	jwt.RegisteredClaims
	Phone string      `json:"phone"`
	Role  models.Role `json:"role"`
}

// TokenManager подписывает и проверяет токены HS256
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает TokenManager
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает токен для пользователя
func (tm *TokenManager) Issue(user *models.User) (string, Session, error) {
	now := time.Now().UTC()
	sess := Session{
		UserID:    user.ID,
		Phone:     user.Phone,
		Role:      user.Role,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(tm.ttl),
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   user.ID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		Phone: user.Phone,
		Role:  user.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, sess, nil
}

// Parse проверяет токен и возвращает сессию
func (tm *TokenManager) Parse(tokenString string) (Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || !claims.Role.Valid() || claims.ID == "" {
		return Session{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, fmt.Errorf("%w: bad subject: %w", ErrInvalidToken, err)
	}
	return Session{
		UserID:    userID,
		Phone:     claims.Phone,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// LandingPath - стартовая страница роли. Без сессии ведет на главную.
func LandingPath(sess *Session) string {
	if sess == nil {
		return "/"
	}
	switch sess.Role {
	case models.RolePatient:
		return "/patient/emergency"
	case models.RoleDriver:
		return "/driver/dashboard"
	case models.RoleHospital:
		return "/hospital/dashboard"
	}
	return "/"
}

type ctxKey struct{}

// WithSession кладет сессию в context
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext достает сессию из context
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(Session)
	return sess, ok
}
