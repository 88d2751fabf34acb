package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/jeevan_setu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(role models.Role) *models.User {
	return &models.User{
		ID:    uuid.New(),
		Name:  "Test",
		Phone: "1234567890",
		Role:  role,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := testUser(models.RoleDriver)

	token, issued, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, user.Phone, parsed.Phone)
	assert.Equal(t, models.RoleDriver, parsed.Role)
	assert.Equal(t, issued.TokenID, parsed.TokenID)
	assert.WithinDuration(t, issued.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := testUser(models.RolePatient)

	_, first, err := tm.Issue(user)
	require.NoError(t, err)
	_, second, err := tm.Issue(user)
	require.NoError(t, err)
	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := testUser(models.RolePatient)
	token, _, err := tm.Issue(user)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, _, err := NewTokenManager("secret", -time.Minute).Issue(user)
		require.NoError(t, err)
		_, err = tm.Parse(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Subject:   user.ID.String(),
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: "admin",
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = tm.Parse(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.NewString(),
				Subject:   user.ID.String(),
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: models.RolePatient,
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tm.Parse(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLandingPath(t *testing.T) {
	tests := []struct {
		name string
		sess *Session
		want string
	}{
		{"no session", nil, "/"},
		{"patient", &Session{Role: models.RolePatient}, "/patient/emergency"},
		{"driver", &Session{Role: models.RoleDriver}, "/driver/dashboard"},
		{"hospital", &Session{Role: models.RoleHospital}, "/hospital/dashboard"},
		{"unknown role", &Session{Role: "admin"}, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandingPath(tt.sess))
		})
	}
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	sess := Session{UserID: uuid.New(), Role: models.RoleHospital}
	got, ok := FromContext(WithSession(context.Background(), sess))
	require.True(t, ok)
	assert.Equal(t, sess, got)
}
