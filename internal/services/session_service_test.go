package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PizzaBo93/posapppizza/internal/models"
	"github.com/PizzaBo93/posapppizza/internal/services"
)

const testSecret = "unit-test-secret"

func newSessionService(t *testing.T, ttl time.Duration) *services.SessionService {
	t.Helper()
	return services.NewSessionService(testSecret, "HS256", ttl, zerolog.Nop())
}

func testUser() *models.User {
	return &models.User{
		ID:        7,
		Username:  "alice",
		FullName:  "Alice Smith",
		StoreCode: "S1",
		Role:      "manager",
		Permissions: models.Permissions{
			CanCreateOrder: true,
			CanEditOrder:   true,
			CanViewOrders:  true,
			CanPayOrder:    true,
			CanViewReports: true,
			CanManageCash:  true,
		},
	}
}

// signToken builds a token outside the service, so expiry and secret can be
// forced to arbitrary values.
func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":    7,
		"username":   "alice",
		"store_code": "S1",
		"role":       "staff",
		"exp":        expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestSessionRoundTrip(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	token, err := svc.CreateSession(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.DecodeSession(token)
	require.NoError(t, err)
	assert.Equal(t, testUser(), user)
}

func TestDecodeSessionMissingToken(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	_, err := svc.DecodeSession("")
	assert.ErrorIs(t, err, services.ErrNoToken)
}

func TestDecodeSessionAcceptedBeforeExpiry(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	token := signToken(t, testSecret, time.Now().Add(time.Second))
	_, err := svc.DecodeSession(token)
	assert.NoError(t, err)
}

func TestDecodeSessionExpired(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	token := signToken(t, testSecret, time.Now().Add(-time.Second))
	_, err := svc.DecodeSession(token)
	assert.ErrorIs(t, err, services.ErrTokenExpired)
}

func TestDecodeSessionWrongSecretIsInvalid(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	token := signToken(t, "some-other-secret", time.Now().Add(time.Hour))
	_, err := svc.DecodeSession(token)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
}

func TestDecodeSessionWrongSecretAndExpiredIsStillInvalid(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	token := signToken(t, "some-other-secret", time.Now().Add(-time.Hour))
	_, err := svc.DecodeSession(token)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
	assert.NotErrorIs(t, err, services.ErrTokenExpired)
}

func TestDecodeSessionGarbage(t *testing.T) {
	svc := newSessionService(t, time.Hour)

	_, err := svc.DecodeSession("not.a.token")
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
}

func TestUnsupportedAlgorithmFallsBackToHMAC(t *testing.T) {
	svc := services.NewSessionService(testSecret, "RS256", time.Hour, zerolog.Nop())

	token, err := svc.CreateSession(testUser())
	require.NoError(t, err)

	_, err = svc.DecodeSession(token)
	assert.NoError(t, err)
}
