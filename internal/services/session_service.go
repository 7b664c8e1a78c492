package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/PizzaBo93/posapppizza/internal/models"
)

var (
	ErrNoToken      = errors.New("no session token")
	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("invalid session token")
)

// SessionClaims is the signed payload of a session token. The claims are not
// encrypted; anything placed here is readable by the cookie holder.
type SessionClaims struct {
	UserID      int                `json:"user_id"`
	Username    string             `json:"username"`
	FullName    string             `json:"full_name,omitempty"`
	StoreCode   string             `json:"store_code,omitempty"`
	Role        string             `json:"role"`
	Permissions models.Permissions `json:"permissions"`
	jwt.RegisteredClaims
}

type SessionService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(secret, algorithm string, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if secret == "" {
		secret = "default-secret-key-change-in-production"
		logger.Warn().Msg("JWT_SECRET not set, using default key")
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		logger.Warn().Str("algorithm", algorithm).Msg("Unsupported signing algorithm, using HS256")
		method = jwt.SigningMethodHS256
	}

	return &SessionService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		logger: logger,
	}
}

// TTL reports the configured session lifetime, used for cookie max-age.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// CreateSession mints a signed token embedding the identity and its
// permission set, expiring after the configured TTL.
func (s *SessionService) CreateSession(user *models.User) (string, error) {
	now := time.Now()

	claims := &SessionClaims{
		UserID:      user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		StoreCode:   user.StoreCode,
		Role:        user.Role,
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error signing session token")
		return "", err
	}

	return tokenString, nil
}

// DecodeSession verifies signature and expiry and rebuilds the identity.
// Returns ErrNoToken for an absent token, ErrTokenExpired past TTL and
// ErrTokenInvalid for every other failure. A token signed with the wrong
// secret is always ErrTokenInvalid, even when also expired.
func (s *SessionService) DecodeSession(tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return &models.User{
		ID:          claims.UserID,
		Username:    claims.Username,
		FullName:    claims.FullName,
		StoreCode:   claims.StoreCode,
		Role:        claims.Role,
		Permissions: claims.Permissions,
	}, nil
}
