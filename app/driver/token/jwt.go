package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio-api/app/domain"
	"portfolio-api/app/port"
)

// Config holds token signing configuration.
type Config struct {
	Secret string
	Expiry time.Duration
}

// sessionClaims represents the JWT claims carried by a session token.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens. Tokens are
// self-contained: nothing is persisted, and rotating the secret
// invalidates everything issued before. Implements port.TokenService.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a new JWT token service.
func NewJWTService(cfg Config) port.TokenService {
	return &JWTService{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
	}
}

// Issue generates a signed token asserting the identity's email and role.
func (s *JWTService) Issue(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string. It either fully accepts the
// token and returns its claims, or fully rejects it; there is no partial
// trust. Missing, expired and tampered tokens each fail with their own
// sentinel so callers can map them to distinct responses.
func (s *JWTService) Verify(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, domain.ErrTokenMissing
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	decoded := &domain.Claims{
		Subject: claims.Subject,
		Role:    domain.UserRole(claims.Role),
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}

	return decoded, nil
}
