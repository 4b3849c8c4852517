// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing tokens.
	tokenTTL time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It fails fast when no signing secret is configured so a misconfigured
// deployment never mints unverifiable tokens.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret:   cfg.SecretKey.JWT,
		tokenTTL: ttl,
	}, nil
}

// Sign mints a signed token asserting the user's identity.
func (s *jwtService) Sign(user *entity.User) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Parse verifies a token string and returns its claims.
func (s *jwtService) Parse(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// TokenDuration returns the configured lifetime for issued tokens.
func (s *jwtService) TokenDuration() time.Duration {
	return s.tokenTTL
}
