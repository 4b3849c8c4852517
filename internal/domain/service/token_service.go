package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portal/internal/domain/entity"
)

// Claims defines the signed payload of issued tokens: the user id as subject
// plus the email, with the registered expiry/issued-at fields.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and parsing signed tokens.
// Tokens are issued at login and never stored server-side; no middleware
// currently validates them on any route.
type TokenService interface {
	// Sign mints a token asserting the given user's identity.
	Sign(user *entity.User) (string, error)

	// Parse verifies a token's signature and expiry and returns its claims.
	Parse(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
