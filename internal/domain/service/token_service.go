package service

import (
	"errors"
	"time"

	"chalet/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation failure kinds. The delivery layer collapses all of them
// into the single outward-facing unauthenticated error; the distinction only
// exists for logging and tests.
var (
	// ErrTokenMalformed is returned when the token is not a well-formed JWT.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenSignatureInvalid is returned when the signature does not match the claims.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Validation is a pure function of (token, clock, secret): no storage lookup,
// which is what keeps token checking stateless and horizontally scalable.
type TokenService interface {
	// GenerateToken creates a signed access token for the given principal.
	GenerateToken(principal *entity.Principal) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims. Failures are one of ErrTokenMalformed,
	// ErrTokenSignatureInvalid or ErrTokenExpired.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured access token lifetime.
	TokenDuration() time.Duration
}
