// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"chalet/config"
	"chalet/internal/domain/entity"
	"chalet/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with HMAC-SHA256 over a process-wide secret; validating one
// touches no storage, only the token itself and the clock.
type jwtService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// GenerateToken creates a signed access token for the given principal.
func (s *jwtService) GenerateToken(principal *entity.Principal) (string, error) {
	if principal == nil {
		return "", errors.New("cannot issue a token for an anonymous principal")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   principal.UserID.String(), // Subject (who the token is for)
		"email": principal.Email,
		"iat":   now.Unix(),            // Issued At
		"exp":   now.Add(s.ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, translateTokenError(err)
	}
	if !token.Valid {
		return nil, service.ErrTokenSignatureInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrTokenMalformed
	}

	return claimsFromMap(mapClaims)
}

// TokenDuration returns the configured access token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}

// translateTokenError maps jwt parsing failures onto the domain's token error kinds.
func translateTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	default:
		// Signature mismatch, wrong algorithm and every other verification
		// failure count as an invalid signature: the token cannot be trusted.
		return service.ErrTokenSignatureInvalid
	}
}

// claimsFromMap parses the raw claim set back into typed claims.
func claimsFromMap(mapClaims jwt.MapClaims) (*service.Claims, error) {
	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, service.ErrTokenMalformed
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, service.ErrTokenMalformed
	}

	email, _ := mapClaims["email"].(string)

	claims := &service.Claims{
		UserID: userID,
		Email:  email,
	}

	if issuedAt, err := mapClaims.GetIssuedAt(); err == nil && issuedAt != nil {
		claims.IssuedAt = issuedAt
	}
	if expiresAt, err := mapClaims.GetExpirationTime(); err == nil && expiresAt != nil {
		claims.ExpiresAt = expiresAt
	}

	return claims, nil
}
