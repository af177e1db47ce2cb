package auth

import (
	"strings"
	"testing"
	"time"

	"chalet/config"
	"chalet/internal/domain/entity"
	"chalet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	principal := &entity.Principal{UserID: uuid.New(), Email: "user@example.com"}

	token, err := jwtService.GenerateToken(principal)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Round trip: validation returns the same principal identity.
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, principal.UserID, claims.UserID)
	assert.Equal(t, principal.Email, claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Construct directly with a negative TTL so the token is born expired.
	svc := &jwtService{secret: "test_secret", ttl: -time.Minute}

	token, err := svc.GenerateToken(&entity.Principal{UserID: uuid.New(), Email: "user@example.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_TamperedSignatureRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(&entity.Principal{UserID: uuid.New(), Email: "user@example.com"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip every byte of the signature segment in turn.
	for i := range parts[2] {
		tampered := flipChar(parts[2], i)
		mutated := parts[0] + "." + parts[1] + "." + tampered

		claims, err := jwtService.ValidateToken(mutated)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid),
			"signature byte %d: expected signature error, got %v", i, err)
	}
}

func TestJWTService_TamperedClaimsRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(&entity.Principal{UserID: uuid.New(), Email: "user@example.com"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Any claims mutation must fail validation. Depending on where the byte
	// lands the decode fails (malformed) or the signature no longer matches;
	// either way the token is rejected.
	for i := range parts[1] {
		tampered := flipChar(parts[1], i)
		mutated := parts[0] + "." + tampered + "." + parts[2]

		claims, err := jwtService.ValidateToken(mutated)
		assert.Nil(t, claims, "claims byte %d: tampered token accepted", i)
		assert.Error(t, err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := &jwtService{secret: "secret-one", ttl: time.Hour}
	verifier := &jwtService{secret: "secret-two", ttl: time.Hour}

	token, err := issuer.GenerateToken(&entity.Principal{UserID: uuid.New(), Email: "user@example.com"})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		claims, err := jwtService.ValidateToken(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), "token %q: got %v", token, err)
	}
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig(36 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 36*time.Hour, jwtService.TokenDuration())

	// Default lifetime applies when the config leaves it unset.
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_secret"
	jwtService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, jwtService.TokenDuration())
}

// flipChar replaces the byte at index i with a different base64url character.
func flipChar(s string, i int) string {
	replacement := byte('A')
	if s[i] == 'A' {
		replacement = 'B'
	}

	return s[:i] + string(replacement) + s[i+1:]
}
