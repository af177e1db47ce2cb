package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/service"
	mockSvc "chalet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *mockSvc.MockTokenService, *AuthMiddleware) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewAuthMiddleware(tokenSvc, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	return c, tokenSvc, m
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	c, _, m := newAuthTestContext(t, "")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")
		return nil
	})(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	c, _, m := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_Authenticate_TokenFailuresCollapse(t *testing.T) {
	// Every validation failure kind must surface as the same outward error.
	failures := map[string]error{
		"malformed": service.ErrTokenMalformed,
		"tampered":  service.ErrTokenSignatureInvalid,
		"expired":   service.ErrTokenExpired,
	}

	for name, tokenErr := range failures {
		t.Run(name, func(t *testing.T) {
			c, tokenSvc, m := newAuthTestContext(t, "Bearer some.jwt.token")

			tokenSvc.EXPECT().ValidateToken("some.jwt.token").Return(nil, tokenErr)

			err := m.Authenticate(func(c echo.Context) error { return nil })(c)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	c, tokenSvc, m := newAuthTestContext(t, "Bearer valid.jwt.token")

	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("valid.jwt.token").
		Return(&service.Claims{UserID: userID, Email: "renter@example.com"}, nil)

	var seen *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		seen = deliverycontext.GetPrincipal(c.Request().Context())
		return nil
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, "renter@example.com", seen.Email)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	c, _, m := newAuthTestContext(t, "")

	called := false
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		called = true
		assert.Nil(t, deliverycontext.GetPrincipal(c.Request().Context()))
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_OptionalAuthenticate_PresentedTokenMustBeValid(t *testing.T) {
	c, tokenSvc, m := newAuthTestContext(t, "Bearer expired.jwt.token")

	tokenSvc.EXPECT().ValidateToken("expired.jwt.token").Return(nil, service.ErrTokenExpired)

	err := m.OptionalAuthenticate(func(c echo.Context) error { return nil })(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
