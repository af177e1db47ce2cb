package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the resolved principal
// in the request context. Missing, malformed, tampered and expired tokens all
// collapse into the same unauthenticated error; the precise failure kind is
// only logged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.resolvePrincipal(c)
		if err != nil {
			return err
		}
		if principal == nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// OptionalAuthenticate resolves a principal when a token is presented but
// lets anonymous requests through. A presented token must still be valid.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.resolvePrincipal(c)
		if err != nil {
			return err
		}
		if principal != nil {
			ctx := deliverycontext.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// resolvePrincipal returns (nil, nil) when no Authorization header is present.
func (m *AuthMiddleware) resolvePrincipal(c echo.Context) (*entity.Principal, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		m.logger.Debug("Token rejected",
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token validation failed")
	}

	return &entity.Principal{UserID: claims.UserID, Email: claims.Email}, nil
}
