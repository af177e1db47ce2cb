package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/delivery/http/response"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user lookup handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// GetUser returns the public profile of the user identified by the path parameter.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	principal := deliverycontext.GetPrincipal(c.Request().Context())

	user, err := h.uc.GetUser(c.Request().Context(), principal, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}
