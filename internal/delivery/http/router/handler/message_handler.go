package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "chalet/internal/delivery/context"
	"chalet/internal/delivery/http/response"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for rental inquiry handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{uc: uc, logger: logger}
}

type sendMessageRequest struct {
	RentalID uuid.UUID `json:"rental_id" validate:"required"`
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Message  string    `json:"message" validate:"required"`
}

// SendMessage records an inquiry about a rental.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var input sendMessageRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	principal := deliverycontext.GetPrincipal(c.Request().Context())

	message, err := h.uc.SendMessage(c.Request().Context(), principal, &usecase.SendMessageInput{
		RentalID: input.RentalID,
		UserID:   input.UserID,
		Content:  input.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"id": message.ID.String(),
	}, "Message sent with success")
}
