package usecase

import (
	"context"

	"chalet/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to send a message about a rental.
type SendMessageInput struct {
	RentalID uuid.UUID
	UserID   uuid.UUID
	Content  string
}

// MessageUsecase defines the interface for rental inquiry messages.
type MessageUsecase interface {
	// SendMessage records a message from the principal about a rental. The
	// declared sender must match the principal.
	SendMessage(ctx context.Context, principal *entity.Principal, input *SendMessageInput) (*entity.Message, error)
}
