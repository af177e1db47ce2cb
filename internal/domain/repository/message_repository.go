package repository

import (
	"context"
	"errors"

	"chalet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is a domain-specific error returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the standard operations for message persistence.
type MessageRepository interface {
	// FindByID retrieves a single message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// Create persists a new message entity to the storage.
	Create(ctx context.Context, message *entity.Message) error
}
