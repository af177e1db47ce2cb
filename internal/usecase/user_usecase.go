package usecase

import (
	"context"

	"chalet/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user lookup operations.
type UserUsecase interface {
	// GetUser returns the public profile of the user with the given ID.
	GetUser(ctx context.Context, principal *entity.Principal, userID uuid.UUID) (*entity.User, error)
}
