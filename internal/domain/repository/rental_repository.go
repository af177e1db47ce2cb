package repository

import (
	"context"
	"errors"

	"chalet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRentalNotFound is a domain-specific error returned when a rental is not found.
var ErrRentalNotFound = errors.New("rental not found")

// RentalRepository defines the standard operations for rental persistence.
type RentalRepository interface {
	// FindByID retrieves a single rental by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)

	// FindAll retrieves every rental listing.
	FindAll(ctx context.Context) ([]*entity.Rental, error)

	// Create persists a new rental entity to the storage.
	Create(ctx context.Context, rental *entity.Rental) error

	// Update modifies an existing rental entity in the storage.
	// OwnerID is never touched by an update.
	Update(ctx context.Context, rental *entity.Rental) error
}
