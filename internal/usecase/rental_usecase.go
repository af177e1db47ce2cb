package usecase

import (
	"context"
	"io"

	"chalet/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PictureUpload carries an uploaded picture stream and its metadata.
type PictureUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// CreateRentalInput defines the data required to publish a new rental listing.
type CreateRentalInput struct {
	Name        string
	Surface     float64
	Price       float64
	Description string
	Picture     *PictureUpload
}

// UpdateRentalInput defines the mutable fields of an existing rental listing.
// A non-nil Picture replaces the stored picture.
type UpdateRentalInput struct {
	Name        string
	Surface     float64
	Price       float64
	Description string
	Picture     *PictureUpload
}

// RentalUsecase defines the interface for rental listing operations.
type RentalUsecase interface {
	// ListRentals returns every published listing.
	ListRentals(ctx context.Context, principal *entity.Principal) ([]*entity.Rental, error)

	// GetRental returns a single listing by ID.
	GetRental(ctx context.Context, principal *entity.Principal, rentalID uuid.UUID) (*entity.Rental, error)

	// CreateRental publishes a new listing owned by the principal.
	CreateRental(ctx context.Context, principal *entity.Principal, input *CreateRentalInput) (*entity.Rental, error)

	// UpdateRental modifies a listing. Only the owner may update; ownership
	// itself never changes.
	UpdateRental(ctx context.Context, principal *entity.Principal, rentalID uuid.UUID, input *UpdateRentalInput) (*entity.Rental, error)

	// OpenPicture streams a previously uploaded rental picture by its storage key.
	OpenPicture(ctx context.Context, key string) (io.ReadCloser, error)
}
