package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rental represents a property listed for rent.
// OwnerID references the User that created the listing and never changes
// after creation.
type Rental struct {
	ID          uuid.UUID // The unique identifier for the rental.
	Name        string    // Listing title shown to renters.
	Surface     float64   // Surface area in square meters.
	Price       float64   // Monthly rent.
	Picture     string    // Public URL of the listing picture, empty if none was uploaded.
	Description string    // Free-form description of the property.
	OwnerID     uuid.UUID // The User that owns this listing. Immutable after creation.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
