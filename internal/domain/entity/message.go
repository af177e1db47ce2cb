package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a note a renter sends to a rental's owner about a listing.
// UserID is the sender and must equal the authenticated principal at
// creation time.
type Message struct {
	ID        uuid.UUID // The unique identifier for the message.
	RentalID  uuid.UUID // The rental the message is about.
	UserID    uuid.UUID // The sender.
	Content   string    // The message body.
	CreatedAt time.Time
	UpdatedAt time.Time
}
