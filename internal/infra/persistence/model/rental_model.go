package model

import (
	"time"

	"github.com/google/uuid"
)

// RentalModel mirrors the 'rentals' table.
type RentalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Surface     float64   `gorm:"not null"`
	Price       float64   `gorm:"not null"`
	Picture     string    `gorm:"type:text"`
	Description string    `gorm:"type:varchar(2000)"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Messages []MessageModel `gorm:"foreignKey:RentalID"`
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}
