package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomOffering is a catalog entry for a bookable room type. Rows are seeded
// once and treated as read-only at runtime.
type RoomOffering struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:255" json:"name"`
	BasePrice float64 `gorm:"column:base_price" json:"basePrice"`
	Currency  string  `gorm:"size:8" json:"currency"`
	MaxGuests uint    `gorm:"column:max_guests" json:"maxGuests"`

	// JSON array of amenity strings, e.g. ["wifi","breakfast"].
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
