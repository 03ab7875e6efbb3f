package models

import (
	"time"

	"gorm.io/gorm"
)

// EventOffering is a catalog entry for a bookable event venue.
type EventOffering struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255" json:"name"`
	BasePrice   float64 `gorm:"column:base_price" json:"basePrice"`
	MaxCapacity uint    `gorm:"column:max_capacity" json:"maxCapacity"`

	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
