package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem is a restaurant catalog entry the cart orders against.
type MenuItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:255" json:"name"`
	UnitPrice float64 `gorm:"column:unit_price" json:"unitPrice"`
	Category  string  `gorm:"size:64" json:"category"`

	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
