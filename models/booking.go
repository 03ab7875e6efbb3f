package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses. A booking is created as "confirmed_unpaid" when a draft
// snapshot is persisted and moves on according to the payment outcome.
const (
	BookingStatusConfirmedUnpaid       = "confirmed_unpaid"
	BookingStatusPaid                  = "paid"
	BookingStatusAwaitingCounter       = "awaiting_counter"
	BookingStatusAwaitingReceiptReview = "awaiting_receipt_review"
)

// Booking is the persisted snapshot of a confirmed reservation draft.
// Everything here is copied out of the draft at confirmation time; the row is
// never edited afterwards except for the payment status transition.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode  string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Status         string `gorm:"column:status;size:64" json:"status"`
	RoomOfferingID uint   `gorm:"column:room_offering_id;index" json:"roomOfferingId"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	GuestCount int  `gorm:"column:guest_count" json:"guestCount"`
	ExtraBed   bool `gorm:"column:extra_bed" json:"extraBed"`

	ContactName     string `gorm:"column:contact_name;size:255" json:"contactName"`
	ContactEmail    string `gorm:"column:contact_email;size:150" json:"contactEmail"`
	ContactPhone    string `gorm:"column:contact_phone;size:50" json:"contactPhone"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	// JSON array of non-primary guest records ({name, age}).
	GuestRoster datatypes.JSON `gorm:"column:guest_roster" json:"guestRoster,omitempty"`

	RoomTotal    float64 `gorm:"column:room_total" json:"roomTotal"`
	ExtraBedCost float64 `gorm:"column:extra_bed_cost" json:"extraBedCost"`
	Subtotal     float64 `gorm:"column:subtotal" json:"subtotal"`
	Taxes        float64 `gorm:"column:taxes" json:"taxes"`
	Total        float64 `gorm:"column:total" json:"total"`
	Currency     string  `gorm:"size:8" json:"currency"`

	RoomOffering RoomOffering `gorm:"foreignKey:RoomOfferingID;references:ID" json:"roomOffering,omitempty"`
}
