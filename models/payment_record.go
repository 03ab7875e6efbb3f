package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment methods and statuses. Exactly one status is produced per method:
// card settles immediately, the other two confirm now and settle later.
const (
	PaymentMethodCard                = "card"
	PaymentMethodPayAtCounter        = "pay_at_counter"
	PaymentMethodBankTransferReceipt = "bank_transfer_receipt"

	PaymentStatusPaid                = "paid"
	PaymentStatusPendingCounter      = "pending_counter"
	PaymentStatusPendingVerification = "pending_verification"
)

// PaymentRecord is the terminal artifact of a simulated charge. Created once
// per confirmed booking and never mutated.
type PaymentRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TransactionID    string  `gorm:"column:transaction_id;size:64;uniqueIndex" json:"transactionId"`
	BookingReference string  `gorm:"column:booking_reference;size:64;index" json:"bookingReference"`
	Amount           float64 `gorm:"column:amount" json:"amount"`
	Currency         string  `gorm:"size:8" json:"currency"`
	Method           string  `gorm:"size:32" json:"method"`
	Status           string  `gorm:"size:32" json:"status"`

	// Masked card suffix for card payments, receipt URL for bank transfers.
	Note string `gorm:"size:255" json:"note,omitempty"`
}
