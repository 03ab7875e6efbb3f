package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resort-backend/models"
)

// PaymentValidationError reports the first method-specific field that failed
// its shape check. Recoverable; the caller re-prompts on the payment form.
type PaymentValidationError struct {
	Field string
}

func (e *PaymentValidationError) Error() string {
	return fmt.Sprintf("payment validation failed: %s", e.Field)
}

// CardDetails are the fields the card path requires. Only shape checks are
// applied; no real gateway is involved anywhere in this flow.
type CardDetails struct {
	Number         string `json:"number"`
	ExpiryMonth    int    `json:"expiryMonth"`
	ExpiryYear     int    `json:"expiryYear"`
	CVV            string `json:"cvv"`
	HolderName     string `json:"holderName"`
	BillingAddress string `json:"billingAddress"`
}

// PaymentRequest carries the chosen method plus its method-specific fields.
type PaymentRequest struct {
	Method     string       `json:"method"`
	Card       *CardDetails `json:"card,omitempty"`
	ReceiptURL string       `json:"receiptUrl,omitempty"`
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateCard(card *CardDetails, now time.Time) error {
	if card == nil {
		return &PaymentValidationError{Field: "card"}
	}
	number := strings.ReplaceAll(card.Number, " ", "")
	if !digitsOnly(number) || len(number) < 12 || len(number) > 19 {
		return &PaymentValidationError{Field: "cardNumber"}
	}
	if !digitsOnly(card.CVV) || len(card.CVV) < 3 || len(card.CVV) > 4 {
		return &PaymentValidationError{Field: "cvv"}
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return &PaymentValidationError{Field: "expiry"}
	}
	if card.ExpiryYear < now.Year() ||
		(card.ExpiryYear == now.Year() && time.Month(card.ExpiryMonth) < now.Month()) {
		return &PaymentValidationError{Field: "expiry"}
	}
	if strings.TrimSpace(card.HolderName) == "" {
		return &PaymentValidationError{Field: "holderName"}
	}
	if strings.TrimSpace(card.BillingAddress) == "" {
		return &PaymentValidationError{Field: "billingAddress"}
	}
	return nil
}

// SimulatePayment produces a synthetic charge outcome for a confirmed
// booking. Deterministic and synchronous: card settles as "paid", the counter
// path confirms now and settles at the desk, the bank-transfer path waits for
// a human to review the uploaded receipt. No money moves.
func SimulatePayment(booking models.Booking, req PaymentRequest, now time.Time) (models.PaymentRecord, error) {
	record := models.PaymentRecord{
		TransactionID:    uuid.NewString(),
		BookingReference: booking.ReferenceCode,
		Amount:           booking.Total,
		Currency:         booking.Currency,
		Method:           req.Method,
	}

	switch req.Method {
	case models.PaymentMethodCard:
		if err := validateCard(req.Card, now); err != nil {
			return models.PaymentRecord{}, err
		}
		number := strings.ReplaceAll(req.Card.Number, " ", "")
		record.Status = models.PaymentStatusPaid
		record.Note = "card **** " + number[len(number)-4:]
	case models.PaymentMethodPayAtCounter:
		record.Status = models.PaymentStatusPendingCounter
	case models.PaymentMethodBankTransferReceipt:
		if strings.TrimSpace(req.ReceiptURL) == "" {
			return models.PaymentRecord{}, &PaymentValidationError{Field: "receiptUrl"}
		}
		record.Status = models.PaymentStatusPendingVerification
		record.Note = req.ReceiptURL
	default:
		return models.PaymentRecord{}, &PaymentValidationError{Field: "method"}
	}

	return record, nil
}

// BookingStatusForPayment maps a payment outcome onto the booking row.
func BookingStatusForPayment(status string) string {
	switch status {
	case models.PaymentStatusPaid:
		return models.BookingStatusPaid
	case models.PaymentStatusPendingCounter:
		return models.BookingStatusAwaitingCounter
	case models.PaymentStatusPendingVerification:
		return models.BookingStatusAwaitingReceiptReview
	default:
		return models.BookingStatusConfirmedUnpaid
	}
}
