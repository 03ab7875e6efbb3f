package services

import (
	"errors"
	"time"

	"resort-backend/models"
)

var ErrBookingAlreadyPaid = errors.New("booking_already_paid")

// PaymentStore is the persistence surface the payment flow needs.
type PaymentStore interface {
	ByReference(reference string) (models.Booking, error)
	RecordPayment(record *models.PaymentRecord, bookingStatus string) error
}

// PaymentService runs the simulated charge for a confirmed booking and
// persists the outcome.
type PaymentService struct {
	store PaymentStore
	now   func() time.Time
}

func NewPaymentService(store PaymentStore) *PaymentService {
	return &PaymentService{store: store, now: time.Now}
}

// Pay loads the booking, simulates the charge and records the result. A
// settled booking never takes a second charge; the pending statuses may be
// retried (e.g. counter payment switched to card). The simulation itself is
// pure; only the persistence step can fail with a non-validation error.
func (s *PaymentService) Pay(reference string, req PaymentRequest) (models.PaymentRecord, error) {
	booking, err := s.store.ByReference(reference)
	if err != nil {
		return models.PaymentRecord{}, err
	}
	if booking.Status == models.BookingStatusPaid {
		return models.PaymentRecord{}, ErrBookingAlreadyPaid
	}

	record, err := SimulatePayment(booking, req, s.now())
	if err != nil {
		return models.PaymentRecord{}, err
	}

	if err := s.store.RecordPayment(&record, BookingStatusForPayment(record.Status)); err != nil {
		return models.PaymentRecord{}, err
	}
	return record, nil
}
