package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort-backend/models"
)

var confirmedBooking = models.Booking{
	ReferenceCode: "BK-7XQ2M9KP",
	Status:        models.BookingStatusConfirmedUnpaid,
	Total:         1713.60,
	Currency:      "THB",
}

func validCard() *CardDetails {
	return &CardDetails{
		Number:         "4111 1111 1111 1111",
		ExpiryMonth:    12,
		ExpiryYear:     2030,
		CVV:            "123",
		HolderName:     "Anna Petrova",
		BillingAddress: "42 Sukhumvit Rd, Bangkok",
	}
}

func paymentNow() time.Time {
	return time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
}

func TestSimulatePaymentCard(t *testing.T) {
	record, err := SimulatePayment(confirmedBooking, PaymentRequest{
		Method: models.PaymentMethodCard,
		Card:   validCard(),
	}, paymentNow())
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusPaid, record.Status)
	assert.Equal(t, "BK-7XQ2M9KP", record.BookingReference)
	assert.InDelta(t, 1713.60, record.Amount, 1e-9)
	assert.Equal(t, "card **** 1111", record.Note)
	assert.NotEmpty(t, record.TransactionID)
}

func TestSimulatePaymentCardValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *CardDetails)
		wantField string
	}{
		{"non-digit card number", func(c *CardDetails) { c.Number = "4111-1111-1111-1111" }, "cardNumber"},
		{"card number too short", func(c *CardDetails) { c.Number = "41111111" }, "cardNumber"},
		{"card number too long", func(c *CardDetails) { c.Number = "41111111111111111111" }, "cardNumber"},
		{"bad cvv", func(c *CardDetails) { c.CVV = "12" }, "cvv"},
		{"alpha cvv", func(c *CardDetails) { c.CVV = "12a" }, "cvv"},
		{"month out of range", func(c *CardDetails) { c.ExpiryMonth = 13 }, "expiry"},
		{"expired year", func(c *CardDetails) { c.ExpiryYear = 2024 }, "expiry"},
		{"expired month this year", func(c *CardDetails) { c.ExpiryMonth = 5; c.ExpiryYear = 2025 }, "expiry"},
		{"missing holder", func(c *CardDetails) { c.HolderName = "  " }, "holderName"},
		{"missing address", func(c *CardDetails) { c.BillingAddress = "" }, "billingAddress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(card)
			_, err := SimulatePayment(confirmedBooking, PaymentRequest{
				Method: models.PaymentMethodCard,
				Card:   card,
			}, paymentNow())

			var vErr *PaymentValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}

	t.Run("missing card entirely", func(t *testing.T) {
		_, err := SimulatePayment(confirmedBooking, PaymentRequest{Method: models.PaymentMethodCard}, paymentNow())
		var vErr *PaymentValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "card", vErr.Field)
	})

	t.Run("current month still valid", func(t *testing.T) {
		card := validCard()
		card.ExpiryMonth = 6
		card.ExpiryYear = 2025
		_, err := SimulatePayment(confirmedBooking, PaymentRequest{
			Method: models.PaymentMethodCard,
			Card:   card,
		}, paymentNow())
		assert.NoError(t, err)
	})
}

func TestSimulatePaymentCounter(t *testing.T) {
	record, err := SimulatePayment(confirmedBooking, PaymentRequest{
		Method: models.PaymentMethodPayAtCounter,
	}, paymentNow())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPendingCounter, record.Status)
	assert.Empty(t, record.Note)
}

func TestSimulatePaymentBankTransfer(t *testing.T) {
	t.Run("requires a receipt reference", func(t *testing.T) {
		_, err := SimulatePayment(confirmedBooking, PaymentRequest{
			Method: models.PaymentMethodBankTransferReceipt,
		}, paymentNow())
		var vErr *PaymentValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "receiptUrl", vErr.Field)
	})

	t.Run("records the receipt url", func(t *testing.T) {
		record, err := SimulatePayment(confirmedBooking, PaymentRequest{
			Method:     models.PaymentMethodBankTransferReceipt,
			ReceiptURL: "https://files.example.com/receipts/abc.jpg",
		}, paymentNow())
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPendingVerification, record.Status)
		assert.Equal(t, "https://files.example.com/receipts/abc.jpg", record.Note)
	})
}

func TestSimulatePaymentUnknownMethod(t *testing.T) {
	_, err := SimulatePayment(confirmedBooking, PaymentRequest{Method: "cash_on_moon"}, paymentNow())
	var vErr *PaymentValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "method", vErr.Field)
}

func TestBookingStatusForPayment(t *testing.T) {
	assert.Equal(t, models.BookingStatusPaid, BookingStatusForPayment(models.PaymentStatusPaid))
	assert.Equal(t, models.BookingStatusAwaitingCounter, BookingStatusForPayment(models.PaymentStatusPendingCounter))
	assert.Equal(t, models.BookingStatusAwaitingReceiptReview, BookingStatusForPayment(models.PaymentStatusPendingVerification))
}

// ---------------------------
// PaymentService with a fake store
// ---------------------------

type fakePaymentStore struct {
	bookings map[string]models.Booking
	records  []models.PaymentRecord
	statuses map[string]string
	failSave bool
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		bookings: map[string]models.Booking{confirmedBooking.ReferenceCode: confirmedBooking},
		statuses: map[string]string{},
	}
}

func (f *fakePaymentStore) ByReference(reference string) (models.Booking, error) {
	booking, ok := f.bookings[reference]
	if !ok {
		return models.Booking{}, ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakePaymentStore) RecordPayment(record *models.PaymentRecord, bookingStatus string) error {
	if f.failSave {
		return errors.New("db down")
	}
	f.records = append(f.records, *record)
	f.statuses[record.BookingReference] = bookingStatus
	booking := f.bookings[record.BookingReference]
	booking.Status = bookingStatus
	f.bookings[record.BookingReference] = booking
	return nil
}

func TestPaymentServicePay(t *testing.T) {
	t.Run("card payment persists record and flips status", func(t *testing.T) {
		store := newFakePaymentStore()
		svc := NewPaymentService(store)
		svc.now = paymentNow

		record, err := svc.Pay("BK-7XQ2M9KP", PaymentRequest{
			Method: models.PaymentMethodCard,
			Card:   validCard(),
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, record.Status)
		require.Len(t, store.records, 1)
		assert.Equal(t, models.BookingStatusPaid, store.statuses["BK-7XQ2M9KP"])
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := NewPaymentService(newFakePaymentStore())
		_, err := svc.Pay("BK-NOPE", PaymentRequest{Method: models.PaymentMethodPayAtCounter})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("validation failure records nothing", func(t *testing.T) {
		store := newFakePaymentStore()
		svc := NewPaymentService(store)
		_, err := svc.Pay("BK-7XQ2M9KP", PaymentRequest{Method: models.PaymentMethodCard})
		var vErr *PaymentValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Empty(t, store.records)
	})

	t.Run("settled booking rejects a second charge", func(t *testing.T) {
		store := newFakePaymentStore()
		svc := NewPaymentService(store)
		svc.now = paymentNow

		_, err := svc.Pay("BK-7XQ2M9KP", PaymentRequest{
			Method: models.PaymentMethodCard,
			Card:   validCard(),
		})
		require.NoError(t, err)

		_, err = svc.Pay("BK-7XQ2M9KP", PaymentRequest{
			Method: models.PaymentMethodCard,
			Card:   validCard(),
		})
		assert.ErrorIs(t, err, ErrBookingAlreadyPaid)
		assert.Len(t, store.records, 1)
		assert.Equal(t, models.BookingStatusPaid, store.statuses["BK-7XQ2M9KP"])
	})

	t.Run("pending counter booking may settle by card later", func(t *testing.T) {
		store := newFakePaymentStore()
		svc := NewPaymentService(store)
		svc.now = paymentNow

		_, err := svc.Pay("BK-7XQ2M9KP", PaymentRequest{Method: models.PaymentMethodPayAtCounter})
		require.NoError(t, err)

		record, err := svc.Pay("BK-7XQ2M9KP", PaymentRequest{
			Method: models.PaymentMethodCard,
			Card:   validCard(),
		})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, record.Status)
		assert.Equal(t, models.BookingStatusPaid, store.statuses["BK-7XQ2M9KP"])
	})

	t.Run("store failure propagates", func(t *testing.T) {
		store := newFakePaymentStore()
		store.failSave = true
		svc := NewPaymentService(store)
		_, err := svc.Pay("BK-7XQ2M9KP", PaymentRequest{Method: models.PaymentMethodPayAtCounter})
		assert.Error(t, err)
	})
}
