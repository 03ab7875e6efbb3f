// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"resort-backend/models"
	"resort-backend/utils"
)

var ErrBookingNotFound = errors.New("booking_not_found")

// BookingService wraps *gorm.DB for the persisted side of the flow: writing
// confirmed snapshots, reading them back, and attaching payment outcomes.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// CreateFromSnapshot persists a confirmed draft snapshot as a booking row.
// The reference code carries a unique index; on a duplicate-entry collision a
// fresh code is generated and the insert retried.
func (s *BookingService) CreateFromSnapshot(snapshot BookingSnapshot) (models.Booking, error) {
	roster, err := json.Marshal(snapshot.Roster)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to encode guest roster: %w", err)
	}

	booking := models.Booking{
		Status:          models.BookingStatusConfirmedUnpaid,
		RoomOfferingID:  snapshot.Offering.ID,
		CheckInDate:     snapshot.CheckIn,
		CheckOutDate:    snapshot.CheckOut,
		Nights:          snapshot.Pricing.Nights,
		GuestCount:      snapshot.GuestCount,
		ExtraBed:        snapshot.ExtraBed,
		ContactName:     snapshot.Contact.Name,
		ContactEmail:    snapshot.Contact.Email,
		ContactPhone:    snapshot.Contact.Phone,
		SpecialRequests: snapshot.SpecialRequests,
		GuestRoster:     roster,
		RoomTotal:       snapshot.Pricing.RoomTotal,
		ExtraBedCost:    snapshot.Pricing.ExtraBedCost,
		Subtotal:        snapshot.Pricing.Subtotal,
		Taxes:           snapshot.Pricing.Taxes,
		Total:           snapshot.Pricing.Total,
		Currency:        snapshot.Pricing.Currency,
	}

	maxRetries := 5
	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		reference, gErr := utils.GenerateBookingReference()
		if gErr != nil {
			return models.Booking{}, fmt.Errorf("failed to generate reference: %w", gErr)
		}
		booking.ReferenceCode = reference

		createErr = s.DB.Create(&booking).Error
		if createErr == nil {
			return booking, nil
		}
		if isDuplicateEntry(createErr) {
			log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
			booking.ID = 0
			continue
		}
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", createErr)
	}
	return models.Booking{}, fmt.Errorf("failed to create booking after retries: %w", createErr)
}

func (s *BookingService) List() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("RoomOffering").Order("id DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) ByReference(reference string) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("RoomOffering").Where("reference_code = ?", reference).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to find booking: %w", err)
	}
	return booking, nil
}

// RecordPayment stores the payment record and flips the booking status in one
// transaction, so a booking can never reference a payment that was lost.
func (s *BookingService) RecordPayment(record *models.PaymentRecord, bookingStatus string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create payment record: %w", err)
		}
		err := tx.Model(&models.Booking{}).
			Where("reference_code = ?", record.BookingReference).
			Update("status", bookingStatus).Error
		if err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		return nil
	})
}

func (s *BookingService) PaymentsByReference(reference string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	err := s.DB.Where("booking_reference = ?", reference).Order("id").Find(&records).Error
	return records, err
}
