package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"resort-backend/models"
)

// Booking flow steps.
const (
	StepStayAndRoom = 1
	StepContact     = 2
	StepReview      = 3
)

var (
	ErrGuestsExceedCapacity = errors.New("guest_count_exceeds_capacity")
	ErrDraftConfirmed       = errors.New("draft_already_confirmed")
	ErrAtFinalStep          = errors.New("already_at_review_step")
	ErrRosterIndex          = errors.New("roster_index_out_of_range")
	ErrRosterField          = errors.New("unknown_roster_field")
)

var fieldValidator = validator.New()

// IncompleteStepError reports which required fields block a step transition.
// The caller keeps the draft on the same step and re-prompts.
type IncompleteStepError struct {
	Step    int
	Missing []string
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf("step %d incomplete, missing: %s", e.Step, strings.Join(e.Missing, ", "))
}

// GuestRecord is one roster entry. Everything is optional enrichment; only
// the primary contact (held separately) has required fields.
type GuestRecord struct {
	Name string `json:"name,omitempty"`
	Age  *int   `json:"age,omitempty"`
}

type PrimaryContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ReservationDraft accumulates a booking across the three form steps. It is
// pure in-memory state owned by a single session; it performs no I/O, and
// persistence of the confirmed snapshot is the caller's job.
type ReservationDraft struct {
	CheckIn  *time.Time
	CheckOut *time.Time

	GuestCount int
	Offering   *models.RoomOffering
	ExtraBed   bool

	Contact         PrimaryContact
	SpecialRequests string

	// Always sized max(0, GuestCount-1); entry 0 is the second guest.
	Roster []GuestRecord

	Step      int
	Confirmed bool
}

func NewReservationDraft() *ReservationDraft {
	return &ReservationDraft{GuestCount: 1, Step: StepStayAndRoom}
}

func (d *ReservationDraft) SetStay(checkIn, checkOut time.Time) {
	in := midnight(checkIn)
	out := midnight(checkOut)
	d.CheckIn = &in
	d.CheckOut = &out
}

func (d *ReservationDraft) SetOffering(offering models.RoomOffering) {
	d.Offering = &offering
}

// SetGuestCount resizes the roster to n-1 entries. Entries keep their
// position: shrinking truncates from the tail, growing pads empty records.
func (d *ReservationDraft) SetGuestCount(n int) {
	d.GuestCount = n
	size := n - 1
	if size < 0 {
		size = 0
	}
	if size <= len(d.Roster) {
		d.Roster = d.Roster[:size]
		return
	}
	grown := make([]GuestRecord, size)
	copy(grown, d.Roster)
	d.Roster = grown
}

// UpdateRosterEntry mutates one field of one roster record. No validation on
// the value: roster entries are optional enrichment.
func (d *ReservationDraft) UpdateRosterEntry(index int, field string, value string) error {
	if index < 0 || index >= len(d.Roster) {
		return ErrRosterIndex
	}
	switch field {
	case "name":
		d.Roster[index].Name = value
	case "age":
		if strings.TrimSpace(value) == "" {
			d.Roster[index].Age = nil
			return nil
		}
		var age int
		if _, err := fmt.Sscanf(strings.TrimSpace(value), "%d", &age); err != nil || age <= 0 {
			return ErrRosterField
		}
		d.Roster[index].Age = &age
	default:
		return ErrRosterField
	}
	return nil
}

func (d *ReservationDraft) validateStayStep(today time.Time) error {
	missing := []string{}
	if d.CheckIn == nil {
		missing = append(missing, "checkInDate")
	}
	if d.CheckOut == nil {
		missing = append(missing, "checkOutDate")
	}
	if d.GuestCount < 1 {
		missing = append(missing, "guestCount")
	}
	if d.Offering == nil {
		missing = append(missing, "roomType")
	}
	if len(missing) > 0 {
		return &IncompleteStepError{Step: StepStayAndRoom, Missing: missing}
	}
	if err := ValidateStayRange(*d.CheckIn, *d.CheckOut, today); err != nil {
		return err
	}
	if uint(d.GuestCount) > d.Offering.MaxGuests {
		return ErrGuestsExceedCapacity
	}
	return nil
}

func (d *ReservationDraft) validateContactStep() error {
	missing := []string{}
	if strings.TrimSpace(d.Contact.Name) == "" {
		missing = append(missing, "name")
	}
	if fieldValidator.Var(d.Contact.Email, "required,email") != nil {
		missing = append(missing, "email")
	}
	if len(strings.TrimSpace(d.Contact.Phone)) < 10 {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &IncompleteStepError{Step: StepContact, Missing: missing}
	}
	return nil
}

// Advance moves the draft one step forward, but only when every required
// field of the current step validates. On failure the step does not change.
func (d *ReservationDraft) Advance(today time.Time) error {
	if d.Confirmed {
		return ErrDraftConfirmed
	}
	switch d.Step {
	case StepStayAndRoom:
		if err := d.validateStayStep(today); err != nil {
			return err
		}
		d.Step = StepContact
	case StepContact:
		if err := d.validateContactStep(); err != nil {
			return err
		}
		d.Step = StepReview
	default:
		return ErrAtFinalStep
	}
	return nil
}

// Retreat moves one step back. Always succeeds; no validation on the way
// down. Already at step 1 is a no-op.
func (d *ReservationDraft) Retreat() {
	if d.Step > StepStayAndRoom {
		d.Step--
	}
}

// Quote recomputes the pricing breakdown for the current selection. Requires
// the stay step to be valid so nights >= 1 holds.
func (d *ReservationDraft) Quote(today time.Time) (PricingBreakdown, error) {
	if err := d.validateStayStep(today); err != nil {
		return PricingBreakdown{}, err
	}
	nights := NightsBetween(*d.CheckIn, *d.CheckOut)
	return PriceStay(nights, *d.Offering, d.ExtraBed), nil
}

// BookingSnapshot is the immutable record of a confirmed draft, handed off to
// persistence and payment. Copies everything; later draft mutation (there
// should be none) cannot leak into it.
type BookingSnapshot struct {
	CheckIn  time.Time           `json:"checkIn"`
	CheckOut time.Time           `json:"checkOut"`
	Offering models.RoomOffering `json:"offering"`

	GuestCount int            `json:"guestCount"`
	ExtraBed   bool           `json:"extraBed"`
	Contact    PrimaryContact `json:"contact"`

	SpecialRequests string        `json:"specialRequests,omitempty"`
	Roster          []GuestRecord `json:"roster,omitempty"`

	Pricing PricingBreakdown `json:"pricing"`
}

// Confirm finalizes the draft from the review step. Both earlier steps are
// re-validated so stale edits cannot slip through, then the draft becomes
// terminal and the snapshot is returned for persistence.
func (d *ReservationDraft) Confirm(today time.Time) (BookingSnapshot, error) {
	if d.Confirmed {
		return BookingSnapshot{}, ErrDraftConfirmed
	}
	if d.Step != StepReview {
		return BookingSnapshot{}, &IncompleteStepError{Step: d.Step, Missing: []string{"reviewStep"}}
	}
	if err := d.validateStayStep(today); err != nil {
		return BookingSnapshot{}, err
	}
	if err := d.validateContactStep(); err != nil {
		return BookingSnapshot{}, err
	}

	nights := NightsBetween(*d.CheckIn, *d.CheckOut)
	roster := make([]GuestRecord, len(d.Roster))
	for i, entry := range d.Roster {
		roster[i] = entry
		if entry.Age != nil {
			age := *entry.Age
			roster[i].Age = &age
		}
	}

	snapshot := BookingSnapshot{
		CheckIn:         *d.CheckIn,
		CheckOut:        *d.CheckOut,
		Offering:        *d.Offering,
		GuestCount:      d.GuestCount,
		ExtraBed:        d.ExtraBed,
		Contact:         d.Contact,
		SpecialRequests: d.SpecialRequests,
		Roster:          roster,
		Pricing:         PriceStay(nights, *d.Offering, d.ExtraBed),
	}
	d.Confirmed = true
	return snapshot, nil
}
