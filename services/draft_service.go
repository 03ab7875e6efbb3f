package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"resort-backend/models"
)

var ErrDraftNotFound = errors.New("draft_not_found")

// RoomOfferingSource is the slice of the catalog the draft flow needs.
type RoomOfferingSource interface {
	RoomOfferingByID(id uint) (models.RoomOffering, error)
}

// BookingWriter persists a confirmed snapshot.
type BookingWriter interface {
	CreateFromSnapshot(snapshot BookingSnapshot) (models.Booking, error)
}

type draftSession struct {
	draft   *ReservationDraft
	touched time.Time
}

// DraftService owns the live, unpersisted drafts. Each draft belongs to one
// UI session and is only ever touched by that session's requests; the mutex
// guards the registry map plus serializes the odd refresh/retry double fire.
type DraftService struct {
	catalog  RoomOfferingSource
	bookings BookingWriter

	mu     sync.Mutex
	drafts map[string]*draftSession

	ttl time.Duration
	now func() time.Time
}

func NewDraftService(catalog RoomOfferingSource, bookings BookingWriter, ttl time.Duration) *DraftService {
	return &DraftService{
		catalog:  catalog,
		bookings: bookings,
		drafts:   make(map[string]*draftSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts an empty draft and returns its session id.
func (s *DraftService) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.drafts[id] = &draftSession{draft: NewReservationDraft(), touched: s.now()}
	s.mu.Unlock()
	return id
}

func (s *DraftService) withDraft(id string, fn func(d *ReservationDraft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.drafts[id]
	if !ok {
		return ErrDraftNotFound
	}
	session.touched = s.now()
	return fn(session.draft)
}

// DraftState is the read-only view handed to the transport layer.
type DraftState struct {
	ID              string         `json:"id"`
	Step            int            `json:"step"`
	CheckIn         *time.Time     `json:"checkIn,omitempty"`
	CheckOut        *time.Time     `json:"checkOut,omitempty"`
	GuestCount      int            `json:"guestCount"`
	RoomOfferingID  *uint          `json:"roomOfferingId,omitempty"`
	ExtraBed        bool           `json:"extraBed"`
	Contact         PrimaryContact `json:"contact"`
	SpecialRequests string         `json:"specialRequests,omitempty"`
	Roster          []GuestRecord  `json:"roster"`
	Confirmed       bool           `json:"confirmed"`
}

func (s *DraftService) State(id string) (DraftState, error) {
	var state DraftState
	err := s.withDraft(id, func(d *ReservationDraft) error {
		state = DraftState{
			ID:              id,
			Step:            d.Step,
			CheckIn:         d.CheckIn,
			CheckOut:        d.CheckOut,
			GuestCount:      d.GuestCount,
			ExtraBed:        d.ExtraBed,
			Contact:         d.Contact,
			SpecialRequests: d.SpecialRequests,
			Roster:          append([]GuestRecord{}, d.Roster...),
			Confirmed:       d.Confirmed,
		}
		if d.Offering != nil {
			state.RoomOfferingID = &d.Offering.ID
		}
		return nil
	})
	return state, err
}

func (s *DraftService) SetStay(id string, checkIn, checkOut time.Time) error {
	return s.withDraft(id, func(d *ReservationDraft) error {
		if d.Confirmed {
			return ErrDraftConfirmed
		}
		d.SetStay(checkIn, checkOut)
		return nil
	})
}

// SelectRoom resolves the offering from the catalog and pins it (id, price,
// capacity) on the draft, so later pricing cannot drift if the catalog row
// changes mid-session.
func (s *DraftService) SelectRoom(id string, offeringID uint) error {
	offering, err := s.catalog.RoomOfferingByID(offeringID)
	if err != nil {
		return err
	}
	return s.withDraft(id, func(d *ReservationDraft) error {
		if d.Confirmed {
			return ErrDraftConfirmed
		}
		d.SetOffering(offering)
		return nil
	})
}

func (s *DraftService) SetGuestCount(id string, count int) error {
	return s.withDraft(id, func(d *ReservationDraft) error {
		if d.Confirmed {
			return ErrDraftConfirmed
		}
		d.SetGuestCount(count)
		return nil
	})
}

func (s *DraftService) SetExtraBed(id string, extraBed bool) error {
	return s.withDraft(id, func(d *ReservationDraft) error {
		if d.Confirmed {
			return ErrDraftConfirmed
		}
		d.ExtraBed = extraBed
		return nil
	})
}

func (s *DraftService) SetContact(id string, contact PrimaryContact, specialRequests string) error {
	return s.withDraft(id, func(d *ReservationDraft) error {
		if d.Confirmed {
			return ErrDraftConfirmed
		}
		d.Contact = contact
		d.SpecialRequests = specialRequests
		return nil
	})
}

func (s *DraftService) UpdateRosterEntry(id string, index int, field, value string) error {
	return s.withDraft(id, func(d *ReservationDraft) error {
		if d.Confirmed {
			return ErrDraftConfirmed
		}
		return d.UpdateRosterEntry(index, field, value)
	})
}

func (s *DraftService) Advance(id string) (int, error) {
	step := 0
	err := s.withDraft(id, func(d *ReservationDraft) error {
		if err := d.Advance(s.now()); err != nil {
			step = d.Step
			return err
		}
		step = d.Step
		return nil
	})
	return step, err
}

func (s *DraftService) Retreat(id string) (int, error) {
	step := 0
	err := s.withDraft(id, func(d *ReservationDraft) error {
		d.Retreat()
		step = d.Step
		return nil
	})
	return step, err
}

func (s *DraftService) Quote(id string) (PricingBreakdown, error) {
	var breakdown PricingBreakdown
	err := s.withDraft(id, func(d *ReservationDraft) error {
		var qErr error
		breakdown, qErr = d.Quote(s.now())
		return qErr
	})
	return breakdown, err
}

// Confirm finalizes the draft, persists the snapshot and drops the session.
// The persisted booking (with its reference code) replaces the draft as the
// artifact of record.
func (s *DraftService) Confirm(id string) (models.Booking, error) {
	var snapshot BookingSnapshot
	err := s.withDraft(id, func(d *ReservationDraft) error {
		var cErr error
		snapshot, cErr = d.Confirm(s.now())
		return cErr
	})
	if err != nil {
		return models.Booking{}, err
	}

	booking, err := s.bookings.CreateFromSnapshot(snapshot)
	if err != nil {
		// keep the session so the user can retry the handoff
		s.mu.Lock()
		if session, ok := s.drafts[id]; ok {
			session.draft.Confirmed = false
		}
		s.mu.Unlock()
		return models.Booking{}, err
	}

	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
	return booking, nil
}

// Abandon discards a draft with no artifact.
func (s *DraftService) Abandon(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

// SweepExpired drops sessions idle longer than the TTL and returns how many
// were removed.
func (s *DraftService) SweepExpired() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.drafts {
		if session.touched.Before(cutoff) {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

// RunSweeper expires abandoned drafts until the context is cancelled.
func (s *DraftService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.SweepExpired(); n > 0 {
				log.Printf("draft sweeper removed %d expired session(s)", n)
			}
		}
	}
}
