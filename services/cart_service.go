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

var ErrCartNotFound = errors.New("cart_not_found")

// MenuSource is the slice of the catalog the cart flow needs.
type MenuSource interface {
	MenuItemByID(id uint) (models.MenuItem, error)
}

type cartSession struct {
	cart    *Cart
	touched time.Time
}

// CartService owns the live restaurant carts, one per browsing session.
// Same ownership model as drafts: carts are never persisted and vanish on
// checkout or expiry.
type CartService struct {
	menu MenuSource

	mu    sync.Mutex
	carts map[string]*cartSession

	ttl time.Duration
	now func() time.Time
}

func NewCartService(menu MenuSource, ttl time.Duration) *CartService {
	return &CartService{
		menu:  menu,
		carts: make(map[string]*cartSession),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *CartService) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = &cartSession{cart: NewCart(), touched: s.now()}
	s.mu.Unlock()
	return id
}

func (s *CartService) withCart(id string, fn func(c *Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.carts[id]
	if !ok {
		return ErrCartNotFound
	}
	session.touched = s.now()
	return fn(session.cart)
}

// CartSummary is the read-only view handed to the transport layer.
type CartSummary struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func (s *CartService) Summary(id string) (CartSummary, error) {
	var summary CartSummary
	err := s.withCart(id, func(c *Cart) error {
		summary = CartSummary{
			ID:        id,
			Lines:     c.Lines(),
			Total:     c.Total(),
			ItemCount: c.ItemCount(),
		}
		return nil
	})
	return summary, err
}

// AddItem resolves the menu item and adds it to the cart (or bumps its
// quantity).
func (s *CartService) AddItem(id string, menuItemID uint) error {
	item, err := s.menu.MenuItemByID(menuItemID)
	if err != nil {
		return err
	}
	return s.withCart(id, func(c *Cart) error {
		c.AddItem(item)
		return nil
	})
}

func (s *CartService) SetQuantity(id string, menuItemID uint, quantity int) error {
	return s.withCart(id, func(c *Cart) error {
		c.SetQuantity(menuItemID, quantity)
		return nil
	})
}

func (s *CartService) RemoveItem(id string, menuItemID uint) error {
	return s.withCart(id, func(c *Cart) error {
		c.RemoveItem(menuItemID)
		return nil
	})
}

// Discard drops the cart, used both for checkout confirmation and explicit
// cancel.
func (s *CartService) Discard(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[id]; !ok {
		return ErrCartNotFound
	}
	delete(s.carts, id)
	return nil
}

func (s *CartService) SweepExpired() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.carts {
		if session.touched.Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed
}

func (s *CartService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.SweepExpired(); n > 0 {
				log.Printf("cart sweeper removed %d expired session(s)", n)
			}
		}
	}
}
