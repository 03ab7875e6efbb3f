package services

import (
	"sort"

	"resort-backend/models"
)

// CartLine is one menu item with its accumulated quantity.
type CartLine struct {
	ItemID    uint    `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Cart accumulates restaurant order lines for one browsing session. Never
// persisted; discarded on checkout or navigation away.
type Cart struct {
	lines map[uint]*CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[uint]*CartLine)}
}

// AddItem inserts the item with quantity 1, or bumps the quantity when the
// item is already in the cart.
func (c *Cart) AddItem(item models.MenuItem) {
	if line, ok := c.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[item.ID] = &CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	}
}

// SetQuantity overwrites a line's quantity; zero removes the line. Unknown
// ids are a silent no-op.
func (c *Cart) SetQuantity(itemID uint, quantity int) {
	line, ok := c.lines[itemID]
	if !ok {
		return
	}
	if quantity <= 0 {
		delete(c.lines, itemID)
		return
	}
	line.Quantity = quantity
}

func (c *Cart) RemoveItem(itemID uint) {
	delete(c.lines, itemID)
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities across lines, for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns the cart content ordered by item id for stable responses.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}
