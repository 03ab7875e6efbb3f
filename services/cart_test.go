package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort-backend/models"
)

var (
	padThai = models.MenuItem{ID: 2, Name: "Pad Thai", UnitPrice: 180, Category: "mains"}
	icedTea = models.MenuItem{ID: 5, Name: "Thai Iced Tea", UnitPrice: 65, Category: "drinks"}
	dessert = models.MenuItem{ID: 4, Name: "Mango Sticky Rice", UnitPrice: 42, Category: "desserts"}
)

func TestCartAddItem(t *testing.T) {
	cart := NewCart()

	cart.AddItem(padThai)
	cart.AddItem(padThai)
	cart.AddItem(icedTea)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.InDelta(t, 2*180+65, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartRepeatedAddsMultiplyPrice(t *testing.T) {
	cart := NewCart()
	for i := 0; i < 7; i++ {
		cart.AddItem(dessert)
	}
	assert.InDelta(t, 7*42, cart.Total(), 1e-9)
	assert.Equal(t, 7, cart.ItemCount())
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(dessert)
	cart.AddItem(dessert)

	t.Run("zero removes the line", func(t *testing.T) {
		cart.SetQuantity(dessert.ID, 0)
		assert.InDelta(t, 0, cart.Total(), 1e-9)
		assert.Equal(t, 0, cart.ItemCount())
		assert.Empty(t, cart.Lines())
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		cart.SetQuantity(999, 5)
		assert.Empty(t, cart.Lines())
	})

	t.Run("overwrites rather than adds", func(t *testing.T) {
		cart.AddItem(padThai)
		cart.SetQuantity(padThai.ID, 4)
		assert.Equal(t, 4, cart.ItemCount())
		assert.InDelta(t, 4*180, cart.Total(), 1e-9)
	})
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(padThai)
	cart.AddItem(icedTea)

	cart.RemoveItem(padThai.ID)
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, icedTea.ID, cart.Lines()[0].ItemID)

	// removing again is a no-op
	cart.RemoveItem(padThai.ID)
	assert.Len(t, cart.Lines(), 1)
}

func TestCartLinesAreOrdered(t *testing.T) {
	cart := NewCart()
	cart.AddItem(icedTea)
	cart.AddItem(padThai)
	cart.AddItem(dessert)

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, uint(2), lines[0].ItemID)
	assert.Equal(t, uint(4), lines[1].ItemID)
	assert.Equal(t, uint(5), lines[2].ItemID)
}
