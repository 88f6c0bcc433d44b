package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", UnitPrice: 1000, DiscountPrice: 700, Quantity: 2},
		{ProductID: "b", UnitPrice: 250, Quantity: 1},
	}}

	assert.Equal(t, 3, cart.ItemCount())
	assert.InDelta(t, 1650, cart.Subtotal(), 0.001)
	assert.InDelta(t, 600, cart.Savings(), 0.001)
}

func TestCart_CloneIsIndependent(t *testing.T) {
	cart := Cart{Items: []CartItem{{ProductID: "a", Quantity: 2}}}

	snapshot := cart.Clone()
	cart.Items[0].Quantity = 5

	assert.Equal(t, 2, snapshot.Items[0].Quantity)
}

func TestCart_FindItem(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", Size: "M"},
		{ProductID: "a", Size: "L"},
	}}

	assert.Equal(t, 1, cart.FindItem("a/L"))
	assert.Equal(t, -1, cart.FindItem("a/XL"))
}
