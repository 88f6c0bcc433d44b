package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAddressIndex_PicksFirstDefault(t *testing.T) {
	addresses := []Address{
		{ID: "1"},
		{ID: "2", IsDefault: true},
		{ID: "3", IsDefault: true},
	}

	assert.Equal(t, 1, DefaultAddressIndex(addresses))
}

func TestDefaultAddressIndex_FallsBackToFirst(t *testing.T) {
	addresses := []Address{{ID: "1"}, {ID: "2"}}

	assert.Equal(t, 0, DefaultAddressIndex(addresses))
}

func TestDefaultAddressIndex_Empty(t *testing.T) {
	assert.Equal(t, -1, DefaultAddressIndex(nil))
}

func TestAddressType_Valid(t *testing.T) {
	assert.True(t, AddressTypeHome.Valid())
	assert.True(t, AddressTypeWork.Valid())
	assert.True(t, AddressTypeOther.Valid())
	assert.False(t, AddressType("office").Valid())
}

func TestOrder_Cancellable(t *testing.T) {
	assert.True(t, Order{Status: OrderStatusPending}.Cancellable())
	assert.False(t, Order{Status: OrderStatusShipped}.Cancellable())
	assert.False(t, Order{Status: OrderStatusDelivered}.Cancellable())
	assert.False(t, Order{Status: OrderStatusCancelled}.Cancellable())
}
