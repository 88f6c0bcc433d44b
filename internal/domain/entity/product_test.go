package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Purchasable(t *testing.T) {
	assert.True(t, Product{Status: ProductStatusActive, Stock: 3}.Purchasable())
	assert.False(t, Product{Status: ProductStatusActive, Stock: 0}.Purchasable())
	assert.False(t, Product{Status: ProductStatusInactive, Stock: 3}.Purchasable())
	assert.False(t, Product{Status: "", Stock: 3}.Purchasable())
}

func TestFilterPurchasable_DisplayedCount(t *testing.T) {
	products := []Product{
		{ID: "1", Status: ProductStatusActive, Stock: 5},
		{ID: "2", Status: ProductStatusActive, Stock: 0},
		{ID: "3", Status: ProductStatusActive, Stock: 1},
		{ID: "4", Status: ProductStatusInactive, Stock: 9},
		{ID: "5", Status: ProductStatusActive, Stock: 2},
	}

	filtered := FilterPurchasable(products)

	assert.Len(t, filtered, 3)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)
	assert.Equal(t, "5", filtered[2].ID)
}

func TestProduct_DiscountDisplay(t *testing.T) {
	p := Product{Price: 1000, DiscountPrice: 700}

	assert.True(t, p.HasDiscount())
	assert.InDelta(t, 700, p.DisplayPrice(), 0.001)
	assert.Equal(t, 30, p.DiscountPercent())
}

func TestProduct_NoDiscount(t *testing.T) {
	p := Product{Price: 499}

	assert.False(t, p.HasDiscount())
	assert.InDelta(t, 499, p.DisplayPrice(), 0.001)
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestProduct_DiscountAbovePriceIgnored(t *testing.T) {
	p := Product{Price: 100, DiscountPrice: 150}

	assert.False(t, p.HasDiscount())
	assert.InDelta(t, 100, p.DisplayPrice(), 0.001)
}
