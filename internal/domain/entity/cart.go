package entity

// CartItem is one line of the customer's cart. The (ProductID, Size) pair
// identifies a line; the same product in two sizes is two lines.
type CartItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unitPrice"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	Size          string  `json:"size,omitempty"`
	Quantity      int     `json:"quantity"` // always >= 1; a drop below 1 removes the line
	Image         string  `json:"image,omitempty"`
	InStock       bool    `json:"inStock"`
}

// Key identifies the cart line for in-flight tracking and lookups.
func (i CartItem) Key() string {
	return i.ProductID + "/" + i.Size
}

// EffectiveUnitPrice is the price one unit actually costs.
func (i CartItem) EffectiveUnitPrice() float64 {
	if i.DiscountPrice > 0 && i.DiscountPrice < i.UnitPrice {
		return i.DiscountPrice
	}

	return i.UnitPrice
}

// LineTotal is the effective price of the whole line.
func (i CartItem) LineTotal() float64 {
	return i.EffectiveUnitPrice() * float64(i.Quantity)
}

// Cart is the assembled cart view for one session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Clone returns a deep copy, used to snapshot state before an optimistic
// mutation so a failed backend call can restore it.
func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	return Cart{Items: items}
}

// FindItem returns the index of the line with the given key, or -1.
func (c Cart) FindItem(key string) int {
	for i, item := range c.Items {
		if item.Key() == key {
			return i
		}
	}

	return -1
}

// ItemCount is the total number of units across all lines.
func (c Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}

	return n
}

// Subtotal is the sum of all line totals at effective prices.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal()
	}

	return total
}

// Savings is how much the discounts shave off the regular-price total.
func (c Cart) Savings() float64 {
	var saved float64
	for _, item := range c.Items {
		saved += (item.UnitPrice - item.EffectiveUnitPrice()) * float64(item.Quantity)
	}

	return saved
}
