// Package entity contains the view-model objects the storefront works with.
// Every entity here is a transient projection of backend-owned data; nothing
// in this package is persisted by the gateway.
package entity

import "math"

// ProductStatus values the backend reports for a product.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product is the storefront projection of a catalog product.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discountPrice,omitempty"` // zero means no discount
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Images        []string `json:"images,omitempty"`
	Stock         int      `json:"stock"`
	Status        string   `json:"status"`
	CategorySlug  string   `json:"categorySlug,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// Purchasable reports whether the product can be added to a cart.
// Every list view filters on this before computing displayed counts.
func (p Product) Purchasable() bool {
	return p.Status == ProductStatusActive && p.Stock > 0
}

// HasDiscount reports whether a discounted price should be displayed.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice > 0 && p.DiscountPrice < p.Price
}

// DisplayPrice returns the price the customer pays: the discount price when
// one is set, the regular price otherwise.
func (p Product) DisplayPrice() float64 {
	if p.HasDiscount() {
		return p.DiscountPrice
	}

	return p.Price
}

// DiscountPercent returns the rounded percentage knocked off the regular
// price, e.g. price=1000 and discountPrice=700 yields 30.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() || p.Price <= 0 {
		return 0
	}

	return int(math.Round((p.Price - p.DiscountPrice) / p.Price * 100))
}

// FilterPurchasable returns only the products passing the purchasability
// predicate, preserving input order.
func FilterPurchasable(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Purchasable() {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// Category is the storefront projection of a catalog category.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount"`
}
