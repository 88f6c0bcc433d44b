package backend

import (
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"
)

// Wire types mirror the backend's JSON shapes, which predate this gateway
// and are not uniform: identifiers arrive as "_id" or "id", single images
// as "image" or "thumbnail", category references as a slug string or an
// embedded object. The toEntity mappers flatten all of that into the fixed
// view-model types.

type wireProduct struct {
	MongoID       string          `json:"_id"`
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	DiscountPrice float64         `json:"discountPrice"`
	Thumbnail     string          `json:"thumbnail"`
	Image         string          `json:"image"`
	Images        []string        `json:"images"`
	Stock         int             `json:"stock"`
	Status        string          `json:"status"`
	Category      json.RawMessage `json:"category"`
	Tags          []string        `json:"tags"`
}

func (w wireProduct) toEntity() entity.Product {
	return entity.Product{
		ID:            firstNonEmpty(w.MongoID, w.ID),
		Name:          w.Name,
		Price:         w.Price,
		DiscountPrice: w.DiscountPrice,
		Thumbnail:     firstNonEmpty(w.Thumbnail, w.Image),
		Images:        w.Images,
		Stock:         w.Stock,
		Status:        w.Status,
		CategorySlug:  categorySlug(w.Category),
		Tags:          w.Tags,
	}
}

func mapProducts(wires []wireProduct) []entity.Product {
	products := make([]entity.Product, len(wires))
	for i, w := range wires {
		products[i] = w.toEntity()
	}

	return products
}

type wireCategory struct {
	MongoID      string `json:"_id"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}

func (w wireCategory) toEntity() entity.Category {
	return entity.Category{
		ID:           firstNonEmpty(w.MongoID, w.ID),
		Name:         w.Name,
		Slug:         w.Slug,
		Image:        w.Image,
		ProductCount: w.ProductCount,
	}
}

type wireCartItem struct {
	ProductID     string  `json:"productId"`
	MongoID       string  `json:"_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice"`
	Size          string  `json:"size"`
	Quantity      int     `json:"quantity"`
	Image         string  `json:"image"`
	InStock       *bool   `json:"inStock"`
	Stock         int     `json:"stock"`
}

func (w wireCartItem) toEntity() entity.CartItem {
	inStock := w.Stock > 0
	if w.InStock != nil {
		inStock = *w.InStock
	}
	quantity := w.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return entity.CartItem{
		ProductID:     firstNonEmpty(w.ProductID, w.MongoID),
		Name:          w.Name,
		UnitPrice:     w.Price,
		DiscountPrice: w.DiscountPrice,
		Size:          w.Size,
		Quantity:      quantity,
		Image:         w.Image,
		InStock:       inStock,
	}
}

type wireAddress struct {
	MongoID    string `json:"_id"`
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	Apartment  string `json:"apartment"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Type       string `json:"type"`
	IsDefault  bool   `json:"isDefault"`
}

func (w wireAddress) toEntity() entity.Address {
	addressType := entity.AddressType(w.Type)
	if !addressType.Valid() {
		addressType = entity.AddressTypeOther
	}

	return entity.Address{
		ID:         firstNonEmpty(w.MongoID, w.ID),
		FullName:   w.FullName,
		Phone:      w.Phone,
		Street:     w.Street,
		Apartment:  w.Apartment,
		City:       w.City,
		State:      w.State,
		PostalCode: w.PostalCode,
		Country:    w.Country,
		Type:       addressType,
		IsDefault:  w.IsDefault,
	}
}

type wireOrderItem struct {
	ProductID     string  `json:"productId"`
	StoreID       string  `json:"storeId"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Size          string  `json:"size"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice"`
}

type wireOrder struct {
	MongoID         string          `json:"_id"`
	ID              string          `json:"id"`
	Items           []wireOrderItem `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	DiscountAmount  float64         `json:"discountAmount"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	ShippingAddress wireAddress     `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (w wireOrder) toEntity() entity.Order {
	items := make([]entity.OrderItem, len(w.Items))
	for i, item := range w.Items {
		items[i] = entity.OrderItem{
			ProductID:     item.ProductID,
			StoreID:       item.StoreID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			Size:          item.Size,
			UnitPrice:     item.Price,
			DiscountPrice: item.DiscountPrice,
		}
	}

	return entity.Order{
		ID:              firstNonEmpty(w.MongoID, w.ID),
		Items:           items,
		TotalAmount:     w.TotalAmount,
		DiscountAmount:  w.DiscountAmount,
		Status:          entity.OrderStatus(w.Status),
		PaymentMethod:   w.PaymentMethod,
		PaymentStatus:   w.PaymentStatus,
		ShippingAddress: w.ShippingAddress.toEntity(),
		CreatedAt:       w.CreatedAt,
	}
}

type wireUser struct {
	MongoID   string    `json:"_id"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w wireUser) toEntity() entity.User {
	return entity.User{
		ID:        firstNonEmpty(w.MongoID, w.ID),
		Name:      w.Name,
		Email:     w.Email,
		Phone:     w.Phone,
		Avatar:    w.Avatar,
		CreatedAt: w.CreatedAt,
	}
}

type wireReview struct {
	MongoID   string    `json:"_id"`
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w wireReview) toEntity() entity.Review {
	return entity.Review{
		ID:        firstNonEmpty(w.MongoID, w.ID),
		ProductID: w.ProductID,
		UserID:    w.UserID,
		UserName:  w.UserName,
		Rating:    w.Rating,
		Comment:   w.Comment,
		CreatedAt: w.CreatedAt,
	}
}

type wireWishlistItem struct {
	ProductID string    `json:"productId"`
	MongoID   string    `json:"_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	AddedAt   time.Time `json:"addedAt"`
}

func (w wireWishlistItem) toEntity() entity.WishlistItem {
	return entity.WishlistItem{
		ProductID: firstNonEmpty(w.ProductID, w.MongoID),
		Name:      w.Name,
		Price:     w.Price,
		Image:     w.Image,
		AddedAt:   w.AddedAt,
	}
}

// categorySlug flattens a category reference that may be a bare slug string
// or an embedded category object.
func categorySlug(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var slug string
	if err := json.Unmarshal(raw, &slug); err == nil {
		return slug
	}

	var ref struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &ref); err == nil {
		return firstNonEmpty(ref.Slug, ref.Name)
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
