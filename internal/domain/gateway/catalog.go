package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductDetail is a product page payload: the product plus related items.
type ProductDetail struct {
	Product entity.Product
	Related []entity.Product
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Products []entity.Product
	Total    int
	Page     int
}

// CatalogGateway reads the public catalog. None of these calls require a
// session; all of them carry no-store cache semantics.
type CatalogGateway interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	ProductsByCategory(ctx context.Context, slug string, page Page) ([]entity.Product, error)
	Product(ctx context.Context, id string) (*ProductDetail, error)
	Search(ctx context.Context, query string, page Page) (*SearchResult, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
	RandomFeed(ctx context.Context, page Page) ([]entity.Product, error)
	TaggedFeed(ctx context.Context, tags []string) ([]entity.Product, error)
}
