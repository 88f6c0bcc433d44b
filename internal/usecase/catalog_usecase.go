// Package usecase contains the application-specific business rules of the
// storefront: page-level views assembled from the backend gateways.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SearchInput carries a search request.
type SearchInput struct {
	Query string `json:"q" query:"q"`
	Page  int    `json:"page" query:"page"`
	Limit int    `json:"limit" query:"limit"`
}

// --- Output DTOs ---

// HomeView is the landing page payload.
type HomeView struct {
	Categories []entity.Category `json:"categories"`
	Feed       []entity.Product  `json:"feed"`
	Trending   []entity.Product  `json:"trending"`
	// Fallback reports that the built-in record set replaced a failed
	// backend fetch, so the page still renders.
	Fallback bool `json:"fallback,omitempty"`
}

// CategoryView is a category listing page.
type CategoryView struct {
	Slug           string           `json:"slug"`
	Products       []entity.Product `json:"products"`
	DisplayedCount int              `json:"displayedCount"`
	Page           int              `json:"page"`
}

// ProductView is a product detail page.
type ProductView struct {
	Product entity.Product   `json:"product"`
	Related []entity.Product `json:"related"`
	Reviews []entity.Review  `json:"reviews"`
}

// SearchView is a search results page.
type SearchView struct {
	Query          string           `json:"query"`
	Products       []entity.Product `json:"products"`
	DisplayedCount int              `json:"displayedCount"`
	Total          int              `json:"total"`
	Page           int              `json:"page"`
}

// CatalogUsecase covers every unauthenticated catalog page.
type CatalogUsecase interface {
	Home(ctx context.Context) (*HomeView, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	CategoryProducts(ctx context.Context, slug string, page, limit int) (*CategoryView, error)
	ProductDetail(ctx context.Context, id string) (*ProductView, error)
	Search(ctx context.Context, input SearchInput) (*SearchView, error)

	// Suggestions supersedes any in-flight suggestion fetch for the same
	// requester key; the superseded request's context is cancelled.
	Suggestions(ctx context.Context, requester, query string) ([]string, error)
}
