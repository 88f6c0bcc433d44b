package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const defaultPageLimit = 20

// catalogService implements usecase.CatalogUsecase.
type catalogService struct {
	catalog  gateway.CatalogGateway
	reviews  gateway.ReviewGateway
	fallback bool
	logger   *slog.Logger

	// suggestion supersession: one in-flight fetch per requester key.
	suggestMu  sync.Mutex
	suggest    map[string]suggestSlot
	suggestSeq uint64
}

// suggestSlot tracks the newest in-flight suggestion fetch for a requester.
type suggestSlot struct {
	cancel context.CancelFunc
	seq    uint64
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	cfg *config.Config,
	catalog gateway.CatalogGateway,
	reviews gateway.ReviewGateway,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog:  catalog,
		reviews:  reviews,
		fallback: cfg.Fallback.Enabled,
		logger:   logger,
		suggest:  make(map[string]suggestSlot),
	}
}

// Home assembles the landing page. When the backend is down and fallback is
// enabled, the built-in record set is substituted so the page still renders.
func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeView, error) {
	categories, err := srv.catalog.Categories(ctx)
	if err != nil {
		return srv.homeFallback(err)
	}

	feed, err := srv.catalog.RandomFeed(ctx, gateway.Page{Number: 1, Limit: defaultPageLimit})
	if err != nil {
		return srv.homeFallback(err)
	}

	trending, err := srv.catalog.TaggedFeed(ctx, []string{"trending"})
	if err != nil {
		// Trending is decorative; the page renders without it.
		srv.logger.Warn("trending feed unavailable", slog.Any("error", err))
		trending = nil
	}

	return &usecase.HomeView{
		Categories: categories,
		Feed:       entity.FilterPurchasable(feed),
		Trending:   entity.FilterPurchasable(trending),
	}, nil
}

func (srv *catalogService) homeFallback(cause error) (*usecase.HomeView, error) {
	if !srv.fallback {
		return nil, mapGatewayError(cause)
	}
	srv.logger.Warn("backend unavailable, serving fallback home", slog.Any("error", cause))

	return &usecase.HomeView{
		Categories: fallbackCategories(),
		Feed:       fallbackProducts(),
		Fallback:   true,
	}, nil
}

func (srv *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.catalog.Categories(ctx)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return categories, nil
}

func (srv *catalogService) CategoryProducts(ctx context.Context, slug string, page, limit int) (*usecase.CategoryView, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	products, err := srv.catalog.ProductsByCategory(ctx, slug, gateway.Page{Number: page, Limit: limit})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	purchasable := entity.FilterPurchasable(products)

	return &usecase.CategoryView{
		Slug:           slug,
		Products:       purchasable,
		DisplayedCount: len(purchasable),
		Page:           page,
	}, nil
}

func (srv *catalogService) ProductDetail(ctx context.Context, id string) (*usecase.ProductView, error) {
	detail, err := srv.catalog.Product(ctx, id)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	reviews, err := srv.reviews.ByProduct(ctx, id)
	if err != nil {
		// Reviews never block the product page.
		srv.logger.Warn("reviews unavailable", slog.String("product", id), slog.Any("error", err))
		reviews = nil
	}

	return &usecase.ProductView{
		Product: detail.Product,
		Related: entity.FilterPurchasable(detail.Related),
		Reviews: reviews,
	}, nil
}

func (srv *catalogService) Search(ctx context.Context, input usecase.SearchInput) (*usecase.SearchView, error) {
	if strings.TrimSpace(input.Query) == "" {
		return &usecase.SearchView{Query: input.Query}, nil
	}
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = defaultPageLimit
	}

	result, err := srv.catalog.Search(ctx, input.Query, gateway.Page{Number: input.Page, Limit: input.Limit})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	purchasable := entity.FilterPurchasable(result.Products)

	return &usecase.SearchView{
		Query:          input.Query,
		Products:       purchasable,
		DisplayedCount: len(purchasable),
		Total:          result.Total,
		Page:           result.Page,
	}, nil
}

// Suggestions fetches search-as-you-type completions. A new query from the
// same requester cancels the previous in-flight fetch, so only the latest
// keystroke's request survives.
func (srv *catalogService) Suggestions(ctx context.Context, requester, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)

	srv.suggestMu.Lock()
	if prev, ok := srv.suggest[requester]; ok {
		prev.cancel()
	}
	srv.suggestSeq++
	seq := srv.suggestSeq
	srv.suggest[requester] = suggestSlot{cancel: cancel, seq: seq}
	srv.suggestMu.Unlock()

	defer func() {
		srv.suggestMu.Lock()
		// Only clear the slot if it is still ours; a newer request may
		// have replaced it already.
		if current, ok := srv.suggest[requester]; ok && current.seq == seq {
			delete(srv.suggest, requester)
		}
		srv.suggestMu.Unlock()
		cancel()
	}()

	suggestions, err := srv.catalog.Suggestions(fetchCtx, query)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(fetchCtx.Err(), context.Canceled) {
			// Superseded by a newer keystroke; nothing to surface.
			return []string{}, nil
		}

		return nil, mapGatewayError(err)
	}

	return suggestions, nil
}
