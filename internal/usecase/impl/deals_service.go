package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"
)

// dealsService implements usecase.DealsUsecase. Countdowns are invented
// locally per the flash-deals presentation; they expire nothing.
type dealsService struct {
	catalog  gateway.CatalogGateway
	tracker  *countdownTracker
	fallback bool
	logger   *slog.Logger
}

// NewDealsService is the constructor for dealsService. The shared countdown
// ticker is torn down with the application lifecycle.
func NewDealsService(
	lc fx.Lifecycle,
	cfg *config.Config,
	catalog gateway.CatalogGateway,
	logger *slog.Logger,
) usecase.DealsUsecase {
	tracker := newCountdownTracker(cfg.Deals.MinSeconds, cfg.Deals.MaxSeconds, cfg.Deals.Tick)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			tracker.Stop()

			return nil
		},
	})

	return &dealsService{
		catalog:  catalog,
		tracker:  tracker,
		fallback: cfg.Fallback.Enabled,
		logger:   logger,
	}
}

func (srv *dealsService) View(ctx context.Context) (*usecase.DealsView, error) {
	products, err := srv.catalog.TaggedFeed(ctx, []string{"deals"})
	if err != nil {
		if !srv.fallback {
			return nil, mapGatewayError(err)
		}
		srv.logger.Warn("backend unavailable, serving fallback deals", slog.Any("error", err))

		return srv.assemble(fallbackDeals(), true), nil
	}

	return srv.assemble(entity.FilterPurchasable(products), false), nil
}

func (srv *dealsService) assemble(products []entity.Product, fallback bool) *usecase.DealsView {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	srv.tracker.Observe(ids)

	deals := make([]usecase.DealItem, 0, len(products))
	for _, p := range products {
		deals = append(deals, usecase.DealItem{
			Product:          p,
			RemainingSeconds: srv.tracker.Remaining(p.ID),
		})
	}

	return &usecase.DealsView{Deals: deals, Fallback: fallback}
}
