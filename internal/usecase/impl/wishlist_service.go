package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"
)

// wishlistService implements usecase.WishlistUsecase.
type wishlistService struct {
	wishlist gateway.WishlistGateway
	logger   *slog.Logger

	mu     sync.Mutex
	states map[string]*wishlistState
}

type wishlistState struct {
	mu       sync.Mutex
	items    []entity.WishlistItem
	loaded   bool
	inflight map[string]bool
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(wishlist gateway.WishlistGateway, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		wishlist: wishlist,
		logger:   logger,
		states:   make(map[string]*wishlistState),
	}
}

func wishlistIndex(items []entity.WishlistItem, productID string) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

func (srv *wishlistService) state(userID string) *wishlistState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state, ok := srv.states[userID]
	if !ok {
		state = &wishlistState{inflight: make(map[string]bool)}
		srv.states[userID] = state
	}

	return state
}

func (srv *wishlistService) View(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	items, err := srv.wishlist.Wishlist(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	if items == nil {
		items = []entity.WishlistItem{}
	}

	state := srv.state(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.items = items
	state.loaded = true

	out := make([]entity.WishlistItem, len(items))
	copy(out, items)

	return out, nil
}

// Toggle flips the saved state of a product, optimistically. The returned
// flag reports whether the product ended up on the wishlist. The lock is
// released for the backend call so a duplicate toggle on the same product
// is refused rather than queued.
func (srv *wishlistService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	state := srv.state(userID)

	state.mu.Lock()
	if !state.loaded {
		items, err := srv.wishlist.Wishlist(ctx, userID)
		if err != nil {
			state.mu.Unlock()

			return false, mapGatewayError(err)
		}
		state.items = items
		state.loaded = true
	}

	if state.inflight[productID] {
		state.mu.Unlock()

		return false, domainerrors.ErrMutationInFlight
	}
	state.inflight[productID] = true

	saved := wishlistIndex(state.items, productID) < 0
	state.mu.Unlock()

	defer func() {
		state.mu.Lock()
		delete(state.inflight, productID)
		state.mu.Unlock()
	}()

	err := optimistic(
		func() func() {
			state.mu.Lock()
			defer state.mu.Unlock()

			snapshot := make([]entity.WishlistItem, len(state.items))
			copy(snapshot, state.items)

			// The index is resolved under the lock; one captured earlier
			// could be stale after a concurrent toggle of another product.
			if saved {
				state.items = append(state.items, entity.WishlistItem{ProductID: productID})
			} else if i := wishlistIndex(state.items, productID); i >= 0 {
				state.items = append(state.items[:i], state.items[i+1:]...)
			}

			return func() {
				state.mu.Lock()
				state.items = snapshot
				state.mu.Unlock()
			}
		},
		func() error {
			if saved {
				return srv.wishlist.Add(ctx, userID, productID)
			}

			return srv.wishlist.Remove(ctx, userID, productID)
		},
	)
	if err != nil {
		return !saved, mapGatewayError(err)
	}

	return saved, nil
}
