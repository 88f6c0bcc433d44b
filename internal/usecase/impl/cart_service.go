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

// cartState is the session-scoped cart: the last-known item list plus the
// per-item in-flight flags that block duplicate submissions.
type cartState struct {
	mu       sync.Mutex
	cart     entity.Cart
	loaded   bool
	inflight map[string]bool
}

func newCartState() *cartState {
	return &cartState{inflight: make(map[string]bool)}
}

// begin marks a line as having a mutation in flight. Other lines remain
// mutable; only a second mutation on the same line is refused.
func (s *cartState) begin(key string) error {
	if s.inflight[key] {
		return domainerrors.ErrMutationInFlight
	}
	s.inflight[key] = true

	return nil
}

func (s *cartState) end(key string) {
	delete(s.inflight, key)
}

// cartService implements usecase.CartUsecase.
type cartService struct {
	carts   gateway.CartGateway
	catalog gateway.CatalogGateway
	logger  *slog.Logger

	mu     sync.Mutex
	states map[string]*cartState
}

// NewCartService is the constructor for cartService.
func NewCartService(carts gateway.CartGateway, catalog gateway.CatalogGateway, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
		states:  make(map[string]*cartState),
	}
}

func (srv *cartService) state(userID string) *cartState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state, ok := srv.states[userID]
	if !ok {
		state = newCartState()
		srv.states[userID] = state
	}

	return state
}

func viewOf(cart entity.Cart) *usecase.CartView {
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return &usecase.CartView{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
		Savings:   cart.Savings(),
	}
}

// View fetches the cart fresh and replaces the local state; opening the
// cart page always hits the backend.
func (srv *cartService) View(ctx context.Context, userID string) (*usecase.CartView, error) {
	cart, err := srv.carts.Cart(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	state := srv.state(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.cart = *cart
	state.loaded = true

	return viewOf(state.cart), nil
}

// ensureLoaded fetches the cart once when a mutation arrives before any
// page view populated the local state.
func (srv *cartService) ensureLoaded(ctx context.Context, userID string, state *cartState) error {
	if state.loaded {
		return nil
	}

	cart, err := srv.carts.Cart(ctx, userID)
	if err != nil {
		return mapGatewayError(err)
	}
	state.cart = *cart
	state.loaded = true

	return nil
}

// mutate runs one optimistic cart mutation. The state lock only covers the
// local apply and rollback, never the backend call, so a duplicate request
// on the same line arrives while the flag is up and gets refused instead of
// queueing behind the network.
func (srv *cartService) mutate(
	ctx context.Context,
	userID, key string,
	apply func(state *cartState),
	call func() error,
) (*usecase.CartView, error) {
	state := srv.state(userID)

	state.mu.Lock()
	if err := srv.ensureLoaded(ctx, userID, state); err != nil {
		state.mu.Unlock()

		return nil, err
	}
	if err := state.begin(key); err != nil {
		state.mu.Unlock()

		return nil, err
	}
	state.mu.Unlock()

	defer func() {
		state.mu.Lock()
		state.end(key)
		state.mu.Unlock()
	}()

	err := optimistic(
		func() func() {
			state.mu.Lock()
			defer state.mu.Unlock()

			snapshot := state.cart.Clone()
			apply(state)

			return func() {
				state.mu.Lock()
				state.cart = snapshot
				state.mu.Unlock()
			}
		},
		call,
	)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	return viewOf(state.cart), nil
}

func (srv *cartService) Add(ctx context.Context, userID string, input usecase.AddToCartInput) (*usecase.CartView, error) {
	if input.Quantity < 1 {
		input.Quantity = 1
	}
	key := input.ProductID + "/" + input.Size

	state := srv.state(userID)
	state.mu.Lock()
	if err := srv.ensureLoaded(ctx, userID, state); err != nil {
		state.mu.Unlock()

		return nil, err
	}
	missing := state.cart.FindItem(key) < 0
	state.mu.Unlock()

	// A line the cart has never seen needs the catalog's name and pricing;
	// without them the optimistic view would show a nameless zero-priced
	// item until the next full fetch.
	var line entity.CartItem
	if missing {
		detail, err := srv.catalog.Product(ctx, input.ProductID)
		if err != nil {
			return nil, mapGatewayError(err)
		}
		line = entity.CartItem{
			ProductID:     input.ProductID,
			Name:          detail.Product.Name,
			UnitPrice:     detail.Product.Price,
			DiscountPrice: detail.Product.DiscountPrice,
			Size:          input.Size,
			Quantity:      input.Quantity,
			Image:         detail.Product.Thumbnail,
			InStock:       detail.Product.Purchasable(),
		}
	}

	return srv.mutate(ctx, userID, key,
		func(state *cartState) {
			if idx := state.cart.FindItem(key); idx >= 0 {
				state.cart.Items[idx].Quantity += input.Quantity
			} else if line.ProductID != "" {
				state.cart.Items = append(state.cart.Items, line)
			}
		},
		func() error {
			return srv.carts.AddItem(ctx, userID, gateway.AddCartItemInput{
				ProductID: input.ProductID,
				Size:      input.Size,
				Quantity:  input.Quantity,
			})
		},
	)
}

func (srv *cartService) ChangeQuantity(ctx context.Context, userID, productID, size string, delta int) (*usecase.CartView, error) {
	state := srv.state(userID)
	key := productID + "/" + size

	state.mu.Lock()
	if err := srv.ensureLoaded(ctx, userID, state); err != nil {
		state.mu.Unlock()

		return nil, err
	}
	idx := state.cart.FindItem(key)
	if idx < 0 {
		state.mu.Unlock()

		return nil, domainerrors.ErrCartItemNotFound
	}

	// Quantity never drops below 1; removal is an explicit operation.
	next := state.cart.Items[idx].Quantity + delta
	if next < 1 {
		next = 1
	}
	if next == state.cart.Items[idx].Quantity {
		defer state.mu.Unlock()

		return viewOf(state.cart), nil
	}
	state.mu.Unlock()

	return srv.mutate(ctx, userID, key,
		func(state *cartState) {
			if i := state.cart.FindItem(key); i >= 0 {
				state.cart.Items[i].Quantity = next
			}
		},
		func() error {
			return srv.carts.UpdateQuantity(ctx, userID, productID, size, next)
		},
	)
}

func (srv *cartService) Remove(ctx context.Context, userID, productID, size string) (*usecase.CartView, error) {
	state := srv.state(userID)
	key := productID + "/" + size

	state.mu.Lock()
	if err := srv.ensureLoaded(ctx, userID, state); err != nil {
		state.mu.Unlock()

		return nil, err
	}
	if state.cart.FindItem(key) < 0 {
		state.mu.Unlock()

		return nil, domainerrors.ErrCartItemNotFound
	}
	state.mu.Unlock()

	return srv.mutate(ctx, userID, key,
		func(state *cartState) {
			if idx := state.cart.FindItem(key); idx >= 0 {
				state.cart.Items = append(state.cart.Items[:idx], state.cart.Items[idx+1:]...)
			}
		},
		func() error {
			return srv.carts.RemoveItem(ctx, userID, productID, size)
		},
	)
}
