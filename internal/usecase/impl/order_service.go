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

// orderState is one user's cached order list plus the per-order in-flight
// flags that block duplicate cancellations.
type orderState struct {
	mu       sync.Mutex
	orders   []entity.Order
	loaded   bool
	inflight map[string]bool
}

// orderService implements usecase.OrderUsecase.
type orderService struct {
	orders gateway.OrderGateway
	logger *slog.Logger

	mu     sync.Mutex
	states map[string]*orderState
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orders gateway.OrderGateway, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orders: orders,
		logger: logger,
		states: make(map[string]*orderState),
	}
}

func (srv *orderService) state(userID string) *orderState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	state, ok := srv.states[userID]
	if !ok {
		state = &orderState{inflight: make(map[string]bool)}
		srv.states[userID] = state
	}

	return state
}

func orderIndex(orders []entity.Order, orderID string) int {
	for i, order := range orders {
		if order.ID == orderID {
			return i
		}
	}

	return -1
}

func orderListView(orders []entity.Order) *usecase.OrderListView {
	out := make([]entity.Order, len(orders))
	copy(out, orders)

	return &usecase.OrderListView{Orders: out}
}

func (srv *orderService) List(ctx context.Context, userID string) (*usecase.OrderListView, error) {
	orders, err := srv.orders.Orders(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	if orders == nil {
		orders = []entity.Order{}
	}

	state := srv.state(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.orders = orders
	state.loaded = true

	return orderListView(state.orders), nil
}

func (srv *orderService) Detail(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := srv.orders.Order(ctx, userID, orderID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return order, nil
}

// Cancel marks the order cancelled optimistically in the cached list view
// and rolls the status back if the backend refuses. The state lock is
// released for the backend call so other orders, and a second user's list,
// stay interactive while a cancellation is in flight.
func (srv *orderService) Cancel(ctx context.Context, userID, orderID string) (*usecase.OrderListView, error) {
	state := srv.state(userID)

	state.mu.Lock()
	if !state.loaded {
		fetched, err := srv.orders.Orders(ctx, userID)
		if err != nil {
			state.mu.Unlock()

			return nil, mapGatewayError(err)
		}
		state.orders = fetched
		state.loaded = true
	}

	if state.inflight[orderID] {
		state.mu.Unlock()

		return nil, domainerrors.ErrMutationInFlight
	}

	idx := orderIndex(state.orders, orderID)
	if idx < 0 {
		state.mu.Unlock()

		return nil, domainerrors.ErrNotFound.WithDetails("order not found")
	}
	if !state.orders[idx].Cancellable() {
		state.mu.Unlock()

		return nil, domainerrors.ErrOrderNotCancellable
	}
	state.inflight[orderID] = true
	state.mu.Unlock()

	defer func() {
		state.mu.Lock()
		delete(state.inflight, orderID)
		state.mu.Unlock()
	}()

	err := optimistic(
		func() func() {
			state.mu.Lock()
			defer state.mu.Unlock()

			i := orderIndex(state.orders, orderID)
			if i < 0 {
				return func() {}
			}
			prev := state.orders[i].Status
			state.orders[i].Status = entity.OrderStatusCancelled

			return func() {
				state.mu.Lock()
				defer state.mu.Unlock()
				if j := orderIndex(state.orders, orderID); j >= 0 {
					state.orders[j].Status = prev
				}
			}
		},
		func() error {
			return srv.orders.Cancel(ctx, userID, orderID)
		},
	)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	return orderListView(state.orders), nil
}
