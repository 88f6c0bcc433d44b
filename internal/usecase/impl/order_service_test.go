package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

func seededOrders() []entity.Order {
	return []entity.Order{
		{ID: "o1", Status: entity.OrderStatusPending, TotalAmount: 1200},
		{ID: "o2", Status: entity.OrderStatusShipped, TotalAmount: 900},
	}
}

func TestOrderService_CancelPendingOptimistically(t *testing.T) {
	fake := &fakeOrderGateway{orders: seededOrders()}
	svc := NewOrderService(fake, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, "u1")
	require.NoError(t, err)

	view, err := svc.Cancel(ctx, "u1", "o1")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCancelled, view.Orders[0].Status)
	assert.Equal(t, []string{"o1"}, fake.cancelled)
}

func TestOrderService_CancelRollsBackWhenBackendRefuses(t *testing.T) {
	fake := &fakeOrderGateway{orders: seededOrders(), cancelErr: errors.New("already shipped")}
	svc := NewOrderService(fake, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, "u1", "o1")
	require.Error(t, err)

	// The cached status is back to pending; cancel can be retried.
	fake.cancelErr = nil
	view, err := svc.Cancel(ctx, "u1", "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, view.Orders[0].Status)
}

func TestOrderService_CancelRefusedForNonPending(t *testing.T) {
	fake := &fakeOrderGateway{orders: seededOrders()}
	svc := NewOrderService(fake, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, "u1", "o2")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	assert.Empty(t, fake.cancelled)
}

func TestOrderService_OtherOrdersStayInteractiveDuringCancel(t *testing.T) {
	fake := &fakeOrderGateway{
		orders: []entity.Order{
			{ID: "o1", Status: entity.OrderStatusPending},
			{ID: "o3", Status: entity.OrderStatusPending},
		},
		enter:   make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewOrderService(fake, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, "u1")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, cancelErr := svc.Cancel(ctx, "u1", "o1")
		done <- cancelErr
	}()

	// Wait for the first cancellation to reach the backend and park there.
	<-fake.enter
	fake.enter = nil

	// A duplicate cancel on the same order is refused, not queued.
	_, err = svc.Cancel(ctx, "u1", "o1")
	assert.ErrorIs(t, err, domainerrors.ErrMutationInFlight)

	// Other users and other orders are not blocked behind it.
	_, err = svc.List(ctx, "u2")
	require.NoError(t, err)

	view, err := svc.Cancel(ctx, "u1", "o3")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, view.Orders[1].Status)

	close(fake.release)
	require.NoError(t, <-done)
}

func TestOrderService_CancelWithoutPriorListFetchesFirst(t *testing.T) {
	fake := &fakeOrderGateway{orders: seededOrders()}
	svc := NewOrderService(fake, testLogger())

	view, err := svc.Cancel(context.Background(), "u1", "o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, view.Orders[0].Status)
}

func TestOrderService_DetailMapsNotFound(t *testing.T) {
	fake := &fakeOrderGateway{orders: seededOrders()}
	svc := NewOrderService(fake, testLogger())

	_, err := svc.Detail(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
