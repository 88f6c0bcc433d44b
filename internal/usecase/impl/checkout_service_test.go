package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func checkoutFixtures() (*fakeAccountGateway, *fakeCartGateway, *fakeOrderGateway) {
	accounts := &fakeAccountGateway{addresses: []entity.Address{
		{ID: "a1", FullName: "A One", City: "Springfield"},
		{ID: "a2", FullName: "A Two", City: "Shelbyville", IsDefault: true},
	}}
	carts := &fakeCartGateway{cart: seededCart()}
	orders := &fakeOrderGateway{createdID: "ord-1"}

	return accounts, carts, orders
}

func TestCheckoutService_StartPreselectsDefaultAddress(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	svc := NewCheckoutService(accounts, carts, orders, testLogger())

	view, err := svc.Start(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, usecase.StepAddress, view.Step)
	require.NotNil(t, view.SelectedAddress)
	assert.Equal(t, 1, *view.SelectedAddress)
	assert.Equal(t, entity.PaymentMethodCOD, view.PaymentMethod)
	assert.Len(t, view.Items, 2)
}

func TestCheckoutService_NextGatedOnAddressSelection(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	accounts.addresses = nil // no addresses, nothing preselected
	svc := NewCheckoutService(accounts, carts, orders, testLogger())

	_, err := svc.Start(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.Next(context.Background(), "u1")
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotSelected)
}

func TestCheckoutService_LinearProgressionAndBack(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	svc := NewCheckoutService(accounts, carts, orders, testLogger())
	ctx := context.Background()

	_, err := svc.Start(ctx, "u1")
	require.NoError(t, err)

	view, err := svc.Next(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StepPayment, view.Step)

	// payment -> review needs no extra input: COD is always preselected.
	view, err = svc.Next(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StepReview, view.Step)

	_, err = svc.Next(ctx, "u1")
	assert.ErrorIs(t, err, domainerrors.ErrWizardAtFinalStep)

	view, err = svc.Back(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StepPayment, view.Step)

	view, err = svc.Back(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StepAddress, view.Step)

	// Back at the first step is a no-op, never an error.
	view, err = svc.Back(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StepAddress, view.Step)
}

func TestCheckoutService_SelectAddressValidatesIndex(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	svc := NewCheckoutService(accounts, carts, orders, testLogger())

	_, err := svc.Start(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.SelectAddress(context.Background(), "u1", 5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	view, err := svc.SelectAddress(context.Background(), "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, *view.SelectedAddress)
}

func TestCheckoutService_SubmitBuildsDraftAndClearsWizard(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	svc := NewCheckoutService(accounts, carts, orders, testLogger())
	ctx := context.Background()

	_, err := svc.Start(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Next(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Next(ctx, "u1")
	require.NoError(t, err)

	confirmation, err := svc.Submit(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ord-1", confirmation.OrderID)

	require.Len(t, orders.drafts, 1)
	draft := orders.drafts[0]
	assert.Equal(t, "a2", draft.ShippingAddress.ID)
	assert.Equal(t, entity.PaymentMethodCOD, draft.PaymentMethod)
	require.Len(t, draft.Items, 2)
	assert.Equal(t, "p1", draft.Items[0].ProductID)

	// The wizard is gone; a fresh checkout must Start again.
	_, err = svc.View(ctx, "u1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}

func TestCheckoutService_SubmitFailureStaysAtReview(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	orders.createErr = errors.New("payment hold failed")
	svc := NewCheckoutService(accounts, carts, orders, testLogger())
	ctx := context.Background()

	_, err := svc.Start(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Next(ctx, "u1")
	require.NoError(t, err)
	_, err = svc.Next(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "u1")
	require.Error(t, err)

	view, err := svc.View(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StepReview, view.Step)
}

func TestCheckoutService_SubmitOnlyFromReview(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	svc := NewCheckoutService(accounts, carts, orders, testLogger())

	_, err := svc.Start(context.Background(), "u1")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "u1")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCheckoutService_OperationsRequireStart(t *testing.T) {
	accounts, carts, orders := checkoutFixtures()
	svc := NewCheckoutService(accounts, carts, orders, testLogger())

	_, err := svc.Next(context.Background(), "u1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}
