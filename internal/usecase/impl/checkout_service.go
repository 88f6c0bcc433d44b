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

// wizardState is one user's in-memory checkout progress. It only exists
// between Start and Submit; a process restart loses it by design of the
// linear wizard, which then begins again at the address step.
type wizardState struct {
	step      usecase.CheckoutStep
	addresses []entity.Address
	selected  *int
	cart      entity.Cart
}

// checkoutService implements usecase.CheckoutUsecase.
type checkoutService struct {
	accounts gateway.AccountGateway
	carts    gateway.CartGateway
	orders   gateway.OrderGateway
	logger   *slog.Logger

	mu      sync.Mutex
	wizards map[string]*wizardState
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	accounts gateway.AccountGateway,
	carts gateway.CartGateway,
	orders gateway.OrderGateway,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		accounts: accounts,
		carts:    carts,
		orders:   orders,
		logger:   logger,
		wizards:  make(map[string]*wizardState),
	}
}

func (w *wizardState) view() *usecase.CheckoutView {
	addresses := make([]entity.Address, len(w.addresses))
	copy(addresses, w.addresses)
	items := make([]entity.CartItem, len(w.cart.Items))
	copy(items, w.cart.Items)

	var selected *int
	if w.selected != nil {
		idx := *w.selected
		selected = &idx
	}

	return &usecase.CheckoutView{
		Step:            w.step,
		Addresses:       addresses,
		SelectedAddress: selected,
		PaymentMethod:   entity.PaymentMethodCOD,
		Items:           items,
		Subtotal:        w.cart.Subtotal(),
	}
}

// Start (re)initializes the wizard: snapshot the cart and address book and
// land on the address step with the default address preselected.
func (srv *checkoutService) Start(ctx context.Context, userID string) (*usecase.CheckoutView, error) {
	cart, err := srv.carts.Cart(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	addresses, err := srv.accounts.Addresses(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	wizard := &wizardState{
		step:      usecase.StepAddress,
		addresses: addresses,
		cart:      *cart,
	}
	if idx := entity.DefaultAddressIndex(addresses); idx >= 0 {
		wizard.selected = &idx
	}

	srv.mu.Lock()
	srv.wizards[userID] = wizard
	srv.mu.Unlock()

	return wizard.view(), nil
}

func (srv *checkoutService) wizard(userID string) (*wizardState, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	wizard, ok := srv.wizards[userID]
	if !ok {
		return nil, domainerrors.ErrCheckoutNotStarted
	}

	return wizard, nil
}

func (srv *checkoutService) View(_ context.Context, userID string) (*usecase.CheckoutView, error) {
	wizard, err := srv.wizard(userID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	return wizard.view(), nil
}

func (srv *checkoutService) SelectAddress(_ context.Context, userID string, index int) (*usecase.CheckoutView, error) {
	wizard, err := srv.wizard(userID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if index < 0 || index >= len(wizard.addresses) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("address index out of range")
	}
	wizard.selected = &index

	return wizard.view(), nil
}

// Next advances one step. Leaving the address step requires a selection;
// leaving the payment step is unconditional because Cash on Delivery is the
// only method and is always preselected.
func (srv *checkoutService) Next(_ context.Context, userID string) (*usecase.CheckoutView, error) {
	wizard, err := srv.wizard(userID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	switch wizard.step {
	case usecase.StepAddress:
		if wizard.selected == nil {
			return nil, domainerrors.ErrAddressNotSelected
		}
		wizard.step = usecase.StepPayment
	case usecase.StepPayment:
		wizard.step = usecase.StepReview
	case usecase.StepReview:
		return nil, domainerrors.ErrWizardAtFinalStep
	}

	return wizard.view(), nil
}

func (srv *checkoutService) Back(_ context.Context, userID string) (*usecase.CheckoutView, error) {
	wizard, err := srv.wizard(userID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	switch wizard.step {
	case usecase.StepReview:
		wizard.step = usecase.StepPayment
	case usecase.StepPayment:
		wizard.step = usecase.StepAddress
	case usecase.StepAddress:
		// No-op at the first step.
	}

	return wizard.view(), nil
}

// Submit places the order from the review step. On success the wizard is
// cleared; on failure it stays at review so the customer can retry.
func (srv *checkoutService) Submit(ctx context.Context, userID string) (*usecase.OrderConfirmation, error) {
	wizard, err := srv.wizard(userID)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	if wizard.step != usecase.StepReview {
		srv.mu.Unlock()

		return nil, domainerrors.ErrInvalidInput.WithDetails("submit is only available at the review step")
	}
	if wizard.selected == nil {
		srv.mu.Unlock()

		return nil, domainerrors.ErrAddressNotSelected
	}
	if len(wizard.cart.Items) == 0 {
		srv.mu.Unlock()

		return nil, domainerrors.ErrInvalidInput.WithDetails("cart is empty")
	}

	draft := gateway.OrderDraft{
		ShippingAddress: wizard.addresses[*wizard.selected],
		PaymentMethod:   entity.PaymentMethodCOD,
	}
	for _, item := range wizard.cart.Items {
		draft.Items = append(draft.Items, entity.OrderItem{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			Size:          item.Size,
			UnitPrice:     item.UnitPrice,
			DiscountPrice: item.DiscountPrice,
		})
	}
	srv.mu.Unlock()

	orderID, err := srv.orders.Create(ctx, userID, draft)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	srv.mu.Lock()
	delete(srv.wizards, userID)
	srv.mu.Unlock()

	return &usecase.OrderConfirmation{OrderID: orderID}, nil
}
