package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCartGateway serves a canned cart and records mutations. Setting err
// fails every mutation; enter/release make a mutation block so tests can
// observe the in-flight window.
type fakeCartGateway struct {
	mu      sync.Mutex
	cart    entity.Cart
	err     error
	adds    []gateway.AddCartItemInput
	updates []int
	removes []string

	enter   chan struct{}
	release chan struct{}
}

func (f *fakeCartGateway) Cart(context.Context, string) (*entity.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart := f.cart.Clone()

	return &cart, nil
}

func (f *fakeCartGateway) block() {
	if f.enter != nil {
		f.enter <- struct{}{}
		<-f.release
	}
}

func (f *fakeCartGateway) AddItem(_ context.Context, _ string, input gateway.AddCartItemInput) error {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds = append(f.adds, input)

	return f.err
}

func (f *fakeCartGateway) UpdateQuantity(_ context.Context, _, _, _ string, quantity int) error {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, quantity)

	return f.err
}

func (f *fakeCartGateway) RemoveItem(_ context.Context, _, productID, size string) error {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes = append(f.removes, productID+"/"+size)

	return f.err
}

type fakeWishlistGateway struct {
	mu      sync.Mutex
	items   []entity.WishlistItem
	err     error
	added   []string
	removed []string

	enter   chan struct{}
	release chan struct{}
}

func (f *fakeWishlistGateway) block() {
	if f.enter != nil {
		f.enter <- struct{}{}
		<-f.release
	}
}

func (f *fakeWishlistGateway) Wishlist(context.Context, string) ([]entity.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.WishlistItem, len(f.items))
	copy(out, f.items)

	return out, nil
}

func (f *fakeWishlistGateway) Add(_ context.Context, _, productID string) error {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, productID)

	return f.err
}

func (f *fakeWishlistGateway) Remove(_ context.Context, _, productID string) error {
	f.block()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, productID)

	return f.err
}

// fakeOrderGateway serves canned orders; enter/release make Cancel block so
// tests can observe the in-flight window.
type fakeOrderGateway struct {
	mu        sync.Mutex
	orders    []entity.Order
	cancelErr error
	createErr error
	createdID string
	drafts    []gateway.OrderDraft
	cancelled []string

	enter   chan struct{}
	release chan struct{}
}

func (f *fakeOrderGateway) Orders(context.Context, string) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Order, len(f.orders))
	copy(out, f.orders)

	return out, nil
}

func (f *fakeOrderGateway) Order(_ context.Context, _, orderID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID {
			order := o

			return &order, nil
		}
	}

	return nil, gateway.ErrNotFound
}

func (f *fakeOrderGateway) Create(_ context.Context, _ string, draft gateway.OrderDraft) (string, error) {
	f.drafts = append(f.drafts, draft)
	if f.createErr != nil {
		return "", f.createErr
	}

	return f.createdID, nil
}

func (f *fakeOrderGateway) Cancel(_ context.Context, _, orderID string) error {
	if f.enter != nil {
		f.enter <- struct{}{}
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, orderID)

	return f.cancelErr
}

type fakeAccountGateway struct {
	creds      *gateway.Credentials
	loginErr   error
	addresses  []entity.Address
	user       *entity.User
	lastGoogle *service.GoogleIdentity
}

func (f *fakeAccountGateway) Login(context.Context, string, string) (*gateway.Credentials, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.creds, nil
}

func (f *fakeAccountGateway) Register(context.Context, gateway.RegisterInput) (*gateway.Credentials, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.creds, nil
}

func (f *fakeAccountGateway) GoogleLogin(_ context.Context, identity service.GoogleIdentity) (*gateway.Credentials, error) {
	f.lastGoogle = &identity
	if f.loginErr != nil {
		return nil, f.loginErr
	}

	return f.creds, nil
}

func (f *fakeAccountGateway) Profile(context.Context, string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeAccountGateway) UpdateProfile(context.Context, string, gateway.ProfileUpdate) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeAccountGateway) Addresses(context.Context, string) ([]entity.Address, error) {
	out := make([]entity.Address, len(f.addresses))
	copy(out, f.addresses)

	return out, nil
}

func (f *fakeAccountGateway) CreateAddress(_ context.Context, _ string, address entity.Address) (*entity.Address, error) {
	address.ID = "addr-new"
	f.addresses = append(f.addresses, address)

	return &address, nil
}

type fakeCatalogGateway struct {
	categories []entity.Category
	products   []entity.Product
	tagged     []entity.Product
	detail     *gateway.ProductDetail
	search     *gateway.SearchResult
	suggest    []string
	err        error

	lastTags  []string
	suggested []string
}

func (f *fakeCatalogGateway) Categories(context.Context) ([]entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.categories, nil
}

func (f *fakeCatalogGateway) ProductsByCategory(context.Context, string, gateway.Page) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.products, nil
}

func (f *fakeCatalogGateway) Product(context.Context, string) (*gateway.ProductDetail, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.detail, nil
}

func (f *fakeCatalogGateway) Search(context.Context, string, gateway.Page) (*gateway.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.search, nil
}

func (f *fakeCatalogGateway) Suggestions(ctx context.Context, query string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.suggested = append(f.suggested, query)
	if f.err != nil {
		return nil, f.err
	}

	return f.suggest, nil
}

func (f *fakeCatalogGateway) RandomFeed(context.Context, gateway.Page) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.products, nil
}

func (f *fakeCatalogGateway) TaggedFeed(_ context.Context, tags []string) ([]entity.Product, error) {
	f.lastTags = tags
	if f.err != nil {
		return nil, f.err
	}

	return f.tagged, nil
}

type fakeReviewGateway struct {
	reviews []entity.Review
	err     error
	created []entity.Review
}

func (f *fakeReviewGateway) ByProduct(context.Context, string) ([]entity.Review, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.reviews, nil
}

func (f *fakeReviewGateway) Create(_ context.Context, _ string, review entity.Review) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, review)

	return nil
}

// memorySessions is an in-memory service.SessionStore.
type memorySessions struct {
	mu          sync.Mutex
	session     service.Session
	has         bool
	invalidated int
}

func (m *memorySessions) Current() (service.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.session, m.has
}

func (m *memorySessions) Save(session service.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	m.has = true

	return nil
}

func (m *memorySessions) Invalidate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = service.Session{}
	m.has = false
	m.invalidated++

	return nil
}

type fakeVerifier struct {
	identity *service.GoogleIdentity
	err      error
}

func (f *fakeVerifier) Verify(context.Context, string) (*service.GoogleIdentity, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.identity, nil
}
