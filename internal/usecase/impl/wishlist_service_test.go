package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
)

func TestWishlistService_ToggleAddsWhenAbsent(t *testing.T) {
	fake := &fakeWishlistGateway{}
	svc := NewWishlistService(fake, testLogger())

	saved, err := svc.Toggle(context.Background(), "u1", "p1")
	require.NoError(t, err)

	assert.True(t, saved)
	assert.Equal(t, []string{"p1"}, fake.added)
}

func TestWishlistService_ToggleRemovesWhenPresent(t *testing.T) {
	fake := &fakeWishlistGateway{items: []entity.WishlistItem{{ProductID: "p1"}}}
	svc := NewWishlistService(fake, testLogger())

	saved, err := svc.Toggle(context.Background(), "u1", "p1")
	require.NoError(t, err)

	assert.False(t, saved)
	assert.Equal(t, []string{"p1"}, fake.removed)
}

func TestWishlistService_ConcurrentTogglesRemoveTheRightProducts(t *testing.T) {
	fake := &fakeWishlistGateway{
		items:   []entity.WishlistItem{{ProductID: "p1"}, {ProductID: "p2"}},
		enter:   make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewWishlistService(fake, testLogger())
	ctx := context.Background()

	_, err := svc.View(ctx, "u1")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, toggleErr := svc.Toggle(ctx, "u1", "p1")
		done <- toggleErr
	}()

	// p1's removal is parked in the backend; removing p2 meanwhile shifts
	// the list and must still take out p2, not whatever sits at its old
	// index.
	<-fake.enter
	fake.enter = nil
	saved, err := svc.Toggle(ctx, "u1", "p2")
	require.NoError(t, err)
	assert.False(t, saved)

	close(fake.release)
	require.NoError(t, <-done)
	assert.ElementsMatch(t, []string{"p1", "p2"}, fake.removed)

	// Both products are gone locally: toggling either saves it again.
	saved, err = svc.Toggle(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestWishlistService_ToggleRollsBackOnFailure(t *testing.T) {
	fake := &fakeWishlistGateway{err: errors.New("backend down")}
	svc := NewWishlistService(fake, testLogger())
	ctx := context.Background()

	_, err := svc.View(ctx, "u1")
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, "u1", "p1")
	require.Error(t, err)

	// The optimistic add was rolled back; a fresh toggle adds again rather
	// than removing.
	fake.err = nil
	saved, err := svc.Toggle(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.True(t, saved)
}
