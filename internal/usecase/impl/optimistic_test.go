package impl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOptimistic_KeepsStateOnSuccess(t *testing.T) {
	quantity := 2

	err := optimistic(
		func() func() {
			prev := quantity
			quantity++

			return func() { quantity = prev }
		},
		func() error {
			// The local change is visible before the call resolves.
			assert.Equal(t, 3, quantity)

			return nil
		},
	)

	assert.NoError(t, err)
	assert.Equal(t, 3, quantity)
}

func TestOptimistic_RollsBackOnFailure(t *testing.T) {
	quantity := 2
	callErr := errors.New("backend refused")

	err := optimistic(
		func() func() {
			prev := quantity
			quantity++

			return func() { quantity = prev }
		},
		func() error { return callErr },
	)

	assert.ErrorIs(t, err, callErr)
	assert.Equal(t, 2, quantity)
}
