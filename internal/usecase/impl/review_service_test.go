package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func TestReviewService_SubmitValidatesRating(t *testing.T) {
	fake := &fakeReviewGateway{}
	svc := NewReviewService(fake, testLogger())

	err := svc.Submit(context.Background(), "u1", usecase.SubmitReviewInput{ProductID: "p1", Rating: 6})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Empty(t, fake.created)
}

func TestReviewService_SubmitTrimsComment(t *testing.T) {
	fake := &fakeReviewGateway{}
	svc := NewReviewService(fake, testLogger())

	err := svc.Submit(context.Background(), "u1", usecase.SubmitReviewInput{
		ProductID: "p1",
		Rating:    4,
		Comment:   "  great fit  ",
	})
	require.NoError(t, err)

	require.Len(t, fake.created, 1)
	assert.Equal(t, "great fit", fake.created[0].Comment)
	assert.Equal(t, "u1", fake.created[0].UserID)
}
