package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	inStock bool
	err     error
}

func (s stubChecker) InStock(ctx context.Context, productID string) (bool, error) {
	return s.inStock, s.err
}

func TestCompleteOrder(t *testing.T) {
	f := NewFacade(stubChecker{inStock: true})

	sum, err := f.CompleteOrder(context.Background(), "p-1", "04001-000", 100)
	require.NoError(t, err)

	assert.Equal(t, 100.0, sum.Subtotal)
	assert.Equal(t, 15.99, sum.Shipping)
	assert.InDelta(t, 10.0, sum.Tax, 1e-9)
	assert.InDelta(t, 125.99, sum.Total, 1e-9)
}

func TestCompleteOrder_OutOfStock(t *testing.T) {
	f := NewFacade(stubChecker{inStock: false})

	_, err := f.CompleteOrder(context.Background(), "p-1", "04001-000", 100)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestCompleteOrder_CheckerError(t *testing.T) {
	boom := errors.New("db down")
	f := NewFacade(stubChecker{err: boom})

	_, err := f.CompleteOrder(context.Background(), "p-1", "04001-000", 100)
	assert.ErrorIs(t, err, boom)
}

func TestCompleteOrder_NilCheckerIsPermissive(t *testing.T) {
	f := NewFacade(nil)

	sum, err := f.CompleteOrder(context.Background(), "p-1", "04001-000", 50)
	require.NoError(t, err)
	assert.Greater(t, sum.Total, 50.0)
}
