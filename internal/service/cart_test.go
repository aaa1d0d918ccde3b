package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/portal/internal/state"
)

func TestAddToCart(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 2))

	snap := p.Store.View()
	assert.Equal(t, 2, snap.Cart["prod_4"])
	assert.Equal(t, "Added to Cart", snap.Notifications[0].Title)
	assert.Equal(t, "Digital Thermometer x2", snap.Notifications[0].Message)
}

func TestAddToCart_InsufficientStockRejectsWithoutDispatch(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	before := p.Store.View()

	err := p.AddToCart(context.Background(), "prod_3", 9) // stock is 8
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, p.Store.View())
}

func TestAddToCart_Validation(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)

	require.ErrorIs(t, p.AddToCart(context.Background(), "prod_1", 0), ErrValidation)
	require.ErrorIs(t, p.AddToCart(context.Background(), "prod_1", -1), ErrValidation)
	require.ErrorIs(t, p.AddToCart(context.Background(), "prod_missing", 1), ErrNotFound)
}

func TestChangeQuantity(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 2))

	require.NoError(t, p.ChangeQuantity(context.Background(), "prod_4", 1))
	assert.Equal(t, 3, p.Store.View().Cart["prod_4"])

	require.NoError(t, p.ChangeQuantity(context.Background(), "prod_4", -2))
	assert.Equal(t, 1, p.Store.View().Cart["prod_4"])
}

func TestChangeQuantity_DropToZeroRemovesLine(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 2))

	require.NoError(t, p.ChangeQuantity(context.Background(), "prod_4", -5))

	_, present := p.Store.View().Cart["prod_4"]
	assert.False(t, present, "a line at or below zero must be absent")
}

func TestChangeQuantity_NoLine(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	err := p.ChangeQuantity(context.Background(), "prod_4", 1)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromCartAndClear(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 1))
	require.NoError(t, p.AddToCart(context.Background(), "prod_2", 1))

	p.RemoveFromCart(context.Background(), "prod_4")
	snap := p.Store.View()
	_, present := snap.Cart["prod_4"]
	assert.False(t, present)
	assert.Equal(t, 1, snap.Cart["prod_2"])

	p.ClearCart(context.Background())
	assert.Empty(t, p.Store.View().Cart)
}

func TestCartTotalSelectorAgainstService(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 2)) // 499 each
	require.NoError(t, p.AddToCart(context.Background(), "prod_2", 1)) // 899

	assert.Equal(t, int64(2*499+899), state.CartTotal(p.Store.View()))
}
