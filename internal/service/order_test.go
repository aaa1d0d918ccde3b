package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/state"
)

var trackingIDPattern = regexp.MustCompile(`^TRK[A-Z0-9]{9}$`)

func seedCheckoutCatalog(p *Portal) {
	p.Store.Dispatch(
		state.AddProduct{Product: domain.Product{ID: "prod_cream", Name: "Antiseptic Cream", Price: 500, Category: "medicine", Stock: 20}},
		state.AddProduct{Product: domain.Product{ID: "prod_gauze", Name: "Gauze Rolls", Price: 200, Category: "emergency", Stock: 20}},
	)
}

func TestCheckout_ShippingFreeAboveThreshold(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)
	seedCheckoutCatalog(p)

	require.NoError(t, p.AddToCart(context.Background(), "prod_cream", 3))

	order, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1500), order.Subtotal)
	assert.Equal(t, int64(0), order.Shipping)
	assert.Equal(t, int64(1500), order.TotalAmount)
}

func TestCheckout_TwoLinesKeepFreeShipping(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)
	seedCheckoutCatalog(p)

	require.NoError(t, p.AddToCart(context.Background(), "prod_cream", 3))
	require.NoError(t, p.AddToCart(context.Background(), "prod_gauze", 1))

	order, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "card")
	require.NoError(t, err)

	assert.Equal(t, int64(1700), order.Subtotal)
	assert.Equal(t, int64(0), order.Shipping)
	assert.Equal(t, int64(1700), order.TotalAmount)
	assert.Equal(t, "card", order.PaymentMethod)
}

func TestCheckout_SubtotalExactlyAtThresholdPaysShipping(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)
	seedCheckoutCatalog(p)

	require.NoError(t, p.AddToCart(context.Background(), "prod_cream", 2)) // 1000 exactly

	order, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.NoError(t, err)

	assert.Equal(t, int64(1000), order.Subtotal)
	assert.Equal(t, int64(99), order.Shipping)
	assert.Equal(t, int64(1099), order.TotalAmount)
}

func TestCheckout_DecrementsStockAndClearsCart(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)

	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 3)) // stock 89

	order, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.NoError(t, err)

	snap := p.Store.View()
	product, _ := state.ProductByID(snap, "prod_4")
	assert.Equal(t, 86, product.Stock)
	assert.Empty(t, snap.Cart)

	require.Len(t, snap.Orders, 1)
	assert.Equal(t, order.ID, snap.Orders[0].ID)
	assert.Equal(t, domain.OrderPlaced, snap.Orders[0].Status)
	assert.Equal(t, "completed", snap.Orders[0].PaymentStatus)
	assert.Equal(t, "12 Lake Rd, Pune - 411001", snap.Orders[0].Address)

	assert.Equal(t, "Order Placed", snap.Notifications[0].Title)
	assert.Contains(t, snap.Notifications[0].Message, "confirmed")
}

func TestCheckout_TrackingIDAndDeliveryEstimate(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 1))

	order, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.NoError(t, err)

	assert.Regexp(t, trackingIDPattern, order.TrackingID)
	assert.Equal(t, order.CreatedAt.AddDate(0, 0, 5), order.EstimatedDelivery)
}

func TestCheckout_EmptyCart(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)

	_, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCheckout_RequiresLogin(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	p.Store.Dispatch(state.AddToCart{ProductID: "prod_4", Quantity: 1})

	_, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestCheckout_StockRecheckedAtCommit(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)

	require.NoError(t, p.AddToCart(context.Background(), "prod_3", 5)) // stock 8
	// Stock drains between add and checkout.
	p.Store.Dispatch(state.UpdateStock{ProductID: "prod_3", Quantity: 6})
	before := p.Store.View()

	_, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, p.Store.View(), "a rejected checkout leaves everything untouched")
}

func TestUpdateOrderStatus_Lifecycle(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	loginPatient(t, p)
	require.NoError(t, p.AddToCart(context.Background(), "prod_4", 1))
	order, err := p.Checkout(context.Background(), "12 Lake Rd", "Pune", "411001", "")
	require.NoError(t, err)

	require.NoError(t, p.UpdateOrderStatus(context.Background(), order.ID, domain.OrderShipped))
	stored, _ := state.OrderByID(p.Store.View(), order.ID)
	assert.Equal(t, domain.OrderShipped, stored.Status)
	assert.False(t, stored.ShippedAt.IsZero())
	assert.True(t, stored.DeliveredAt.IsZero())

	require.NoError(t, p.UpdateOrderStatus(context.Background(), order.ID, domain.OrderDelivered))
	stored, _ = state.OrderByID(p.Store.View(), order.ID)
	assert.Equal(t, domain.OrderDelivered, stored.Status)
	assert.False(t, stored.DeliveredAt.IsZero())

	// Delivered is terminal.
	err = p.UpdateOrderStatus(context.Background(), order.ID, domain.OrderShipped)
	require.ErrorIs(t, err, ErrConflict)
}

func TestUpdateOrderStatus_Validation(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)

	err := p.UpdateOrderStatus(context.Background(), "order_x", domain.OrderStatus("teleported"))
	require.ErrorIs(t, err, ErrValidation)

	err = p.UpdateOrderStatus(context.Background(), "order_missing", domain.OrderShipped)
	require.ErrorIs(t, err, ErrNotFound)
}
