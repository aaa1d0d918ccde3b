package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/events"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/pkg/logging"
)

const (
	freeShippingAbove = 1000 // strictly greater than
	shippingFee       = 99
	deliveryDays      = 5
)

// Checkout turns the cart into an order: per-line totals, shipping by the
// subtotal threshold, one stock decrement per line, the order itself, the
// cart wipe and the confirmation notification — one burst, effectively
// atomic under the store's exclusive section.
func (p *Portal) Checkout(ctx context.Context, address, city, pincode, paymentMethod string) (*domain.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout")

	if err := p.simulate(ctx, 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		paymentMethod = "UPI"
	}

	var order domain.Order
	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if snap.User == nil {
			return nil, fmt.Errorf("%w: not signed in", ErrValidation)
		}
		if len(snap.Cart) == 0 {
			return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
		}

		productIDs := make([]string, 0, len(snap.Cart))
		for id := range snap.Cart {
			productIDs = append(productIDs, id)
		}
		sort.Strings(productIDs)

		var items []domain.OrderItem
		var subtotal int64
		for _, id := range productIDs {
			quantity := snap.Cart[id]
			product, ok := state.ProductByID(snap, id)
			if !ok {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
			}
			// Re-checked under the lock so the decrements below can
			// never push stock negative.
			if product.Stock < quantity {
				return nil, fmt.Errorf("%w: insufficient stock for %s", ErrValidation, product.Name)
			}
			total := product.Price * int64(quantity)
			items = append(items, domain.OrderItem{
				ProductID: id,
				Name:      product.Name,
				Quantity:  quantity,
				Price:     product.Price,
				Total:     total,
			})
			subtotal += total
		}

		var shipping int64 = shippingFee
		if subtotal > freeShippingAbove {
			shipping = 0
		}

		now := p.IDs.Now()
		order = domain.Order{
			ID:                p.IDs.EntityID("order"),
			Items:             items,
			Subtotal:          subtotal,
			Shipping:          shipping,
			TotalAmount:       subtotal + shipping,
			Status:            domain.OrderPlaced,
			Address:           fmt.Sprintf("%s, %s - %s", address, city, pincode),
			PaymentMethod:     paymentMethod,
			PaymentStatus:     "completed",
			TrackingID:        p.IDs.TrackingID(),
			CreatedAt:         now,
			EstimatedDelivery: now.AddDate(0, 0, deliveryDays),
			PatientID:         snap.User.ID,
			PatientName:       snap.User.Name,
		}

		actions := make([]state.Action, 0, len(items)+3)
		for _, item := range items {
			actions = append(actions, state.UpdateStock{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		actions = append(actions,
			state.PlaceOrder{Order: order},
			state.ClearCart{},
			p.notification("Order Placed",
				fmt.Sprintf("Order #%s confirmed", orderSuffix(order.ID)),
				domain.NotificationOrder),
		)
		return actions, nil
	})
	if err != nil {
		l.Warn("checkout_error", "reason", err.Error())
		return nil, err
	}

	l.Info("placed", "order_id", order.ID, "total", order.TotalAmount)
	p.publish(ctx, events.TopicOrder, order.ID, map[string]any{
		"event":       "placed",
		"total":       order.TotalAmount,
		"tracking_id": order.TrackingID,
	})
	return &order, nil
}

// UpdateOrderStatus is the admin-driven lifecycle advance. Only shipped and
// delivered stamp their matching timestamp.
func (p *Portal) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	l := logging.FromContext(ctx).With("svc", "order.update_status")

	switch status {
	case domain.OrderConfirmed, domain.OrderPacked, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		order, ok := state.OrderByID(snap, orderID)
		if !ok {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		if order.Status.Terminal() {
			return nil, fmt.Errorf("%w: order already %s", ErrConflict, order.Status)
		}

		now := p.IDs.Now()
		patch := state.OrderPatch{Status: &status, UpdatedAt: &now}
		if status == domain.OrderShipped {
			patch.ShippedAt = &now
		}
		if status == domain.OrderDelivered {
			patch.DeliveredAt = &now
		}
		return []state.Action{state.UpdateOrder{ID: orderID, Patch: patch}}, nil
	})
	if err != nil {
		l.Warn("update_error", "order_id", orderID, "reason", err.Error())
		return err
	}

	l.Info("status_updated", "order_id", orderID, "status", status)
	p.publish(ctx, events.TopicOrder, orderID, map[string]any{
		"event":  "status_updated",
		"status": status,
	})
	return nil
}

func orderSuffix(id string) string {
	if _, suffix, ok := strings.Cut(id, "_"); ok {
		return suffix
	}
	return id
}
