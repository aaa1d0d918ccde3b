package service

import (
	"context"
	"fmt"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/events"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/pkg/logging"
)

// AddToCart increments a cart line after validating the quantity against
// current stock. Insufficient stock rejects the operation with no dispatch.
func (p *Portal) AddToCart(ctx context.Context, productID string, quantity int) error {
	l := logging.FromContext(ctx).With("svc", "cart.add")

	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	var name string
	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		product, ok := state.ProductByID(snap, productID)
		if !ok {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		if product.Stock < quantity {
			return nil, fmt.Errorf("%w: insufficient stock", ErrValidation)
		}
		name = product.Name

		return []state.Action{
			state.AddToCart{ProductID: productID, Quantity: quantity},
			p.notification("Added to Cart",
				fmt.Sprintf("%s x%d", product.Name, quantity),
				domain.NotificationCart),
		}, nil
	})
	if err != nil {
		l.Warn("add_error", "product_id", productID, "reason", err.Error())
		return err
	}

	l.Info("added", "product_id", productID, "quantity", quantity)
	p.publish(ctx, events.TopicCart, productID, map[string]any{
		"event":    "added",
		"product":  name,
		"quantity": quantity,
	})
	return nil
}

// ChangeQuantity applies a signed delta to an existing cart line. A delta
// that would not keep the line above zero removes it outright; the reducer
// only ever does the arithmetic.
func (p *Portal) ChangeQuantity(ctx context.Context, productID string, delta int) error {
	return p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		current, ok := snap.Cart[productID]
		if !ok {
			return nil, fmt.Errorf("%w: no cart line for %s", ErrNotFound, productID)
		}
		if current+delta <= 0 {
			return []state.Action{state.RemoveFromCart{ProductID: productID}}, nil
		}
		if delta > 0 {
			product, ok := state.ProductByID(snap, productID)
			if !ok {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
			}
			if product.Stock < delta {
				return nil, fmt.Errorf("%w: insufficient stock", ErrValidation)
			}
		}
		return []state.Action{state.AddToCart{ProductID: productID, Quantity: delta}}, nil
	})
}

func (p *Portal) RemoveFromCart(ctx context.Context, productID string) {
	p.Store.Dispatch(state.RemoveFromCart{ProductID: productID})
	p.publish(ctx, events.TopicCart, productID, map[string]any{"event": "removed"})
}

func (p *Portal) ClearCart(ctx context.Context) {
	p.Store.Dispatch(state.ClearCart{})
	p.publish(ctx, events.TopicCart, "cart", map[string]any{"event": "cleared"})
}
