package repo

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"github.com/medicore/portal/internal/state"
)

// Bridge watches the user and cart slices of the snapshot and externalizes
// them after every burst that touches one of them.
type Bridge struct {
	Repo *GormRepo
	Log  *slog.Logger
}

// OnChange is registered as a store subscriber.
func (b *Bridge) OnChange(old, next state.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch {
	case next.User == nil && old.User != nil:
		if err := b.Repo.DeleteUser(ctx); err != nil {
			b.warn("delete_user", err)
		}
	case next.User != nil && (old.User == nil || *old.User != *next.User):
		if err := b.Repo.SaveUser(ctx, *next.User); err != nil {
			b.warn("save_user", err)
		}
	}

	if !maps.Equal(old.Cart, next.Cart) {
		if err := b.Repo.SaveCart(ctx, next.Cart); err != nil {
			b.warn("save_cart", err)
		}
	}
}

func (b *Bridge) warn(op string, err error) {
	if b.Log == nil {
		return
	}
	b.Log.Warn("persistence_error", "op", op, "error", err)
}
