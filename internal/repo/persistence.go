package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medicore/portal/internal/domain"
)

const (
	KeyUser = "healthcare_user"
	KeyCart = "healthcare_cart"
)

// StateSlice is one externalized slice of the snapshot, stored as JSON
// under a fixed key.
type StateSlice struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null"   json:"value"`
}

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) Migrate() error {
	return r.DB.AutoMigrate(&StateSlice{})
}

func (r *GormRepo) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("repo: marshal %s: %w", key, err)
	}
	return r.DB.WithContext(ctx).Save(&StateSlice{Key: key, Value: string(data)}).Error
}

// get unmarshals the slice under key into out; found is false when the key
// is absent.
func (r *GormRepo) get(ctx context.Context, key string, out any) (bool, error) {
	var slice StateSlice
	err := r.DB.WithContext(ctx).First(&slice, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(slice.Value), out); err != nil {
		return false, fmt.Errorf("repo: unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *GormRepo) delete(ctx context.Context, key string) error {
	return r.DB.WithContext(ctx).Delete(&StateSlice{}, "key = ?", key).Error
}

func (r *GormRepo) SaveUser(ctx context.Context, u domain.User) error {
	return r.put(ctx, KeyUser, u)
}

func (r *GormRepo) LoadUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	found, err := r.get(ctx, KeyUser, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepo) DeleteUser(ctx context.Context) error {
	return r.delete(ctx, KeyUser)
}

// SaveCart stores the cart map. An empty cart erases the key instead of
// storing an empty structure.
func (r *GormRepo) SaveCart(ctx context.Context, cart map[string]int) error {
	if len(cart) == 0 {
		return r.delete(ctx, KeyCart)
	}
	return r.put(ctx, KeyCart, cart)
}

// LoadCart returns nil when no cart is stored; absence is equivalent to an
// empty cart.
func (r *GormRepo) LoadCart(ctx context.Context) (map[string]int, error) {
	var cart map[string]int
	found, err := r.get(ctx, KeyCart, &cart)
	if err != nil || !found {
		return nil, err
	}
	return cart, nil
}
