package service

import (
	"context"
	"fmt"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/search"
	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/pkg/logging"
)

// AddProduct adds a catalog entry and indexes it for search.
func (p *Portal) AddProduct(ctx context.Context, name string, price int64, category string, stock int) (*domain.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	product := domain.Product{
		ID:        p.IDs.EntityID("prod"),
		Name:      name,
		Price:     price,
		Category:  category,
		Stock:     stock,
		CreatedAt: p.IDs.Now(),
	}
	p.Store.Dispatch(state.AddProduct{Product: product})
	p.index(ctx, product)
	return &product, nil
}

func (p *Portal) UpdateProduct(ctx context.Context, id string, patch state.ProductPatch) error {
	if patch.Price != nil && *patch.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	err := p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if _, ok := state.ProductByID(snap, id); !ok {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return []state.Action{state.UpdateProduct{ID: id, Patch: patch}}, nil
	})
	if err != nil {
		return err
	}

	if updated, ok := state.ProductByID(p.Store.View(), id); ok {
		p.index(ctx, updated)
	}
	return nil
}

// AddDoctor adds a doctor to the roster, available by default.
func (p *Portal) AddDoctor(ctx context.Context, name, specialty string, fee int64, rating float64) (*domain.Doctor, error) {
	if name == "" || specialty == "" {
		return nil, fmt.Errorf("%w: name and specialty required", ErrValidation)
	}
	if fee < 0 {
		return nil, fmt.Errorf("%w: fee must be >= 0", ErrValidation)
	}

	doctor := domain.Doctor{
		ID:        p.IDs.EntityID("doc"),
		Name:      name,
		Specialty: specialty,
		Fee:       fee,
		Rating:    rating,
		Available: true,
		JoinedAt:  p.IDs.Now(),
	}
	p.Store.Dispatch(state.AddDoctor{Doctor: doctor})
	return &doctor, nil
}

func (p *Portal) UpdateDoctor(ctx context.Context, id string, patch state.DoctorPatch) error {
	if patch.Fee != nil && *patch.Fee < 0 {
		return fmt.Errorf("%w: fee must be >= 0", ErrValidation)
	}
	return p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if _, ok := state.DoctorByID(snap, id); !ok {
			return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, id)
		}
		return []state.Action{state.UpdateDoctor{ID: id, Patch: patch}}, nil
	})
}

// SubmitReview appends a review for a doctor or a product.
func (p *Portal) SubmitReview(ctx context.Context, targetID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be 1-5", ErrValidation)
	}
	return p.Store.Commit(func(snap state.Snapshot) ([]state.Action, error) {
		if snap.User == nil {
			return nil, fmt.Errorf("%w: not signed in", ErrValidation)
		}
		_, isDoctor := state.DoctorByID(snap, targetID)
		_, isProduct := state.ProductByID(snap, targetID)
		if !isDoctor && !isProduct {
			return nil, fmt.Errorf("%w: review target %s", ErrNotFound, targetID)
		}
		return []state.Action{state.AddReview{Review: domain.Review{
			ID:        p.IDs.EntityID("rev"),
			TargetID:  targetID,
			PatientID: snap.User.ID,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: p.IDs.Now(),
		}}}, nil
	})
}

func (p *Portal) MarkNotificationRead(ctx context.Context, notificationID string) {
	p.Store.Dispatch(state.ReadNotification{ID: notificationID})
}

// SearchProducts uses elasticsearch when wired, otherwise scans the
// snapshot catalog.
func (p *Portal) SearchProducts(ctx context.Context, query string, from, size int) (int64, []domain.Product, error) {
	if p.ES == nil {
		matched := search.Filter(p.Store.View().Products, query)
		return int64(len(matched)), matched, nil
	}
	return search.Products(ctx, p.ES, query, from, size)
}

func (p *Portal) index(ctx context.Context, product domain.Product) {
	if err := search.IndexProduct(ctx, p.ES, product); err != nil {
		logging.FromContext(ctx).Warn("index_error", "product_id", product.ID, "error", err)
	}
}
