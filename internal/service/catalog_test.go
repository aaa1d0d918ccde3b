package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/portal/internal/state"
)

func TestAddProduct(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	product, err := p.AddProduct(context.Background(), "Nebulizer", 2499, "therapy", 12)
	require.NoError(t, err)

	stored, ok := state.ProductByID(p.Store.View(), product.ID)
	require.True(t, ok)
	assert.Equal(t, "Nebulizer", stored.Name)
	assert.Equal(t, int64(2499), stored.Price)
	assert.Equal(t, 12, stored.Stock)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestAddProduct_Validation(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)

	_, err := p.AddProduct(context.Background(), "", 100, "therapy", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = p.AddProduct(context.Background(), "Nebulizer", -1, "therapy", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = p.AddProduct(context.Background(), "Nebulizer", 100, "therapy", -1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProduct(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)

	price := int64(549)
	require.NoError(t, p.UpdateProduct(context.Background(), "prod_4", state.ProductPatch{Price: &price}))

	stored, _ := state.ProductByID(p.Store.View(), "prod_4")
	assert.Equal(t, int64(549), stored.Price)
	assert.Equal(t, "Digital Thermometer", stored.Name, "unpatched fields stay put")

	require.ErrorIs(t, p.UpdateProduct(context.Background(), "prod_missing", state.ProductPatch{Price: &price}), ErrNotFound)

	negative := int64(-1)
	require.ErrorIs(t, p.UpdateProduct(context.Background(), "prod_4", state.ProductPatch{Price: &negative}), ErrValidation)
}

func TestAddAndUpdateDoctor(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)
	doctor, err := p.AddDoctor(context.Background(), "Dr. Iyer", "ENT", 650, 4.5)
	require.NoError(t, err)
	assert.True(t, doctor.Available, "new doctors start available")

	unavailable := false
	require.NoError(t, p.UpdateDoctor(context.Background(), doctor.ID, state.DoctorPatch{Available: &unavailable}))

	stored, _ := state.DoctorByID(p.Store.View(), doctor.ID)
	assert.False(t, stored.Available)

	_, err = p.AddDoctor(context.Background(), "", "ENT", 650, 4.5)
	require.ErrorIs(t, err, ErrValidation)
}

func TestSubmitReview(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)

	err := p.SubmitReview(context.Background(), "doc_1", 5, "very thorough")
	require.ErrorIs(t, err, ErrValidation, "reviews need a signed-in user")

	user := loginPatient(t, p)
	require.NoError(t, p.SubmitReview(context.Background(), "doc_1", 5, "very thorough"))
	require.NoError(t, p.SubmitReview(context.Background(), "prod_4", 4, "works fine"))

	reviews := p.Store.View().Reviews
	require.Len(t, reviews, 2)
	assert.Equal(t, user.ID, reviews[0].PatientID)

	require.ErrorIs(t, p.SubmitReview(context.Background(), "doc_1", 0, ""), ErrValidation)
	require.ErrorIs(t, p.SubmitReview(context.Background(), "doc_1", 6, ""), ErrValidation)
	require.ErrorIs(t, p.SubmitReview(context.Background(), "nothing_here", 3, ""), ErrNotFound)
}

func TestSearchProducts_SnapshotFallback(t *testing.T) {
	t.Parallel()

	p := newTestPortal(t)

	total, products, err := p.SearchProducts(context.Background(), "monitoring", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, products, 3)

	total, _, err = p.SearchProducts(context.Background(), "no such thing", 0, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
}
