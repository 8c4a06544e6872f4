package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipesousa7/ecommerce-order-system/internal/apperr"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
)

func TestProductCreate(t *testing.T) {
	svc := NewProductService(storage.NewMemProductStore())

	p, err := svc.Create(context.Background(), CreateProduct{
		Name:        "Phone",
		Description: "A phone",
		Price:       decimal.RequireFromString("1999.99"),
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.True(t, p.Available)

	_, err = svc.Create(context.Background(), CreateProduct{Name: "Phone", Price: decimal.RequireFromString("1.00")})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	_, err = svc.Create(context.Background(), CreateProduct{Name: "", Price: decimal.RequireFromString("1.00")})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(context.Background(), CreateProduct{Name: "Free", Price: decimal.Zero})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestProductUpdatePartial(t *testing.T) {
	svc := NewProductService(storage.NewMemProductStore())

	p, err := svc.Create(context.Background(), CreateProduct{
		Name: "Phone", Description: "A phone", Price: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("150.00")
	unavailable := false
	updated, err := svc.Update(context.Background(), p.ID, UpdateProduct{
		Price:     &newPrice,
		Available: &unavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, "Phone", updated.Name)
	assert.Equal(t, "A phone", updated.Description)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.False(t, updated.Available)

	_, err = svc.Update(context.Background(), 9999, UpdateProduct{})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestProductUpdateRejectsDuplicateName(t *testing.T) {
	svc := NewProductService(storage.NewMemProductStore())

	_, err := svc.Create(context.Background(), CreateProduct{Name: "Phone", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)
	p2, err := svc.Create(context.Background(), CreateProduct{Name: "TV", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)

	name := "Phone"
	_, err = svc.Update(context.Background(), p2.ID, UpdateProduct{Name: &name})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestProductListAvailable(t *testing.T) {
	svc := NewProductService(storage.NewMemProductStore())

	_, err := svc.Create(context.Background(), CreateProduct{Name: "Phone", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)
	p2, err := svc.Create(context.Background(), CreateProduct{Name: "TV", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)

	unavailable := false
	_, err = svc.Update(context.Background(), p2.ID, UpdateProduct{Available: &unavailable})
	require.NoError(t, err)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Phone", available[0].Name)
}

func TestProductDelete(t *testing.T) {
	svc := NewProductService(storage.NewMemProductStore())

	p, err := svc.Create(context.Background(), CreateProduct{Name: "Phone", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	_, err = svc.GetByID(context.Background(), p.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = svc.Delete(context.Background(), p.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
