package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

func newProduct(name string, price float64, active bool) *domain.Product {
	return &domain.Product{
		ID:        uuid.NewString(),
		Name:      name,
		UnitPrice: price,
		Stock:     5,
		Active:    active,
	}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newProduct("Keyboard", 49.90, true)
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, "Keyboard", got.Name)
	require.Equal(t, 49.90, got.UnitPrice)

	_, err = repo.FindByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepository_Update(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newProduct("Keyboard", 49.90, true)
	require.NoError(t, repo.Create(ctx, product))

	product.Name = "Mechanical Keyboard"
	product.Stock = 12
	product.Active = false
	require.NoError(t, repo.Update(ctx, product))

	got, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, "Mechanical Keyboard", got.Name)
	require.Equal(t, 12, got.Stock)
	require.False(t, got.Active)

	ghost := newProduct("Ghost", 1, true)
	require.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrProductNotFound)
}

func TestProductRepository_SoftDelete(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product := newProduct("Keyboard", 49.90, true)
	require.NoError(t, repo.Create(ctx, product))
	require.NoError(t, repo.SoftDelete(ctx, product.ID))

	_, err := repo.FindByID(ctx, product.ID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	_, total, err := repo.List(ctx, ports.ListProductsFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)

	require.ErrorIs(t, repo.SoftDelete(ctx, product.ID), domain.ErrProductNotFound)
}

func TestProductRepository_ListFilters(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	cheap := newProduct("Mouse Pad", 9.99, true)
	mid := newProduct("Wireless Mouse", 29.99, true)
	retired := newProduct("Trackball Mouse", 59.99, false)
	require.NoError(t, repo.Create(ctx, cheap))
	require.NoError(t, repo.Create(ctx, mid))
	require.NoError(t, repo.Create(ctx, retired))

	products, total, err := repo.List(ctx, ports.ListProductsFilter{Name: "mouse", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, products, 3)

	active := true
	products, total, err = repo.List(ctx, ports.ListProductsFilter{Active: &active, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	min, max := 20.0, 40.0
	products, total, err = repo.List(ctx, ports.ListProductsFilter{PriceMin: &min, PriceMax: &max, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, mid.ID, products[0].ID)
}
