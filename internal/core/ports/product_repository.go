package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// ListProductsFilter carries catalog query parameters.
type ListProductsFilter struct {
	Name     string // partial, case-insensitive
	Active   *bool
	PriceMin *float64
	PriceMax *float64
	Page     int
	Limit    int
}

// ProductRepository persists catalog entries; reads exclude soft-deleted rows.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	SoftDelete(ctx context.Context, id string) error
}
