package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

type CreateProductInput struct {
	Name        string
	Description string
	UnitPrice   float64
	Stock       int
	Active      *bool
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	UnitPrice   *float64
	Stock       *int
	Active      *bool
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
