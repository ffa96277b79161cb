package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

// ProductService implements catalog CRUD over the repository port.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.UnitPrice < 0 || input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		UnitPrice:   input.UnitPrice,
		Stock:       input.Stock,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	clampPage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *input.Stock
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product soft-deleted")
	return nil
}
