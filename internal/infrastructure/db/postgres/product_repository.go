package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

// ProductRepository implements ports.ProductRepository.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{}).Where("deleted_at IS NULL")

	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+lower(filter.Name)+"%")
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.PriceMin != nil {
		q = q.Where("unit_price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("unit_price <= ?", *filter.PriceMax)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	var products []*domain.Product
	err := q.Order("created_at DESC").
		Offset(offset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ? AND deleted_at IS NULL", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"unit_price":  product.UnitPrice,
			"stock":       product.Stock,
			"active":      product.Active,
			"updated_at":  product.UpdatedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("soft delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
