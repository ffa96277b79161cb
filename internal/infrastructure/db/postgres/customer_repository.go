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

// CustomerRepository implements ports.CustomerRepository. User and profile
// writes always happen inside one transaction so registration cannot leave a
// user without its profile.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) CreateWithUser(ctx context.Context, user *domain.User, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).
			Where("email = ? AND deleted_at IS NULL", user.Email).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			return domain.ErrEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		customer.UserID = user.ID
		if err := tx.Create(customer).Error; err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		return nil
	})
}

func (r *CustomerRepository) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ? AND deleted_at IS NULL", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if user.Customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return &user, nil
}

func (r *CustomerRepository) List(ctx context.Context, filter ports.ListCustomersFilter) ([]*domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).
		Joins("JOIN customers ON customers.user_id = users.id").
		Where("users.deleted_at IS NULL")

	q = applyUserFilter(q, filter.Users)
	if filter.FullName != "" {
		q = q.Where("LOWER(customers.full_name) LIKE ?", "%"+lower(filter.FullName)+"%")
	}
	if filter.PhoneNumber != "" {
		q = q.Where("customers.phone_number = ?", filter.PhoneNumber)
	}
	if filter.Status != nil {
		q = q.Where("customers.status = ?", *filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	var users []*domain.User
	err := q.Select("users.*").
		Preload("Customer").
		Order("users.created_at DESC").
		Offset(offset(filter.Users.Page, filter.Users.Limit)).
		Limit(filter.Users.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return users, total, nil
}

func (r *CustomerRepository) UpdateWithUser(ctx context.Context, user *domain.User, customer *domain.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.User{}).
			Where("email = ? AND deleted_at IS NULL AND id <> ?", user.Email, user.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			return domain.ErrEmailTaken
		}

		res := tx.Model(&domain.User{}).
			Where("id = ? AND deleted_at IS NULL", user.ID).
			Updates(map[string]any{
				"name":          user.Name,
				"email":         user.Email,
				"password_hash": user.PasswordHash,
				"updated_at":    user.UpdatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("update user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCustomerNotFound
		}

		if err := tx.Model(&domain.Customer{}).
			Where("user_id = ?", user.ID).
			Updates(map[string]any{
				"full_name":    customer.FullName,
				"phone_number": customer.PhoneNumber,
				"address":      customer.Address,
				"status":       customer.Status,
			}).Error; err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		return nil
	})
}

func (r *CustomerRepository) SoftDelete(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.User{}).
			Where("id = ? AND deleted_at IS NULL", userID).
			Updates(map[string]any{"deleted_at": now, "updated_at": now})
		if res.Error != nil {
			return fmt.Errorf("soft delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCustomerNotFound
		}

		if err := tx.Model(&domain.Customer{}).
			Where("user_id = ?", userID).
			Update("status", false).Error; err != nil {
			return fmt.Errorf("deactivate customer: %w", err)
		}
		return nil
	})
}
