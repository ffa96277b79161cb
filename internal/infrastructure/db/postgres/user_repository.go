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

// UserRepository implements ports.UserRepository. Soft-deleted rows are
// filtered explicitly on every read so the unique-email invariant only
// applies among live accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ? AND deleted_at IS NULL", user.Email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return domain.ErrEmailTaken
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND deleted_at IS NULL", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("deleted_at IS NULL")
	q = applyUserFilter(q, filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	var users []*domain.User
	err := q.Order("created_at DESC").
		Offset(offset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The email may have changed; it must stay unique among live rows.
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
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return fmt.Errorf("soft delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// applyUserFilter translates the filter into WHERE clauses. LOWER/LIKE is
// used instead of ILIKE so the same queries run on the sqlite test driver.
func applyUserFilter(q *gorm.DB, f ports.ListUsersFilter) *gorm.DB {
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+lower(f.Name)+"%")
	}
	if f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+lower(f.Email)+"%")
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if !f.CreatedAtStart.IsZero() {
		q = q.Where("created_at >= ?", f.CreatedAtStart)
	}
	if !f.CreatedAtEnd.IsZero() {
		q = q.Where("created_at <= ?", f.CreatedAtEnd)
	}
	if !f.UpdatedAtStart.IsZero() {
		q = q.Where("updated_at >= ?", f.UpdatedAtStart)
	}
	if !f.UpdatedAtEnd.IsZero() {
		q = q.Where("updated_at <= ?", f.UpdatedAtEnd)
	}
	return q
}
