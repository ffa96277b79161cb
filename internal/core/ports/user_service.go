package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// CreateUserInput carries validated data for account creation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateUserInput carries a partial account update. Nil fields are left
// untouched; a non-nil Password is re-hashed before persisting.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
