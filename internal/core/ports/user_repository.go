package ports

import (
	"context"
	"time"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing users. Zero values
// mean "no filter"; Page is 1-based and Limit is capped by the service.
type ListUsersFilter struct {
	Name           string // partial, case-insensitive
	Email          string // partial, case-insensitive
	Role           domain.Role
	CreatedAtStart time.Time
	CreatedAtEnd   time.Time
	UpdatedAtStart time.Time
	UpdatedAtEnd   time.Time
	Page           int
	Limit          int
}

// UserRepository defines persistence for accounts. Every read excludes
// soft-deleted rows; lookup by email is immediately consistent with create.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns a page of users matching filter and the total count.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Update(ctx context.Context, user *domain.User) error
	SoftDelete(ctx context.Context, id string) error
}
