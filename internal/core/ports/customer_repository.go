package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// ListCustomersFilter extends the user filter with profile fields.
type ListCustomersFilter struct {
	Users       ListUsersFilter
	FullName    string // partial, case-insensitive
	PhoneNumber string
	Status      *bool
}

// CustomerRepository persists customer profiles alongside their users.
type CustomerRepository interface {
	// CreateWithUser inserts the user and its profile in one transaction.
	CreateWithUser(ctx context.Context, user *domain.User, customer *domain.Customer) error
	// FindByUserID returns the user with its customer profile preloaded.
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context, filter ListCustomersFilter) ([]*domain.User, int64, error)
	// UpdateWithUser updates user and profile atomically.
	UpdateWithUser(ctx context.Context, user *domain.User, customer *domain.Customer) error
	// SoftDelete marks the user deleted and deactivates the profile.
	SoftDelete(ctx context.Context, userID string) error
}
