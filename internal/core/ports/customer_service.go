package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// CreateCustomerInput combines the account fields with the profile fields.
// Registration always produces a CUSTOMER role account.
type CreateCustomerInput struct {
	Name        string
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Address     string
}

// UpdateCustomerInput is a partial update over both user and profile.
type UpdateCustomerInput struct {
	Name        *string
	Email       *string
	Password    *string
	FullName    *string
	PhoneNumber *string
	Address     *string
	Status      *bool
}

type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.User, error)
	List(ctx context.Context, filter ListCustomersFilter) ([]*domain.User, int64, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input UpdateCustomerInput) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
