package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

// CustomerService manages the account+profile pair behind self-registration.
type CustomerService struct {
	repo   ports.CustomerRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, hasher: hasher, logger: logger}
}

// Create registers a new customer: a CUSTOMER user plus its profile, written
// in one transaction by the repository.
func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.FullName == "" {
		return nil, domain.ErrInvalidInput
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	customer := &domain.Customer{
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Status:      true,
	}

	if err := s.repo.CreateWithUser(ctx, user, customer); err != nil {
		return nil, err
	}

	user.Customer = customer
	s.logger.Info().Str("user_id", user.ID).Msg("customer registered")
	return user, nil
}

func (s *CustomerService) List(ctx context.Context, filter ports.ListCustomersFilter) ([]*domain.User, int64, error) {
	clampPage(&filter.Users.Page, &filter.Users.Limit)
	return s.repo.List(ctx, filter)
}

func (s *CustomerService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *CustomerService) Update(ctx context.Context, userID string, input ports.UpdateCustomerInput) (*domain.User, error) {
	user, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now().UTC()

	customer := user.Customer
	if input.FullName != nil {
		customer.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}

	if err := s.repo.UpdateWithUser(ctx, user, customer); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes the underlying user, which hides the profile with it.
func (s *CustomerService) Delete(ctx context.Context, userID string) error {
	if _, err := s.repo.FindByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Msg("customer soft-deleted")
	return nil
}
