package domain

import "errors"

var (
	// ErrUnauthorized covers every authentication failure: unknown email,
	// wrong password, missing/expired/revoked token. Collapsing them keeps
	// the login endpoint from acting as a user-existence oracle.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrForbidden means the caller is authenticated but lacks privilege.
	ErrForbidden = errors.New("forbidden access")

	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrEmailTaken       = errors.New("email already in use")
	ErrInvalidInput     = errors.New("invalid input")
)
