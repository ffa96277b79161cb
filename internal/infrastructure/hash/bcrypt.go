// Package hash wraps bcrypt behind the PasswordHasher port.
package hash

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes passwords with bcrypt at the configured cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether password matches hash. bcrypt's comparison is
// constant-time with respect to the hash contents.
func (h *BcryptHasher) Check(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
