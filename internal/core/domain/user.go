package domain

import "time"

// Role classifies an account for authorization decisions.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User models an account in the system. The password hash never leaves the
// authentication boundary and DeletedAt is never serialized.
type User struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"index;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         Role       `json:"role" gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-" gorm:"index"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:UserID"`
}

// Identity is the request-scoped projection of an authenticated account.
// Built from verified token claims, discarded at request end.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Claims are the fields embedded in an issued token. They are a read-only
// snapshot of the account at issuance time.
type Claims struct {
	Subject   string
	Email     string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// Identity converts verified claims into a request identity.
func (c Claims) Identity() Identity {
	return Identity{ID: c.Subject, Email: c.Email, Role: c.Role}
}
