package domain

import "time"

// Product is a catalog entry. Soft-deleted products are invisible to every
// read path but keep their row for order history integrity.
type Product struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	UnitPrice   float64    `json:"unit_price" gorm:"not null"`
	Stock       int        `json:"stock" gorm:"not null;default:0"`
	Active      bool       `json:"active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-" gorm:"index"`
}
