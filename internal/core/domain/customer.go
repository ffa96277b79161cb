package domain

// Customer is the commerce profile attached 1:1 to a CUSTOMER user.
// It shares the user's primary key; deleting the user soft-deletes the
// profile with it.
type Customer struct {
	UserID      string `json:"user_id" gorm:"type:uuid;primaryKey"`
	FullName    string `json:"full_name" gorm:"not null"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Status      bool   `json:"status" gorm:"default:true"`
}
