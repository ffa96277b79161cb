package handler

import "github.com/mercatto/commerce-api/internal/core/ports"

type createCustomerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type updateCustomerRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	Status      *bool   `json:"status,omitempty"`
}

type listCustomersQuery struct {
	listUsersQuery
	FullName    string `query:"fullName"`
	PhoneNumber string `query:"phoneNumber"`
	Status      *bool  `query:"status"`
}

func (q listCustomersQuery) toFilter() ports.ListCustomersFilter {
	return ports.ListCustomersFilter{
		Users:       q.listUsersQuery.toFilter(),
		FullName:    q.FullName,
		PhoneNumber: q.PhoneNumber,
		Status:      q.Status,
	}
}
