package handler

import (
	"time"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

type createUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role" validate:"required,oneof=ADMIN CUSTOMER"`
}

type updateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// listUsersQuery captures the supported query parameters for GET /users.
// Dates use YYYY-MM-DD.
type listUsersQuery struct {
	Page           int         `query:"page"`
	Limit          int         `query:"limit"`
	Name           string      `query:"name"`
	Email          string      `query:"email"`
	Role           domain.Role `query:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	CreatedAtStart string      `query:"createdAtStart" validate:"omitempty,datetime=2006-01-02"`
	CreatedAtEnd   string      `query:"createdAtEnd" validate:"omitempty,datetime=2006-01-02"`
	UpdatedAtStart string      `query:"updatedAtStart" validate:"omitempty,datetime=2006-01-02"`
	UpdatedAtEnd   string      `query:"updatedAtEnd" validate:"omitempty,datetime=2006-01-02"`
}

func (q listUsersQuery) toFilter() ports.ListUsersFilter {
	return ports.ListUsersFilter{
		Name:           q.Name,
		Email:          q.Email,
		Role:           q.Role,
		CreatedAtStart: parseDate(q.CreatedAtStart, false),
		CreatedAtEnd:   parseDate(q.CreatedAtEnd, true),
		UpdatedAtStart: parseDate(q.UpdatedAtStart, false),
		UpdatedAtEnd:   parseDate(q.UpdatedAtEnd, true),
		Page:           q.Page,
		Limit:          q.Limit,
	}
}

// parseDate converts a validated YYYY-MM-DD string into a bound. End bounds
// are pushed to the last instant of the day so the range is inclusive.
func parseDate(s string, endOfDay bool) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
