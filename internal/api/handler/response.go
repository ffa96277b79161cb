package handler

import (
	"math"

	"github.com/labstack/echo/v4"
)

// envelope is the canonical success wrapper for all API responses.
type envelope struct {
	Success bool            `json:"success"`
	Data    any             `json:"data"`
	Meta    *paginationMeta `json:"meta,omitempty"`
}

// paginationMeta describes a page of a list response.
type paginationMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondPage(c echo.Context, status int, data any, total int64, page, limit int) error {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return c.JSON(status, envelope{
		Success: true,
		Data:    data,
		Meta: &paginationMeta{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}
