package handler

import "github.com/mercatto/commerce-api/internal/core/ports"

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Active      *bool   `json:"active,omitempty"`
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active,omitempty"`
}

type listProductsQuery struct {
	Page     int      `query:"page"`
	Limit    int      `query:"limit"`
	Name     string   `query:"name"`
	Active   *bool    `query:"active"`
	PriceMin *float64 `query:"priceMin" validate:"omitempty,gte=0"`
	PriceMax *float64 `query:"priceMax" validate:"omitempty,gte=0"`
}

func (q listProductsQuery) toFilter() ports.ListProductsFilter {
	return ports.ListProductsFilter{
		Name:     q.Name,
		Active:   q.Active,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
		Page:     q.Page,
		Limit:    q.Limit,
	}
}
