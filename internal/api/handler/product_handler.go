package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/core/ports"
)

// ProductHandler exposes catalog CRUD. Every route is admin-only; the
// storefront read path is out of scope for this service.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Stock:       req.Stock,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, product)
}

// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	var q listProductsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter := q.toFilter()
	products, total, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, products, total, filter.Page, filter.Limit)
}

// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, product)
}

// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Stock:       req.Stock,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, product)
}

// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"status": "deleted"})
}
