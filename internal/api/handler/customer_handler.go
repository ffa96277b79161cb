package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/core/ports"
)

type CustomerHandler struct {
	customerService ports.CustomerService
}

func NewCustomerHandler(customerService ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create registers a customer account. Public: this is the storefront
// self-registration endpoint, always producing a CUSTOMER role user.
//
// @Summary      Register a new customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      createCustomerRequest  true  "Customer registration details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  map[string]string
// @Router       /customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.customerService.Create(c.Request().Context(), ports.CreateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, user)
}

// List returns a filtered, paginated page of customers. Admin only.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	var q listCustomersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter := q.toFilter()
	customers, total, err := h.customerService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, customers, total, filter.Users.Page, filter.Users.Limit)
}

// Get returns one customer by user id. Owner or admin.
//
// @Summary      Get customer by id
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	user, err := h.customerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// Update partially updates a customer and its account. Owner or admin.
//
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User id"
// @Param        body  body      updateCustomerRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.customerService.Update(c.Request().Context(), c.Param("id"), ports.UpdateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// Delete soft-deletes a customer. Owner or admin.
//
// @Summary      Delete customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.customerService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"status": "deleted"})
}
