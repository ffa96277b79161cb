package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a new account with an explicit role. Admin only.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, user)
}

// List returns a filtered, paginated page of users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	var q listUsersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	filter := q.toFilter()
	users, total, err := h.userService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, users, total, filter.Page, filter.Limit)
}

// Me returns the account behind the authenticated identity.
//
// @Summary      Get current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// Get returns one user by id. Owner or admin.
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// Update partially updates a user. Owner or admin.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}

// Delete soft-deletes a user. Owner or admin.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"status": "deleted"})
}
