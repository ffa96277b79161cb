package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/core/ports"
)

// AuditHandler exposes the caller's own slice of the authentication trail.
type AuditHandler struct {
	audit ports.AuditRepository
}

func NewAuditHandler(audit ports.AuditRepository) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Activity returns the caller's recent authentication events, newest first.
//
// @Summary      Recent authentication activity
// @Tags         auth
// @Produce      json
// @Param        limit  query     int  false  "Max events (default 20)"
// @Success      200    {array}   domain.AuthEvent
// @Router       /auth/activity [get]
func (h *AuditHandler) Activity(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	events, err := h.audit.ListByActor(c.Request().Context(), identity.Email, limit)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, events)
}
