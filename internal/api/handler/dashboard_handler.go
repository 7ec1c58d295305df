package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// DashboardHandler serves the role-shaped activity summary.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats returns the caller's activity counts, shaped by role.
//
// @Summary      Dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	// Exactly one member of the union is set; the response body is that
	// member alone, so each role sees only its own fields.
	switch {
	case stats.Learner != nil:
		return c.JSON(http.StatusOK, stats.Learner)
	case stats.Mentor != nil:
		return c.JSON(http.StatusOK, stats.Mentor)
	default:
		return c.JSON(http.StatusOK, stats.Client)
	}
}
