package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsetu/marketplace-api/internal/api/metrics"
	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// RequireAction gates a route on the static role policy for the given
// action. The services consult the same table again before mutating.
func RequireAction(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.Can(role, action) {
				metrics.AuthDeniedTotal.WithLabelValues("wrong_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
