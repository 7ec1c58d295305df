package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id or
// empty role means the middleware did not run on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get("user_id").(int64)
	role, _ := c.Get("role").(string)
	if id == 0 || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	return domain.Identity{ID: id, Email: email, Role: role}, nil
}
