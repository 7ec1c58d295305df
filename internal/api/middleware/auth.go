package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skillsetu/marketplace-api/internal/api/metrics"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// Auth validates the bearer token and injects the resolved identity into the
// echo context. A missing token is 401; a present but invalid or expired one
// is 403, so clients can tell "log in" apart from "token rejected".
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set("user_id", identity.ID)
			c.Set("email", identity.Email)
			c.Set("role", identity.Role)

			return next(c)
		}
	}
}
