package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/metrics"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// HeaderAccessToken is the legacy header carrying the bearer credential.
const HeaderAccessToken = "accessToken"

// PrincipalKey is the context key under which the authorized principal is stored.
const PrincipalKey = "principal"

// Authorize enforces the given capability on a route. The token is taken from
// the accessToken header and resolved by the guard; the resulting principal
// is injected into the request context for handlers.
func Authorize(guard ports.Guard, cap domain.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAccessToken)

			principal, err := guard.Authorize(c.Request().Context(), token, cap)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					metrics.AuthzDeniedTotal.WithLabelValues("forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
				}
				metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
