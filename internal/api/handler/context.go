package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authorize middleware.
// Its presence proves the guard ran; a missing principal means the route was
// wired without the middleware, which is always a server-side mistake.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
