package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
	authmw "github.com/dheerghayush/naturals/pkg/middleware/auth"
)

// principal returns the authenticated caller, or nil on anonymous routes.
func principal(c echo.Context) *service.Principal {
	p, _ := authmw.PrincipalFrom(c).(*service.Principal)
	return p
}

// mustPrincipal is principal for routes behind RequireAuth.
func mustPrincipal(c echo.Context) (*service.Principal, error) {
	p := principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return p, nil
}

func message(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msg})
}
