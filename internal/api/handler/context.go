package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usermgmt/user-service/internal/api/middleware"
	"github.com/usermgmt/user-service/internal/core/domain"
)

// CallerIdentity extracts the Identity injected by the Auth middleware.
// Its absence means the middleware did not run on this route; reject rather
// than proceed unauthenticated.
func CallerIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey()).(domain.Identity)
	if !ok || identity.Username == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
