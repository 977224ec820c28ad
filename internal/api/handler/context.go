package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/questlog/questlog/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a positive user_id proves the
// middleware ran and the subject claim parsed.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	userID, _ := c.Get("user_id").(int)
	if userID <= 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return &domain.Identity{UserID: userID, Username: username}, nil
}
