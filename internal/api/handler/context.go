package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the administrator claims injected by the Auth
// middleware. Presence of both values proves the middleware ran; anything
// less is rejected before a service call is made.
func ctxIdentity(c echo.Context) (id uint, username string, err error) {
	id, _ = c.Get("user_id").(uint)
	username, _ = c.Get("username").(string)
	if id == 0 || username == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, username, nil
}
