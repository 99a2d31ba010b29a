package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authbase/person-api/internal/api/middleware"
)

// callerLogin extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty login
// proves the middleware ran. A gated handler reached without one means a
// routing mistake, not a caller error, so the request is rejected.
func callerLogin(c echo.Context) (string, error) {
	login, _ := c.Get(middleware.LoginKey).(string)
	if login == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}
	return login, nil
}
