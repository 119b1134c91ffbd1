package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/southtrails/tours-api/internal/api/middleware"
	"github.com/southtrails/tours-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: user_id and role must
// both be present, since their presence proves the middleware ran.
func ctxClaims(c echo.Context) (userID, email string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	email, _ = c.Get(middleware.CtxEmail).(string)
	role, _ = c.Get(middleware.CtxRole).(domain.Role)

	if userID == "" || role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return userID, email, role, nil
}
