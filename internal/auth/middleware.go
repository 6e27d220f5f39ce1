package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Middleware returns an echo middleware enforcing the resolved settings.
// Disabled mode is a passthrough; bearer mode requires a matching
// Authorization header on every request.
func Middleware(settings Settings) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if settings.Mode == ModeDisabled {
				return next(c)
			}

			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || settings.BearerToken == "" ||
				subtle.ConstantTimeCompare([]byte(token), []byte(settings.BearerToken)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"code":    "unauthorized",
					"message": "missing or invalid bearer token",
				})
			}
			return next(c)
		}
	}
}
