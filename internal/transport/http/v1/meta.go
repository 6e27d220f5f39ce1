package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health returns the aggregated health report.
// GET /v1/health
func (h *Handler) Health(c echo.Context) error {
	report := h.service.Health(c.Request().Context())
	return c.JSON(http.StatusOK, report)
}

// Version returns the static service identity.
// GET /v1/version
func (h *Handler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Version())
}
