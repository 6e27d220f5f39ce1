// Package v1 provides HTTP handlers for the run gateway v1 API.
package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the v1 routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/v1/health", h.Health)
	e.GET("/v1/version", h.Version)

	e.POST("/v1/runs", h.StartRun)
	e.GET("/v1/runs/:run_id", h.GetRun)
	e.POST("/v1/runs/:run_id/cancel", h.CancelRun)
	e.GET("/v1/runs/:run_id/events", h.StreamRunEvents)
}

// writeError maps a service error onto the wire. APIErrors keep their status
// and structured body; anything else is a 500.
func writeError(c echo.Context, err error) error {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return c.JSON(apiErr.Status, apiErr)
	}
	log.Printf("ERROR: unhandled gateway error: %v", err)
	return c.JSON(http.StatusInternalServerError, &domain.APIError{
		Code:    domain.CodeInternalError,
		Message: err.Error(),
	})
}
