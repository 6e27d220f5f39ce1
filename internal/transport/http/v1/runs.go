package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

// StartRun starts a new run.
// POST /v1/runs
func (h *Handler) StartRun(c echo.Context) error {
	var body domain.RunStartRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, &domain.APIError{
			Code:    "invalid_request",
			Message: "invalid request body",
		})
	}

	run, err := h.service.StartRun(c.Request().Context(), &body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

// GetRun returns the current record for a run.
// GET /v1/runs/:run_id
func (h *Handler) GetRun(c echo.Context) error {
	run, err := h.service.GetRun(c.Request().Context(), c.Param("run_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

// CancelRun requests cancellation of a run.
// POST /v1/runs/:run_id/cancel
func (h *Handler) CancelRun(c echo.Context) error {
	run, err := h.service.CancelRun(c.Request().Context(), c.Param("run_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

// StreamRunEvents returns the run's event stream as newline-delimited JSON.
// GET /v1/runs/:run_id/events
func (h *Handler) StreamRunEvents(c echo.Context) error {
	payload, err := h.service.StreamRunEvents(c.Request().Context(), c.Param("run_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Blob(http.StatusOK, "application/x-ndjson", []byte(payload))
}
