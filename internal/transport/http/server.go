// Package http provides the HTTP server implementation for the run gateway.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/auth"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/service"
	v1 "github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/transport/http/v1"
)

// NewServer creates and configures the gateway's HTTP server.
func NewServer(svc *service.Service, settings auth.Settings) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(auth.Middleware(settings))

	// Handlers
	v1Handler := v1.NewHandler(svc)
	v1Handler.RegisterRoutes(e)

	return e
}
