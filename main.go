package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/adapter/coordinator"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/auth"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/config"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/service"
	transport "github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting run gateway...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)

	// Resolve the downstream coordinator. No URL means the gateway serves
	// runs from its in-memory fallback for the lifetime of the process.
	var coord service.Coordinator
	if cfg.RunCoordinatorURL != "" {
		client := coordinator.NewClient(cfg.RunCoordinatorURL, cfg.RunCoordinatorBearerToken, cfg.RunCoordinatorTimeout)
		coord = client
		log.Printf("Run Coordinator: %s (proxy mode)", client.BaseURL())
	} else {
		log.Printf("Run Coordinator: not configured (local fallback mode)")
	}

	// Initialize service
	svc := service.New(cfg, coord)

	// Resolve auth settings
	settings := auth.SettingsFromEnv()
	log.Printf("Auth mode: %s", settings.Mode)

	// Create HTTP server
	server := transport.NewServer(svc, settings)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Run gateway started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down run gateway...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Run gateway stopped")
}
