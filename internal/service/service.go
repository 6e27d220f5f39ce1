// Package service implements the run gateway orchestration logic.
package service

import (
	"context"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/config"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/repository"
)

// Coordinator is the outbound adapter to a downstream Run Coordinator.
type Coordinator interface {
	BaseURL() string
	Health(ctx context.Context) (*domain.Health, error)
	StartRun(ctx context.Context, body *domain.RunStartRequest) (*domain.Run, error)
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	CancelRun(ctx context.Context, runID string) (*domain.Run, error)
	StreamRunEvents(ctx context.Context, runID string) (string, error)
}

// runBackend serves the run-lifecycle operations. The variant (proxy or
// local) is fixed at construction so the operations themselves never branch
// on mode.
type runBackend interface {
	StartRun(ctx context.Context, body *domain.RunStartRequest) (*domain.Run, error)
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	CancelRun(ctx context.Context, runID string) (*domain.Run, error)
	StreamRunEvents(ctx context.Context, runID string) (string, error)
}

// Service is the single entry point for all run-lifecycle operations.
type Service struct {
	serviceName    string
	serviceVersion string
	coordinator    Coordinator // nil when serving from the local fallback
	backend        runBackend
}

// New creates the gateway service. If coordinator is non-nil every run
// operation is proxied through it; otherwise the service owns an in-memory
// run registry for its lifetime. There is no runtime mode switch.
func New(cfg *config.Config, coordinator Coordinator) *Service {
	s := &Service{
		serviceName:    cfg.ServiceName,
		serviceVersion: cfg.ServiceVersion,
		coordinator:    coordinator,
	}
	if coordinator != nil {
		s.backend = &proxyBackend{coordinator: coordinator}
	} else {
		s.backend = &localBackend{store: repository.NewMemoryStore()}
	}
	return s
}

// StartRun starts a run, either downstream or in the local registry.
func (s *Service) StartRun(ctx context.Context, body *domain.RunStartRequest) (*domain.Run, error) {
	return s.backend.StartRun(ctx, body)
}

// GetRun returns the current record for a run.
func (s *Service) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	return s.backend.GetRun(ctx, runID)
}

// CancelRun requests cancellation of a run. Canceling a run that already
// reached a terminal state is a no-op returning the existing record.
func (s *Service) CancelRun(ctx context.Context, runID string) (*domain.Run, error) {
	return s.backend.CancelRun(ctx, runID)
}

// StreamRunEvents returns the run's event stream payload as newline-
// terminated JSON lines.
func (s *Service) StreamRunEvents(ctx context.Context, runID string) (string, error) {
	return s.backend.StreamRunEvents(ctx, runID)
}
