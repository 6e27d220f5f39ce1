package service

import (
	"context"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

// proxyBackend forwards every run operation to the downstream coordinator.
// The coordinator is the sole owner of run state in this mode; errors arrive
// already mapped into the gateway taxonomy by the adapter.
type proxyBackend struct {
	coordinator Coordinator
}

func (b *proxyBackend) StartRun(ctx context.Context, body *domain.RunStartRequest) (*domain.Run, error) {
	return b.coordinator.StartRun(ctx, body)
}

func (b *proxyBackend) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	return b.coordinator.GetRun(ctx, runID)
}

func (b *proxyBackend) CancelRun(ctx context.Context, runID string) (*domain.Run, error) {
	return b.coordinator.CancelRun(ctx, runID)
}

func (b *proxyBackend) StreamRunEvents(ctx context.Context, runID string) (string, error) {
	return b.coordinator.StreamRunEvents(ctx, runID)
}
