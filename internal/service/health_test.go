package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/config"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

// fakeCoordinator implements Coordinator for service tests.
type fakeCoordinator struct {
	baseURL   string
	health    *domain.Health
	healthErr error

	run       *domain.Run
	runErr    error
	stream    string
	streamErr error

	lastStartBody *domain.RunStartRequest
	lastRunID     string
}

func (f *fakeCoordinator) BaseURL() string { return f.baseURL }

func (f *fakeCoordinator) Health(ctx context.Context) (*domain.Health, error) {
	return f.health, f.healthErr
}

func (f *fakeCoordinator) StartRun(ctx context.Context, body *domain.RunStartRequest) (*domain.Run, error) {
	f.lastStartBody = body
	return f.run, f.runErr
}

func (f *fakeCoordinator) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	f.lastRunID = runID
	return f.run, f.runErr
}

func (f *fakeCoordinator) CancelRun(ctx context.Context, runID string) (*domain.Run, error) {
	f.lastRunID = runID
	return f.run, f.runErr
}

func (f *fakeCoordinator) StreamRunEvents(ctx context.Context, runID string) (string, error) {
	f.lastRunID = runID
	return f.stream, f.streamErr
}

func newProxyService(coord *fakeCoordinator) *Service {
	return New(&config.Config{ServiceName: "test-gateway", ServiceVersion: "0.0.1"}, coord)
}

func TestHealthLocalOK(t *testing.T) {
	svc := newLocalService()

	report := svc.Health(context.Background())
	assert.Equal(t, domain.StatusOK, report.Status)
	assert.False(t, report.Time.IsZero())
	assert.Empty(t, report.Checks)
}

func TestHealthProxyMergesDownstreamChecks(t *testing.T) {
	coord := &fakeCoordinator{
		baseURL: "http://coordinator.test",
		health: &domain.Health{
			Status: domain.StatusDegraded,
			Time:   time.Now().UTC(),
			Checks: []domain.Check{{Name: "db", Status: domain.StatusDown}},
		},
	}
	svc := newProxyService(coord)

	report := svc.Health(context.Background())
	assert.Equal(t, domain.StatusDegraded, report.Status)
	require.Len(t, report.Checks, 2)

	synthesized := report.Checks[0]
	assert.Equal(t, "run_coordinator", synthesized.Name)
	assert.Equal(t, domain.StatusDegraded, synthesized.Status)
	assert.Equal(t, "http://coordinator.test", synthesized.Details["url"])
	assert.Equal(t, domain.StatusDegraded, synthesized.Details["status"])

	assert.Equal(t, "db", report.Checks[1].Name)
	assert.Equal(t, domain.StatusDown, report.Checks[1].Status)
}

func TestHealthProxyFaultReportsDegraded(t *testing.T) {
	coord := &fakeCoordinator{
		baseURL:   "http://coordinator.test",
		healthErr: errors.New("connection refused"),
	}
	svc := newProxyService(coord)

	report := svc.Health(context.Background())
	assert.Equal(t, domain.StatusDegraded, report.Status)
	require.Len(t, report.Checks, 1)

	check := report.Checks[0]
	assert.Equal(t, "run_coordinator", check.Name)
	assert.Equal(t, domain.StatusDown, check.Status)
	assert.Equal(t, "connection refused", check.Message)
	assert.Equal(t, map[string]interface{}{"url": "http://coordinator.test"}, check.Details)
}

func TestVersion(t *testing.T) {
	svc := newLocalService()

	info := svc.Version()
	assert.Equal(t, "test-gateway", info.ServiceName)
	assert.Equal(t, "0.0.1", info.ServiceVersion)
	assert.Equal(t, []string{"v1"}, info.SupportedAPIVersions)
}
