package service

import (
	"context"
	"time"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

// coordinatorCheckName is the name of the gateway-synthesized health check
// for the downstream coordinator.
const coordinatorCheckName = "run_coordinator"

// Health reports the gateway's health. With no coordinator configured the
// gateway is trivially ok. With one configured, the downstream report is
// folded in: the top-level status mirrors the downstream status and the
// check list opens with a synthesized coordinator check followed by the
// coordinator's own checks. A failed probe reports degraded rather than
// down: the gateway itself is still serving, the dependency is not.
func (s *Service) Health(ctx context.Context) *domain.Health {
	if s.coordinator == nil {
		return &domain.Health{Status: domain.StatusOK, Time: time.Now().UTC()}
	}

	downstream, err := s.coordinator.Health(ctx)
	if err != nil {
		return &domain.Health{
			Status: domain.StatusDegraded,
			Time:   time.Now().UTC(),
			Checks: []domain.Check{{
				Name:    coordinatorCheckName,
				Status:  domain.StatusDown,
				Message: err.Error(),
				Details: map[string]interface{}{"url": s.coordinator.BaseURL()},
			}},
		}
	}

	checks := []domain.Check{{
		Name:   coordinatorCheckName,
		Status: downstream.Status,
		Details: map[string]interface{}{
			"url":    s.coordinator.BaseURL(),
			"status": downstream.Status,
		},
	}}
	checks = append(checks, downstream.Checks...)

	return &domain.Health{
		Status: downstream.Status,
		Time:   time.Now().UTC(),
		Checks: checks,
	}
}

// Version returns the static service identity. Pure and infallible.
func (s *Service) Version() *domain.VersionInfo {
	return &domain.VersionInfo{
		ServiceName:          s.serviceName,
		ServiceVersion:       s.serviceVersion,
		SupportedAPIVersions: []string{"v1"},
	}
}
