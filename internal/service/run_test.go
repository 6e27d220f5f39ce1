package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/config"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
)

func newLocalService() *Service {
	return New(&config.Config{ServiceName: "test-gateway", ServiceVersion: "0.0.1"}, nil)
}

func TestStartRunLocal(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	run, err := svc.StartRun(ctx, &domain.RunStartRequest{
		RunID:           "run_1",
		RootNodeTypeRef: domain.NodeTypeRef{NodeTypeID: "composite.echo", Version: "0.1.0"},
		Input:           json.RawMessage(`{"prompt":"hi"}`),
		RunContext:      json.RawMessage(`{"tenant":"t1"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "run_1", run.RunID)
	assert.Equal(t, domain.RunStateRunning, run.State)
	assert.NotEmpty(t, run.RootNodeRunID)
	assert.False(t, run.StartedAt.IsZero())
	assert.Nil(t, run.EndedAt)
	assert.JSONEq(t, `{"tenant":"t1"}`, string(run.RunContext))

	fetched, err := svc.GetRun(ctx, "run_1")
	require.NoError(t, err)
	assert.Equal(t, run, fetched)
}

func TestStartRunLocalAssignsDistinctIDs(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	first, err := svc.StartRun(ctx, &domain.RunStartRequest{})
	require.NoError(t, err)
	second, err := svc.StartRun(ctx, &domain.RunStartRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.True(t, strings.HasPrefix(first.RunID, "run_"))
	assert.True(t, strings.HasPrefix(first.RootNodeRunID, "node_run_"))
}

func TestStartRunLocalDuplicate(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	_, err := svc.StartRun(ctx, &domain.RunStartRequest{RunID: "run_1"})
	require.NoError(t, err)

	_, err = svc.StartRun(ctx, &domain.RunStartRequest{RunID: "run_1"})
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, domain.CodeRunAlreadyExists, apiErr.Code)
	assert.Equal(t, 409, apiErr.Status)
}

func TestGetRunLocalNotFound(t *testing.T) {
	svc := newLocalService()

	_, err := svc.GetRun(context.Background(), "run_missing")
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, domain.CodeRunNotFound, apiErr.Code)
	assert.Equal(t, 404, apiErr.Status)
}

func TestCancelRunLocal(t *testing.T) {
	svc := newLocalService()
	ctx := context.Background()

	started, err := svc.StartRun(ctx, &domain.RunStartRequest{RunID: "run_1"})
	require.NoError(t, err)

	canceled, err := svc.CancelRun(ctx, "run_1")
	require.NoError(t, err)
	assert.Equal(t, domain.RunStateCanceled, canceled.State)
	require.NotNil(t, canceled.EndedAt)

	// The record handed out at start must keep its original state.
	assert.Equal(t, domain.RunStateRunning, started.State)
	assert.Nil(t, started.EndedAt)

	// Cancel on a terminal run is a no-op.
	again, err := svc.CancelRun(ctx, "run_1")
	require.NoError(t, err)
	assert.Equal(t, canceled, again)
}

func TestCancelRunLocalNotFound(t *testing.T) {
	svc := newLocalService()

	_, err := svc.CancelRun(context.Background(), "run_missing")
	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, domain.CodeRunNotFound, apiErr.Code)
}

func TestStreamRunEventsLocalRoundTrip(t *testing.T) {
	svc := newLocalService()

	payload, err := svc.StreamRunEvents(context.Background(), "run_1")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(payload, "\n"), "payload must be newline-terminated")

	lines := strings.Split(strings.TrimSuffix(payload, "\n"), "\n")
	require.Len(t, lines, 1)

	var event domain.RunEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, "run_1", event.RunID)
	assert.Equal(t, int64(0), event.Seq)
	assert.Equal(t, domain.EventTypeRunStarted, event.Type)
	assert.False(t, event.Time.IsZero())
	assert.NotEmpty(t, event.Data.Message)
}
