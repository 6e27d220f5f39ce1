package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/domain"
	"github.com/AgentRuntimeProtocol/JARVIS-RunGateway/internal/repository"
)

// streamStubMessage is emitted by the local event-stream stub. Real event
// streaming requires an event store behind the coordinator.
const streamStubMessage = "Run Gateway does not stream real events yet."

// localBackend serves runs from the in-memory registry. It is the fallback
// used when no coordinator is configured; nothing survives process restart.
type localBackend struct {
	store *repository.MemoryStore
}

func (b *localBackend) StartRun(_ context.Context, body *domain.RunStartRequest) (*domain.Run, error) {
	runID := body.RunID
	if runID == "" {
		runID = "run_" + newID()
	}

	run := domain.Run{
		RunID:         runID,
		State:         domain.RunStateRunning,
		RootNodeRunID: "node_run_" + newID(),
		RunContext:    body.RunContext,
		StartedAt:     time.Now().UTC(),
		EndedAt:       nil,
		Extensions:    body.Extensions,
	}
	if err := b.store.CreateRun(run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (b *localBackend) GetRun(_ context.Context, runID string) (*domain.Run, error) {
	run, err := b.store.GetRun(runID)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (b *localBackend) CancelRun(_ context.Context, runID string) (*domain.Run, error) {
	run, err := b.store.CancelRun(runID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (b *localBackend) StreamRunEvents(_ context.Context, runID string) (string, error) {
	event := domain.RunEvent{
		RunID: runID,
		Seq:   0,
		Type:  domain.EventTypeRunStarted,
		Time:  time.Now().UTC(),
		Data:  domain.RunEventData{Message: streamStubMessage},
	}
	line, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run event: %w", err)
	}
	return string(line) + "\n", nil
}

func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
