package domain

import (
	"encoding/json"
	"time"
)

// Run represents a single trackable unit of long-running work.
type Run struct {
	RunID         string          `json:"run_id"`
	State         RunState        `json:"state"`
	RootNodeRunID string          `json:"root_node_run_id"`
	RunContext    json.RawMessage `json:"run_context,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	EndedAt       *time.Time      `json:"ended_at,omitempty"`
	Extensions    json.RawMessage `json:"extensions,omitempty"`
}

// RunEvent is a single event on a run's event stream, serialized as one
// NDJSON line.
type RunEvent struct {
	RunID string       `json:"run_id"`
	Seq   int64        `json:"seq"`
	Type  EventType    `json:"type"`
	Time  time.Time    `json:"time"`
	Data  RunEventData `json:"data,omitempty"`
}

// RunEventData is the payload of a run event.
type RunEventData struct {
	Message string `json:"message,omitempty"`
}
