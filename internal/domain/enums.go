// Package domain defines the core domain models for the run gateway.
package domain

// RunState represents the lifecycle state of a run.
type RunState string

const (
	RunStateRunning   RunState = "running"
	RunStateSucceeded RunState = "succeeded"
	RunStateFailed    RunState = "failed"
	RunStateCanceled  RunState = "canceled"
)

// Terminal reports whether the state permits no further transitions.
func (s RunState) Terminal() bool {
	switch s {
	case RunStateSucceeded, RunStateFailed, RunStateCanceled:
		return true
	}
	return false
}

// Status represents a health status.
type Status string

const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
	StatusDown     Status = "down"
)

// EventType represents the type of a run event.
type EventType string

const (
	EventTypeRunStarted  EventType = "run_started"
	EventTypeRunDone     EventType = "run_done"
	EventTypeRunFailed   EventType = "run_failed"
	EventTypeRunCanceled EventType = "run_canceled"
)
