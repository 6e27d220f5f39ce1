package domain

import "time"

// Check is a single named sub-check inside a health report.
type Check struct {
	Name    string                 `json:"name"`
	Status  Status                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Health is an aggregated health report.
type Health struct {
	Status Status    `json:"status"`
	Time   time.Time `json:"time"`
	Checks []Check   `json:"checks,omitempty"`
}
