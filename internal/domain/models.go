package domain

import "time"

type CheckID string

// MinIntervalSeconds is the smallest polling interval accepted at
// registration.
const MinIntervalSeconds = 10

// Check is a registered monitoring target. IntervalSeconds is validated at
// registration but the worker probes on a global sweep cadence, so for now
// it is informational. AlertEmail is reserved for per-check alert routing.
type Check struct {
	ID              CheckID    `json:"id"`
	Name            string     `json:"name"`
	URL             string     `json:"url"`
	IntervalSeconds int        `json:"interval_seconds"`
	AlertEmail      string     `json:"alert_email,omitempty"`
	IsActive        bool       `json:"is_active"`
	LastStatus      Status     `json:"last_status"`
	LastCheckedAt   *time.Time `json:"last_checked_at"`
}

// CheckResult is one immutable probe outcome. HTTPStatus and LatencyMS are
// pointers to allow nil when the probe failed before a response arrived.
type CheckResult struct {
	ID         int64     `json:"id"`
	CheckID    CheckID   `json:"check_id"`
	CheckedAt  time.Time `json:"checked_at"`
	Status     Status    `json:"status"`
	HTTPStatus *int      `json:"http_status"`
	LatencyMS  *int64    `json:"latency_ms"`
	Error      string    `json:"error,omitempty"`
}
