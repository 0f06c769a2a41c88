package domain

// Status is a check's availability state. It is a closed set internally;
// the loosely-typed TEXT column in storage is converted at the edge via
// ParseStatus.
type Status string

const (
	StatusUnknown Status = "UNKNOWN"
	StatusUp      Status = "UP"
	StatusDown    Status = "DOWN"
)

// ParseStatus maps a stored string onto the closed set. Anything
// unrecognized (including the empty string for never-probed checks) is
// UNKNOWN.
func ParseStatus(s string) Status {
	switch s {
	case string(StatusUp):
		return StatusUp
	case string(StatusDown):
		return StatusDown
	default:
		return StatusUnknown
	}
}

// Decide computes a check's next status from a probe outcome and reports
// whether it differs from the previous one. UNKNOWN is distinct from both
// UP and DOWN, so the first probe of a check always reports a change —
// every check alerts once on its first sweep on purpose.
func Decide(prev Status, reachable bool) (Status, bool) {
	next := StatusDown
	if reachable {
		next = StatusUp
	}
	return next, next != prev
}
