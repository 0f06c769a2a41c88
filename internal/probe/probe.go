package probe

import "context"

// Classification is the outcome of a single probe.
//
// Reachable means the request completed without a transport-level error.
// The HTTP status code does not factor in: a 404 or 500 is still reachable.
// Only network failures (DNS, connect, timeout, TLS) classify as
// unreachable. HTTPStatus is 0 and Error is set when no response arrived.
// LatencyMS is nil when no request went out at all; a 0 ms probe is a valid
// measurement, not an absence.
type Classification struct {
	Reachable  bool
	HTTPStatus int
	LatencyMS  *int64
	Error      string
}

// Checker performs a single probe of a target URL. Implementations never
// return an error; failures are folded into the Classification.
type Checker interface {
	Check(ctx context.Context, target string) Classification
}
