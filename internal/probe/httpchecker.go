package probe

import (
	"context"
	"net/http"
	"time"
)

type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

// Check issues one GET against target. Exactly one attempt; retries are not
// a probe concern.
func (h *HTTPChecker) Check(ctx context.Context, target string) Classification {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Classification{Error: err.Error()}
	}

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return Classification{
			LatencyMS: &latency,
			Error:     annotateDNS(ctx, target, err.Error()),
		}
	}
	defer resp.Body.Close()

	return Classification{
		Reachable:  true,
		HTTPStatus: resp.StatusCode,
		LatencyMS:  &latency,
	}
}
