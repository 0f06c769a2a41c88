package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPChecker_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Reachable {
		t.Fatalf("want reachable, got %+v", out)
	}
	if out.HTTPStatus != 200 {
		t.Fatalf("want status 200, got %d", out.HTTPStatus)
	}
	if out.LatencyMS == nil || *out.LatencyMS < 0 {
		t.Fatalf("latency should be measured, got %v", out.LatencyMS)
	}
}

// A 500 still counts as reachable: only transport failures classify as
// unreachable. Deliberate policy, not a bug.
func TestHTTPChecker_ServerErrorIsStillReachable(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Reachable {
		t.Fatalf("500 must classify as reachable, got %+v", out)
	}
	if out.HTTPStatus != 500 {
		t.Fatalf("want status 500, got %d", out.HTTPStatus)
	}
}

func TestHTTPChecker_NotFoundIsStillReachable(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	defer s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), s.URL)
	if !out.Reachable || out.HTTPStatus != 404 {
		t.Fatalf("404 must classify as reachable, got %+v", out)
	}
}

func TestHTTPChecker_ConnectionRefused(t *testing.T) {
	// grab a port nothing listens on
	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	chk := NewHTTPChecker(2 * time.Second)
	out := chk.Check(context.Background(), url)
	if out.Reachable {
		t.Fatalf("want unreachable, got %+v", out)
	}
	if out.Error == "" {
		t.Fatal("transport failure must carry an error message")
	}
	if out.HTTPStatus != 0 {
		t.Fatalf("no response means no status code, got %d", out.HTTPStatus)
	}
	if out.LatencyMS == nil {
		t.Fatal("a refused connection still took measurable time")
	}
}

func TestHTTPChecker_Timeout(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer s.Close()

	chk := NewHTTPChecker(30 * time.Millisecond)
	out := chk.Check(context.Background(), s.URL)
	if out.Reachable {
		t.Fatalf("timeout must classify as unreachable, got %+v", out)
	}
	if out.Error == "" {
		t.Fatal("timeout must carry an error message")
	}
}

func TestExtractHost(t *testing.T) {
	if got := extractHost("https://example.com/path"); got != "example.com" {
		t.Fatalf("got %q", got)
	}
	if got := extractHost("not a url"); got != "not a url" {
		t.Fatalf("fallback should return input, got %q", got)
	}
}

func TestAnnotateDNS_SkipsIPLiterals(t *testing.T) {
	got := annotateDNS(context.Background(), "http://127.0.0.1:9/", "connection refused")
	if strings.Contains(got, "dns=") {
		t.Fatalf("IP targets must not get a dns tag, got %q", got)
	}
}

func TestAnnotateDNS_SkipsLookupWhenContextSpent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := annotateDNS(ctx, "http://noexist.invalid/", "timeout")
	if got != "timeout" {
		t.Fatalf("spent context must leave the error untouched, got %q", got)
	}
}
