package http

import (
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nba-stats-service/internal/metrics"
)

func TestLoggingGeneratesRequestID(t *testing.T) {
	var seen string
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seen = RequestIDFromContext(r.Context())
	})
	handler := Logging(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatalf("expected generated request ID on context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("header %q does not match context %q", got, seen)
	}
}

func TestLoggingKeepsValidIncomingRequestID(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	handler := Logging(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)(next)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-abc_123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-abc_123" {
		t.Fatalf("valid incoming ID must be kept, got %q", got)
	}
}

func TestLoggingRejectsMalformedRequestID(t *testing.T) {
	next := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	handler := Logging(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)(next)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces\n")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || strings.Contains(got, " ") {
		t.Fatalf("malformed ID must be replaced, got %q", got)
	}
}

func TestLoggingRunsWithRecorder(t *testing.T) {
	recorder := metrics.NewRecorder()
	h, _, _, _, _, _ := newTestHandler()
	router := NewRouter(h, slog.New(slog.NewTextHandler(io.Discard, nil)), recorder)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/api/players/123/stats", nil))
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestStatusCaptureDefaultsTo200(t *testing.T) {
	ww := &responseWriter{ResponseWriter: httptest.NewRecorder(), status: nethttp.StatusOK}
	if ww.status != nethttp.StatusOK {
		t.Fatalf("expected default 200")
	}
	ww.WriteHeader(nethttp.StatusBadGateway)
	if ww.status != nethttp.StatusBadGateway {
		t.Fatalf("expected captured 502, got %d", ww.status)
	}
}
