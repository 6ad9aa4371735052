package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nba-stats-service/internal/cache"
	"nba-stats-service/internal/metrics"
)

type payload struct {
	Name string `json:"name"`
}

func newTestClient(srvClient *http.Client, c *cache.Cache) *Client {
	return New(Config{
		Source:   "test",
		Doer:     srvClient,
		Cache:    c,
		Recorder: metrics.NewRecorder(),
	})
}

func TestGetJSONDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"celtics"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), nil)

	var out payload
	if err := client.GetJSON(context.Background(), srv.URL, Options{}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "celtics" {
		t.Fatalf("unexpected payload %+v", out)
	}
}

func TestGetJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), nil)

	var out payload
	if err := client.GetJSON(context.Background(), srv.URL, Options{MaxRetries: 2}, &out); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestGetJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), nil)

	var out payload
	err := client.GetJSON(context.Background(), srv.URL, Options{MaxRetries: 3}, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected single attempt for 404, got %d", got)
	}
}

func TestGetJSONClassifiesStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), nil)

	var out payload
	err := client.GetJSON(context.Background(), srv.URL, Options{}, &out)

	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected typed fetch error, got %v", err)
	}
	if fe.Kind != KindStatus || fe.Status != http.StatusBadGateway {
		t.Fatalf("unexpected classification %+v", fe)
	}
}

func TestGetJSONDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), nil)

	var out payload
	err := client.GetJSON(context.Background(), srv.URL, Options{}, &out)

	var fe *Error
	if !errors.As(err, &fe) || fe.Kind != KindDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestGetJSONServesFromCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"name":"cached"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), cache.New(true))
	opts := Options{CacheTTL: time.Minute}

	var first, second payload
	if err := client.GetJSON(context.Background(), srv.URL, opts, &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.GetJSON(context.Background(), srv.URL, opts, &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected second read to hit cache, saw %d upstream calls", got)
	}
	if second.Name != "cached" {
		t.Fatalf("unexpected cached payload %+v", second)
	}
}

func TestGetJSONForwardsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(`{"name":"ok"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.Client(), nil)

	var out payload
	err := client.GetJSON(context.Background(), srv.URL, Options{
		Headers: map[string]string{"User-Agent": "test-agent"},
	}, &out)
	if err != nil {
		t.Fatalf("expected headers to be forwarded, got %v", err)
	}
}
