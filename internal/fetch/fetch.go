// Package fetch wraps HTTP JSON retrieval with per-source rate limiting,
// retry with exponential backoff, and an optional read-through byte cache.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"nba-stats-service/internal/cache"
	"nba-stats-service/internal/logging"
	"nba-stats-service/internal/metrics"
)

// Doer abstracts *http.Client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config assembles a Client's collaborators. Zero values are usable: a nil
// Doer falls back to a default http.Client and a zero RatePerSecond disables
// the limiter.
type Config struct {
	Source        string
	Doer          Doer
	RatePerSecond int
	Cache         *cache.Cache
	Logger        *slog.Logger
	Recorder      *metrics.Recorder
}

// Options tunes a single request.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	Headers    map[string]string
	// CacheTTL enables the read-through cache for this request; zero skips it.
	CacheTTL time.Duration
}

// Client fetches JSON documents from one upstream source.
type Client struct {
	source   string
	doer     Doer
	limiter  *rate.Limiter
	cache    *cache.Cache
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func New(cfg Config) *Client {
	doer := cfg.Doer
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RatePerSecond)
	}
	return &Client{
		source:   cfg.Source,
		doer:     doer,
		limiter:  limiter,
		cache:    cfg.Cache,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
	}
}

// GetJSON fetches url and decodes the response body into out. Cached bodies
// are decoded without touching the network.
func (c *Client) GetJSON(ctx context.Context, url string, opts Options, out any) error {
	if opts.CacheTTL > 0 {
		if body, ok := c.cache.Get(url); ok {
			c.recorder.RecordCacheRequest(true)
			return c.decode(url, body, out)
		}
		c.recorder.RecordCacheRequest(false)
	}

	body, err := c.getBytes(ctx, url, opts)
	if err != nil {
		return err
	}

	if err := c.decode(url, body, out); err != nil {
		return err
	}
	if opts.CacheTTL > 0 {
		c.cache.Set(url, body, opts.CacheTTL)
	}
	return nil
}

func (c *Client) decode(url string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindDecode, URL: url, Err: err}
	}
	return nil
}

func (c *Client) getBytes(ctx context.Context, url string, opts Options) ([]byte, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(opts.MaxRetries)),
		ctx,
	)

	var body []byte
	operation := func() error {
		var err error
		body, err = c.attempt(ctx, url, opts)
		return err
	}

	if err := backoff.Retry(operation, policy); err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &Error{Kind: KindNetwork, URL: url, Err: err}
	}
	return body, nil
}

func (c *Client) attempt(ctx context.Context, url string, opts Options) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(&Error{Kind: KindNetwork, URL: url, Err: err})
		}
	}

	reqCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(&Error{Kind: KindNetwork, URL: url, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.recorder.RecordSourceAttempt(c.source, duration, err)
		kind := KindNetwork
		if errors.Is(err, context.DeadlineExceeded) || reqCtx.Err() != nil {
			kind = KindTimeout
		}
		logging.Warn(c.logger, "upstream request failed", err,
			logging.FieldSource, c.source, "url", url)
		return nil, &Error{Kind: kind, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		ferr := &Error{Kind: KindStatus, Status: resp.StatusCode, URL: url}
		c.recorder.RecordSourceAttempt(c.source, duration, ferr)
		if resp.StatusCode == http.StatusTooManyRequests {
			c.recorder.RecordRateLimit(c.source, parseRetryAfter(resp.Header.Get("Retry-After")))
			return nil, ferr
		}
		// Client errors other than 429 will not heal on retry.
		if resp.StatusCode < 500 {
			return nil, backoff.Permanent(ferr)
		}
		return nil, ferr
	}
	c.recorder.RecordSourceAttempt(c.source, duration, nil)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, URL: url, Err: err}
	}
	return body, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
