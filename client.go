// Package twitter is a Go client for the Twitter/X API hosted on RapidAPI
// (https://rapidapi.com/datarise-datarise-default/api/twitter-x).
//
// Client blocks per call and is safe for concurrent use. AsyncClient issues
// the same operations without blocking the caller. Both track the gateway's
// rate-limit quota in a shared snapshot exposed via RateLimit.
package twitter

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/kbukum/gokit/httpclient"
)

// Client is the synchronous Twitter/X API client.
type Client struct {
	http *httpclient.Adapter
	cfg  ClientConfig
	log  *slog.Logger

	// mu guards rateLimit, the only shared mutable state.
	mu        sync.RWMutex
	rateLimit RateLimit
}

// NewClient creates a client for the given configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth: &httpclient.AuthConfig{
			Type: httpclient.AuthAPIKey,
			Key:  cfg.APIKey,
			Name: "x-rapidapi-key",
			In:   "header",
		},
		Headers: map[string]string{"x-rapidapi-host": defaultHost},
	})
	if err != nil {
		return nil, err
	}

	return &Client{http: hc, cfg: cfg, log: cfg.logger()}, nil
}

// RateLimit returns the quota snapshot from the most recent completed call.
// Before the first call it is the zero value.
func (c *Client) RateLimit() RateLimit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rateLimit
}

// do issues a single GET for the named operation and returns the raw
// response. Non-2xx statuses are not errors; only transport failures
// (connection, DNS, timeout) produce a non-nil error, and those propagate
// unmodified. There is exactly one HTTP call per invocation — no retries.
func (c *Client) do(ctx context.Context, operation string, params map[string]string) (*Response, error) {
	path, err := endpointPath(operation)
	if err != nil {
		return nil, err
	}

	c.log.Info(operation, slog.Int("remaining", c.RateLimit().Remaining))

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  params,
	})
	if resp == nil {
		return nil, err
	}

	// The transport classifies non-2xx statuses as errors; the contract here
	// is raw status passthrough, so only the response survives. The snapshot
	// is overwritten whole whenever the quota header triple is present.
	if rl, ok := parseRateLimit(resp.Headers); ok {
		c.mu.Lock()
		c.rateLimit = rl
		c.mu.Unlock()
	}

	c.log.Debug(operation,
		slog.Int("status", resp.StatusCode),
		slog.Int("remaining", c.RateLimit().Remaining))

	return &Response{StatusCode: resp.StatusCode, Headers: resp.Headers, Body: resp.Body}, nil
}
