// Package transport retrieves schedule pages over HTTP. The fetcher only
// depends on the Transport interface, so tests substitute canned pages
// without a network.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/campus-tools/schedfetch/internal/ratelimit"
	"github.com/campus-tools/schedfetch/internal/urlutil"
	"github.com/rs/zerolog/log"
)

// Transport fetches a resource by URL and yields its body as a stream.
// Callers own the returned ReadCloser. Any failure, including a non-2xx
// status, is fatal for that fetch.
type Transport interface {
	Fetch(ctx context.Context, urlStr string) (io.ReadCloser, error)
}

// HTTPError reports a non-2xx response.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Status, e.URL)
}

// Client is the HTTP implementation of Transport. Requests go through the
// rate limiter before hitting the network.
type Client struct {
	client    *http.Client
	limiter   ratelimit.RateLimiter
	userAgent string
}

// NewClient creates a Client with dependency injection. A nil http.Client
// gets a default with a 30s timeout; a nil limiter disables throttling.
func NewClient(client *http.Client, limiter ratelimit.RateLimiter, userAgent string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		client:    client,
		limiter:   limiter,
		userAgent: userAgent,
	}
}

// Fetch retrieves the resource and returns its body for streaming.
func (c *Client) Fetch(ctx context.Context, urlStr string) (io.ReadCloser, error) {
	start := time.Now()

	if err := urlutil.Validate(urlStr); err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, urlStr); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        urlStr,
		}
	}

	log.Debug().
		Str("url", urlStr).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", time.Since(start).Milliseconds()).
		Msg("Fetch completed")

	return resp.Body, nil
}
