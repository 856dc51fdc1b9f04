// Package httpclient is the shared JSON-over-HTTP transport for catalog
// clients: one retry policy, one user agent, one place that knows how the
// remote side signals "slow down".
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/EricDasha/mc-mod-compat-check/internal/log"
)

// ErrNotFound is returned for a 404 response. It is a definitive answer
// from the remote side and is never retried.
var ErrNotFound = errors.New("resource not found")

const defaultMaxRetries = 3

// caps keep the exponential backoff bounded per failure class: rate
// limiting merits long waits, server errors shorter ones, and transport
// errors shortest since they are usually local
const (
	rateLimitBackoffCap = 60 * time.Second
	serverBackoffCap    = 10 * time.Second
	transportBackoffCap = 5 * time.Second
)

type Client struct {
	http       *http.Client
	userAgent  string
	maxRetries int

	// replaced in tests to avoid real waits
	sleep func(ctx context.Context, d time.Duration) error
}

func New(userAgent string, timeout time.Duration) *Client {
	httpClient := cleanhttp.DefaultClient()
	httpClient.Timeout = timeout
	return &Client{
		http:       httpClient,
		userAgent:  userAgent,
		maxRetries: defaultMaxRetries,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func backoff(attempt int, limit time.Duration) time.Duration {
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > limit {
		return limit
	}
	return d
}

// GetJSON fetches a URL and decodes the response body into out. A nil out
// discards the body (useful for connectivity probes).
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	return c.do(ctx, http.MethodGet, url, headers, nil, out)
}

// PostJSON sends a JSON-encoded body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("unable to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, url, headers, encoded, out)
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, body []byte, out interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.send(ctx, method, url, headers, body)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			log.Debugf("request to %s failed (attempt %d): %v", url, attempt+1, err)
			if sleepErr := c.sleep(ctx, backoff(attempt, transportBackoffCap)); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			drain(resp)
			return ErrNotFound
		case resp.StatusCode == http.StatusTooManyRequests:
			drain(resp)
			lastErr = fmt.Errorf("rate limited by %s", url)
			if sleepErr := c.sleep(ctx, backoff(attempt, rateLimitBackoffCap)); sleepErr != nil {
				return sleepErr
			}
			continue
		case resp.StatusCode >= 500:
			drain(resp)
			lastErr = fmt.Errorf("server error from %s: %s", url, resp.Status)
			if sleepErr := c.sleep(ctx, backoff(attempt, serverBackoffCap)); sleepErr != nil {
				return sleepErr
			}
			continue
		case resp.StatusCode >= 400:
			drain(resp)
			return fmt.Errorf("request to %s failed: %s", url, resp.Status)
		}

		return decode(resp, out)
	}

	return fmt.Errorf("request to %s failed after %d attempts: %w", url, c.maxRetries+1, lastErr)
}

func (c *Client) send(ctx context.Context, method, url string, headers map[string]string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("unable to build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.http.Do(req)
}

func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unable to decode response from %s: %w", resp.Request.URL, err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
