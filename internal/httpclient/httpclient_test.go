package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *[]time.Duration) {
	t.Helper()
	c := New("test-agent", 5*time.Second)
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		w.Write([]byte(`{"value": 42}`))
	}))
	defer server.Close()

	c, _ := newTestClient(t)
	var out struct {
		Value int `json:"value"`
	}
	err := c.GetJSON(context.Background(), server.URL, map[string]string{"x-api-key": "secret"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
}

func TestPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"echoed": true}`))
	}))
	defer server.Close()

	c, _ := newTestClient(t)
	var out struct {
		Echoed bool `json:"echoed"`
	}
	err := c.PostJSON(context.Background(), server.URL, nil, map[string]string{"k": "v"}, &out)
	require.NoError(t, err)
	assert.True(t, out.Echoed)
}

func TestNotFoundIsImmediate(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c, slept := newTestClient(t)
	err := c.GetJSON(context.Background(), server.URL, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, calls)
	assert.Empty(t, *slept)
}

func TestServerErrorRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, slept := newTestClient(t)
	err := c.GetJSON(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *slept)
}

func TestRetriesExhausted(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c, _ := newTestClient(t)
	err := c.GetJSON(context.Background(), server.URL, nil, nil)
	assert.Error(t, err)
	assert.Equal(t, 4, calls)
}

func TestClientErrorIsNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c, _ := newTestClient(t)
	err := c.GetJSON(context.Background(), server.URL, nil, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, calls)
}

func TestRateLimitBackoffGrows(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 4 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, slept := newTestClient(t)
	err := c.GetJSON(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, *slept)
}

func TestBackoffCaps(t *testing.T) {
	assert.Equal(t, 1*time.Second, backoff(0, rateLimitBackoffCap))
	assert.Equal(t, 8*time.Second, backoff(3, rateLimitBackoffCap))
	assert.Equal(t, 10*time.Second, backoff(6, serverBackoffCap))
	assert.Equal(t, 5*time.Second, backoff(6, transportBackoffCap))
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New("test-agent", 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.GetJSON(ctx, server.URL, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
