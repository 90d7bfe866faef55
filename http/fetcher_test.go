package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/pagekit"
	pagekithttp "github.com/fwojciec/pagekit/http"
	"github.com/fwojciec/pagekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		var got atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.Store(r.UserAgent())
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithUserAgent("test-agent"))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", got.Load())
	})

	t.Run("truncates oversized bodies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithMaxBodySize(10))

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, html, 10)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("rejects non-http urls", func(t *testing.T) {
		t.Parallel()

		fetcher := pagekithttp.NewFetcher()

		for _, u := range []string{"", "ftp://example.com", "example.com/page", "http://"} {
			_, err := fetcher.Fetch(context.Background(), u)
			assert.Equal(t, pagekit.EINVALID, pagekit.ErrorCode(err), u)
		}
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}))

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after last retry", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithRetryDelays([]time.Duration{time.Millisecond}))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(pagekithttp.WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("refuses internal hosts when private hosts are denied", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte("<html>internal</html>"))
		}))
		defer server.Close()

		fetcher := pagekithttp.NewFetcher(
			pagekithttp.WithDenyPrivateHosts(),
			pagekithttp.WithRetryDelays([]time.Duration{time.Millisecond}),
		)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, pagekit.EINVALID, pagekit.ErrorCode(err))
		assert.Contains(t, pagekit.ErrorMessage(err), "127.0.0.1")
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("fetches internal hosts by default", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>internal</html>"))
		}))
		defer server.Close()

		html, err := pagekithttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html>internal</html>", html)
	})

	t.Run("waits on limiter with request host", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		var domain atomic.Value
		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, d string) error {
				domain.Store(d)
				return nil
			},
		}
		fetcher := pagekithttp.NewFetcher(pagekithttp.WithLimiter(limiter))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1", domain.Load())
	})

	t.Run("returns limiter error", func(t *testing.T) {
		t.Parallel()

		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, d string) error {
				return context.Canceled
			},
		}
		fetcher := pagekithttp.NewFetcher(pagekithttp.WithLimiter(limiter))

		_, err := fetcher.Fetch(context.Background(), "http://example.com")
		require.ErrorIs(t, err, context.Canceled)
	})
}
