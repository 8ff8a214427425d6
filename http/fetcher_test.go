package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/golazo"
	golazohttp "github.com/fwojciec/golazo/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<table class="tablesorter1"></table>`))
		}))
		defer server.Close()

		fetcher := golazohttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, `<table class="tablesorter1"></table>`, html)
	})

	t.Run("sends a browser user agent", func(t *testing.T) {
		t.Parallel()

		agents := make(chan string, 2)
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			agents <- r.UserAgent()
		}))
		defer server.Close()

		_, err := golazohttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, golazohttp.DefaultUserAgent, <-agents)

		_, err = golazohttp.NewFetcher(golazohttp.WithUserAgent("golazo-test")).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "golazo-test", <-agents)
	})

	t.Run("times out slow upstream", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("tarde"))
		}))
		defer server.Close()

		fetcher := golazohttp.NewFetcher(golazohttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, golazo.EUPSTREAM, golazo.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := golazohttp.NewFetcher().Fetch(ctx, server.URL)

		require.Error(t, err)
	})

	t.Run("reports non-200 status as upstream error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := golazohttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, golazo.EUPSTREAM, golazo.ErrorCode(err))
		assert.Contains(t, golazo.ErrorMessage(err), "503")
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		t.Parallel()

		_, err := golazohttp.NewFetcher().Fetch(context.Background(), "://sin-esquema")

		assert.Equal(t, golazo.EINVALID, golazo.ErrorCode(err))
	})
}
