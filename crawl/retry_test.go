package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/golazo/crawl"
	"github.com/fwojciec/golazo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.RetryDelays(3))
	assert.Empty(t, crawl.RetryDelays(0))
}

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		r := &crawl.RetryFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					attempts++
					if attempts < 3 {
						return "", errors.New("temporary")
					}
					return "ok", nil
				},
			},
			Delays: []time.Duration{0, 0, 0},
		}

		html, err := r.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		r := &crawl.RetryFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					attempts++
					return "", errors.New("down")
				},
			},
			Delays: []time.Duration{0, 0},
		}

		_, err := r.Fetch(context.Background(), "https://example.com")

		require.EqualError(t, err, "down")
		assert.Equal(t, 3, attempts)
	})

	t.Run("fetches once without delays", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		r := crawl.NewRetryFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				attempts++
				return "", errors.New("down")
			},
		}, 0, nil)

		_, err := r.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		r := &crawl.RetryFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					attempts++
					cancel()
					return "", errors.New("down")
				},
			},
			Delays: []time.Duration{time.Hour},
		}

		_, err := r.Fetch(ctx, "https://example.com")

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})

	t.Run("closes the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		r := &crawl.RetryFetcher{Fetcher: &mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}}

		require.NoError(t, r.Close())
		assert.True(t, closed)
	})
}
