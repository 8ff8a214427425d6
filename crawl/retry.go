package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/golazo"
)

var _ golazo.Fetcher = (*RetryFetcher)(nil)

// RetryDelays returns n backoff delays doubling from one second: 1s, 2s, 4s...
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// RetryFetcher retries failed fetches of the wrapped Fetcher, waiting
// Delays[i] before retry i+1. With no delays it fetches once.
type RetryFetcher struct {
	Fetcher golazo.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// NewRetryFetcher wraps f with up to retries retries using RetryDelays.
func NewRetryFetcher(f golazo.Fetcher, retries int, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{
		Fetcher: f,
		Delays:  RetryDelays(retries),
		Logger:  logger,
	}
}

// Fetch returns the first successful response or the last error.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(r.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := r.Fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if r.Logger != nil {
			r.Logger.Warn("retry", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.Delays[attempt]):
		}
	}

	return "", lastErr
}

func (r *RetryFetcher) Close() error {
	return r.Fetcher.Close()
}
