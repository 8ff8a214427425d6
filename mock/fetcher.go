package mock

import (
	"context"

	"github.com/fwojciec/golazo"
)

var _ golazo.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of golazo.Fetcher.
// A nil CloseFn makes Close a no-op.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

// Pages returns a Fetcher serving the given bodies by URL. Unknown URLs
// fail with an EUPSTREAM error.
func Pages(pages map[string]string) *Fetcher {
	return &Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			body, ok := pages[url]
			if !ok {
				return "", golazo.Errorf(golazo.EUPSTREAM, "HTTP 404 for %s", url)
			}
			return body, nil
		},
	}
}
