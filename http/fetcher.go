// Package http implements the HTTP side of golazo: a Fetcher that reads
// upstream pages and a Server that exposes the services as JSON routes.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/golazo"
)

// DefaultFetchTimeout bounds a single upstream request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every upstream request. The results site
// answers bare Go clients with an error page.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

var _ golazo.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with plain GET requests. It does not run
// JavaScript; see rod.Fetcher for pages that need it.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the body of url. Transport failures and non-200 statuses
// are reported as EUPSTREAM.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", golazo.Errorf(golazo.EINVALID, "bad url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", golazo.Errorf(golazo.EUPSTREAM, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", golazo.Errorf(golazo.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", golazo.Errorf(golazo.EUPSTREAM, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}
