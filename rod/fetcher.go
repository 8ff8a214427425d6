// Package rod implements golazo.Fetcher with a headless Chrome browser for
// stream pages that build their player with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/golazo"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultFetchTimeout bounds a single page render.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxPages is the number of pages rendered before the browser
	// is replaced. Chrome's memory baseline grows with every page and never
	// returns to its starting level.
	DefaultMaxPages = 75
)

var _ golazo.Fetcher = (*Fetcher)(nil)

// Fetcher renders pages in a headless browser and returns the resulting HTML.
// Fetcher is safe for concurrent use.
type Fetcher struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    atomic.Int64
	closed   atomic.Bool

	maxPages     int64
	timeout      time.Duration
	waitSelector string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets how many pages are rendered before the browser is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithFetchTimeout bounds each render. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithWaitSelector makes Fetch wait, after load, until an element matching
// selector appears or the timeout expires. Stream pages inject their player
// iframe after the load event.
func WithWaitSelector(selector string) Option {
	return func(f *Fetcher) {
		f.waitSelector = selector
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		maxPages: DefaultMaxPages,
		timeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to url and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.closed.Load() {
		return "", golazo.Errorf(golazo.EINTERNAL, "fetcher closed")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.currentBrowser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", golazo.Errorf(golazo.EUPSTREAM, "open page: %v", err)
	}
	defer page.Close()
	defer f.pages.Add(1)

	page = page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return "", wrapContext(ctx, "navigate %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", wrapContext(ctx, "load %s: %v", url, err)
	}
	if f.waitSelector != "" {
		// A page without the element is still returned; extraction decides.
		_, _ = page.Element(f.waitSelector)
		page = page.Context(context.WithoutCancel(ctx))
	}

	html, err := page.HTML()
	if err != nil {
		return "", wrapContext(ctx, "read %s: %v", url, err)
	}
	return html, nil
}

// Close shuts down the browser. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdown()
}

// LauncherPID returns the browser process id, or 0 after Close.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// wrapContext keeps context errors matchable with errors.Is and reports
// everything else as EUPSTREAM.
func wrapContext(ctx context.Context, format string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf(format+": %w", append(args, err)...)
	}
	return golazo.Errorf(golazo.EUPSTREAM, format, args...)
}

// currentBrowser returns the live browser, replacing it first once it has
// rendered maxPages pages.
func (f *Fetcher) currentBrowser() *rod.Browser {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pages.Load() >= f.maxPages {
		f.recycle()
	}
	return f.browser
}

func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return nil
}

// shutdown must be called with mu held.
func (f *Fetcher) shutdown() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycle swaps in a fresh browser, keeping the old one if the launch
// fails. Must be called with mu held.
func (f *Fetcher) recycle() {
	oldBrowser, oldLauncher := f.browser, f.launcher
	if err := f.launch(); err != nil {
		f.browser, f.launcher = oldBrowser, oldLauncher
		return
	}
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	f.pages.Store(0)
}
