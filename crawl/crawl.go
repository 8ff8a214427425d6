// Package crawl fetches pages from the results and stream sites and runs
// them through the extraction pipeline. Scraper implements every golazo
// service interface.
package crawl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
	gq "github.com/fwojciec/golazo/goquery"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of pages fetched at once by a
// single request.
const DefaultConcurrency = 4

var (
	_ golazo.MatchService     = (*Scraper)(nil)
	_ golazo.StandingsService = (*Scraper)(nil)
	_ golazo.TeamService      = (*Scraper)(nil)
	_ golazo.FichaService     = (*Scraper)(nil)
	_ golazo.StreamService    = (*Scraper)(nil)
)

// Scraper fetches pages and extracts records from them.
type Scraper struct {
	Fetcher   golazo.Fetcher
	Parser    *gq.Parser
	Extractor golazo.Extractor // optional, used for page excerpts
	StreamURL string
	// Concurrency bounds fan-out fetches. Zero means DefaultConcurrency.
	Concurrency int
	Logger      *slog.Logger
}

// fetchDocument fetches url and parses the body.
// Fetch failures are reported as EUPSTREAM.
func (s *Scraper) fetchDocument(ctx context.Context, url string) (*goquery.Document, string, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, "", golazo.Errorf(golazo.EUPSTREAM, "fetch %s: %v", url, err)
	}
	doc, err := gq.ParseHTML(html)
	if err != nil {
		return nil, "", err
	}
	return doc, html, nil
}

func (s *Scraper) concurrency() int {
	if s.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return s.Concurrency
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// fanOut calls fn for every index in [0, n) with bounded concurrency.
// fn reports failures through its own result slot, so one failure never
// stops the others.
func (s *Scraper) fanOut(n int, fn func(i int)) {
	var g errgroup.Group
	g.SetLimit(s.concurrency())
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// joinURL appends path to base with exactly one slash between them.
func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
