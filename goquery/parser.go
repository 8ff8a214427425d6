// Package goquery implements the extraction pipeline that turns scraped
// sports pages into golazo records. Every function here works on an already
// parsed document; fetching belongs to the crawl package.
package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/golazo"
)

// Parser extracts records from pages of a single source site.
// Parser holds no per-document state and is safe for concurrent use.
type Parser struct {
	baseURL string
	logger  *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for skipped rows and malformed entries.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser that resolves relative image URLs against baseURL.
func NewParser(baseURL string, opts ...Option) *Parser {
	p := &Parser{
		baseURL: baseURL,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BaseURL returns the site root the parser resolves against.
func (p *Parser) BaseURL() string {
	return p.baseURL
}

// ParseHTML parses raw HTML into a document.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, golazo.Errorf(golazo.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// absolute prefixes a site-relative path with the base URL.
// Returns nil for an empty path.
func (p *Parser) absolute(src string) *string {
	if src == "" {
		return nil
	}
	u := strings.TrimSuffix(p.baseURL, "/") + "/" + strings.TrimPrefix(src, "/")
	return &u
}
