package crawl

import (
	"context"

	"github.com/fwojciec/golazo"
)

// FindMatches fetches the results page for day and extracts its matches.
func (s *Scraper) FindMatches(ctx context.Context, day string) ([]*golazo.Match, error) {
	doc, _, err := s.fetchDocument(ctx, joinURL(s.Parser.BaseURL(), day))
	if err != nil {
		return nil, err
	}
	return s.Parser.ExtractMatches(doc), nil
}
