package crawl

import (
	"context"

	"github.com/fwojciec/golazo"
)

// FindFicha fetches and parses the boxscore page of a match.
func (s *Scraper) FindFicha(ctx context.Context, matchID string) (*golazo.Ficha, error) {
	if matchID == "" {
		return nil, golazo.Errorf(golazo.EINVALID, "match id required")
	}
	doc, _, err := s.fetchDocument(ctx, joinURL(s.Parser.BaseURL(), "ficha="+matchID))
	if err != nil {
		return nil, err
	}
	return s.Parser.ExtractFicha(doc)
}
