package crawl

import (
	"context"

	"github.com/fwojciec/golazo"
)

// FindStandings fetches a league page and extracts its table. Every row
// with a club key is enriched with that club's details. Enrichment runs
// with bounded concurrency and a failed lookup leaves only its own row
// without details.
func (s *Scraper) FindStandings(ctx context.Context, league string) ([]*golazo.StandingsRow, error) {
	doc, _, err := s.fetchDocument(ctx, joinURL(s.Parser.BaseURL(), league))
	if err != nil {
		return nil, err
	}
	rows, err := s.Parser.ExtractStandings(doc)
	if err != nil {
		return nil, err
	}

	s.fanOut(len(rows), func(i int) {
		row := rows[i]
		if row.Name == nil || *row.Name == "" {
			return
		}
		details, err := s.FindTeamDetails(ctx, *row.Name)
		if err != nil {
			s.logger().Warn("team details unavailable", "club", *row.Name, "err", err)
			return
		}
		row.TeamDetails = details
	})
	return rows, nil
}

// FindTeamDetails fetches and extracts the profile page of a club.
func (s *Scraper) FindTeamDetails(ctx context.Context, name string) (*golazo.TeamDetails, error) {
	if name == "" {
		return nil, golazo.Errorf(golazo.EINVALID, "club name required")
	}
	doc, _, err := s.fetchDocument(ctx, joinURL(s.Parser.BaseURL(), "club="+name))
	if err != nil {
		return nil, err
	}
	return s.Parser.ExtractTeamDetails(doc), nil
}
