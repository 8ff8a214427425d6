package mock

import (
	"context"

	"github.com/fwojciec/golazo"
)

var (
	_ golazo.StandingsService = (*StandingsService)(nil)
	_ golazo.TeamService      = (*TeamService)(nil)
)

// StandingsService is a mock implementation of golazo.StandingsService.
type StandingsService struct {
	FindStandingsFn func(ctx context.Context, league string) ([]*golazo.StandingsRow, error)
}

func (s *StandingsService) FindStandings(ctx context.Context, league string) ([]*golazo.StandingsRow, error) {
	return s.FindStandingsFn(ctx, league)
}

// TeamService is a mock implementation of golazo.TeamService.
type TeamService struct {
	FindTeamDetailsFn func(ctx context.Context, name string) (*golazo.TeamDetails, error)
}

func (s *TeamService) FindTeamDetails(ctx context.Context, name string) (*golazo.TeamDetails, error) {
	return s.FindTeamDetailsFn(ctx, name)
}
