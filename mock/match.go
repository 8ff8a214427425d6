package mock

import (
	"context"

	"github.com/fwojciec/golazo"
)

var _ golazo.MatchService = (*MatchService)(nil)

// MatchService is a mock implementation of golazo.MatchService.
type MatchService struct {
	FindMatchesFn func(ctx context.Context, day string) ([]*golazo.Match, error)
}

func (s *MatchService) FindMatches(ctx context.Context, day string) ([]*golazo.Match, error) {
	return s.FindMatchesFn(ctx, day)
}
