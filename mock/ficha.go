package mock

import (
	"context"

	"github.com/fwojciec/golazo"
)

var _ golazo.FichaService = (*FichaService)(nil)

// FichaService is a mock implementation of golazo.FichaService.
type FichaService struct {
	FindFichaFn func(ctx context.Context, matchID string) (*golazo.Ficha, error)
}

func (s *FichaService) FindFicha(ctx context.Context, matchID string) (*golazo.Ficha, error) {
	return s.FindFichaFn(ctx, matchID)
}
