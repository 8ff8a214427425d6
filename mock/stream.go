package mock

import (
	"context"

	"github.com/fwojciec/golazo"
)

var _ golazo.StreamService = (*StreamService)(nil)

// StreamService is a mock implementation of golazo.StreamService.
type StreamService struct {
	FindStreamCardsFn  func(ctx context.Context) ([]*golazo.StreamCard, error)
	FindVideoFramesFn  func(ctx context.Context, paths []string) ([]*golazo.VideoFrame, error)
	FindPageExcerptsFn func(ctx context.Context, paths []string) ([]*golazo.PageExcerpt, error)
}

func (s *StreamService) FindStreamCards(ctx context.Context) ([]*golazo.StreamCard, error) {
	return s.FindStreamCardsFn(ctx)
}

func (s *StreamService) FindVideoFrames(ctx context.Context, paths []string) ([]*golazo.VideoFrame, error) {
	return s.FindVideoFramesFn(ctx, paths)
}

func (s *StreamService) FindPageExcerpts(ctx context.Context, paths []string) ([]*golazo.PageExcerpt, error) {
	return s.FindPageExcerptsFn(ctx, paths)
}
