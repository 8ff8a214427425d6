package mock

import "github.com/fwojciec/golazo"

var _ golazo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of golazo.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*golazo.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*golazo.ExtractResult, error) {
	return e.ExtractFn(html)
}
