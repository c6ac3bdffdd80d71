package mock

import "github.com/fwojciec/provinv"

var _ provinv.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of provinv.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*provinv.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*provinv.ExtractResult, error) {
	return e.ExtractFn(html)
}
