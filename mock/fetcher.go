// Package mock provides function-field fakes for the provinv
// interfaces, used in unit tests.
package mock

import (
	"context"

	"github.com/fwojciec/provinv"
)

var _ provinv.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of provinv.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*provinv.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*provinv.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
