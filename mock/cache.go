package mock

import (
	"context"

	"github.com/fwojciec/provinv"
)

var _ provinv.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of provinv.PageCache.
type PageCache struct {
	GetPageFn func(ctx context.Context, url string) (*provinv.Page, error)
	PutPageFn func(ctx context.Context, page *provinv.Page) error
}

func (c *PageCache) GetPage(ctx context.Context, url string) (*provinv.Page, error) {
	return c.GetPageFn(ctx, url)
}

func (c *PageCache) PutPage(ctx context.Context, page *provinv.Page) error {
	return c.PutPageFn(ctx, page)
}
