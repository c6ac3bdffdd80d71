package provinv

import "context"

// Page holds the raw content of one fetched profile page.
type Page struct {
	URL  string
	HTML string

	// LastModified is the last-modified signal from response
	// metadata, verbatim. Empty when the server sent none.
	LastModified string
}

// Fetcher retrieves provider profile pages.
// Implementations apply a bounded per-request timeout and do not
// retry; retry policy belongs to the caller.
type Fetcher interface {
	// Fetch retrieves the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageCache stores fetched pages between runs so re-runs avoid
// re-fetching from the origin.
type PageCache interface {
	// GetPage returns the cached page for url.
	// Returns ENOTFOUND if the URL has not been cached.
	GetPage(ctx context.Context, url string) (*Page, error)

	// PutPage stores a fetched page, replacing any previous entry
	// for the same URL.
	PutPage(ctx context.Context, page *Page) error
}
