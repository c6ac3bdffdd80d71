// Package http provides the HTTP-based implementation of
// provinv.Fetcher for retrieving provider profile pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/provinv"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Hospital profile pages are occasionally slow to respond.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements provinv.Fetcher at compile time.
var _ provinv.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves profile pages over plain HTTP. It does not
// execute JavaScript; profiles rendered client-side are out of scope.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url. The Last-Modified response header,
// when present, is carried on the returned Page verbatim. All
// failures are reported as EFETCH; the fetcher never retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*provinv.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, provinv.Errorf(provinv.EFETCH, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, provinv.Errorf(provinv.EFETCH, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, provinv.Errorf(provinv.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provinv.Errorf(provinv.EFETCH, "read body of %s: %v", url, err)
	}

	return &provinv.Page{
		URL:          url,
		HTML:         string(body),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op
// since http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
