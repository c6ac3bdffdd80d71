// Package pipeline drives the per-URL extraction flow: fetch the
// page, prepare its content, ask the model, parse the record. URLs
// are processed strictly in input order, one at a time, which bounds
// load on the origin site and the completion endpoint and keeps
// failure attribution per-URL unambiguous.
package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/provinv"
	"golang.org/x/time/rate"
)

// Pipeline coordinates the collaborators for one run. Accumulators
// and counters live in the Result owned by each Run call; the
// Pipeline value itself holds no per-run state.
type Pipeline struct {
	Fetcher   provinv.Fetcher
	Completer provinv.Completer

	// Extractor and Converter prepare page content before prompting.
	// Both are optional and best effort: a preparation failure falls
	// back to the raw HTML rather than failing the URL.
	Extractor provinv.Extractor
	Converter provinv.Converter

	// Cache, when set, is consulted before fetching and updated after.
	Cache provinv.PageCache

	// Limiter, when set, paces outbound fetches. Cache hits are not
	// rate limited.
	Limiter *rate.Limiter

	// MetaLastModified, when set, recovers a last-modified signal
	// from page markup when the response metadata carried none.
	MetaLastModified func(html string) string

	// MaxContentBytes caps the page content included in a prompt.
	// Zero selects provinv.DefaultMaxContentBytes.
	MaxContentBytes int
}

// ProgressEvent reports progress as the run advances.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Err       error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Result holds everything one run produced.
type Result struct {
	// Records for successfully processed URLs, in input order.
	Records []*provinv.ProviderRecord

	// Failures for URLs that produced no record, in input order.
	Failures []provinv.FailureEntry

	Stats provinv.RunStats
}

// AllFailed reports whether the run had URLs and none succeeded.
func (r *Result) AllFailed() bool {
	return r.Stats.Total > 0 && r.Stats.Succeeded == 0
}

// Run processes urls in order, one fully resolved before the next
// begins. A stage failure on one URL records a FailureEntry and moves
// on; it never affects the URLs that follow. Run returns a non-nil
// error only when the context is canceled mid-run; the partial Result
// is still returned.
func (p *Pipeline) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	result := &Result{
		Stats: provinv.RunStats{Total: len(urls)},
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rec, err := p.processURL(ctx, url)
		if err != nil && ctx.Err() != nil {
			return result, ctx.Err()
		}

		result.Stats.Processed++

		if err != nil {
			result.Stats.Failed++
			result.Failures = append(result.Failures, provinv.FailureEntry{
				URL:    url,
				Code:   provinv.ErrorCode(err),
				Reason: provinv.ErrorMessage(err),
			})
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: result.Stats.Processed,
					Total:     result.Stats.Total,
					URL:       url,
					Err:       err,
				})
			}
			continue
		}

		result.Stats.Succeeded++
		result.Records = append(result.Records, rec)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: result.Stats.Processed,
				Total:     result.Stats.Total,
				URL:       url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: result.Stats.Processed,
			Total:     result.Stats.Total,
		})
	}

	return result, nil
}

// processURL resolves a single URL through the fetch, prepare,
// complete and parse stages. Each stage is attempted exactly once;
// the first failure short-circuits the rest.
func (p *Pipeline) processURL(ctx context.Context, url string) (*provinv.ProviderRecord, error) {
	page, err := p.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	content := provinv.TruncateContent(p.prepare(page.HTML), p.maxContentBytes())
	prompt := provinv.ExtractionPrompt(content)

	raw, err := p.Completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	rec, err := provinv.ParseRecord(raw)
	if err != nil {
		return nil, err
	}

	// The source URL is the record's key, regardless of what the
	// model claimed.
	rec.ProfileURL = url
	rec.LastModified = p.lastModified(page, rec)

	return rec, nil
}

// fetch returns the page for url, consulting the cache first when one
// is configured. The cache is best effort on both sides: a read
// failure falls through to the fetcher and a failed write never fails
// the URL.
func (p *Pipeline) fetch(ctx context.Context, url string) (*provinv.Page, error) {
	if p.Cache != nil {
		if page, err := p.Cache.GetPage(ctx, url); err == nil {
			return page, nil
		}
	}

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	page, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if p.Cache != nil {
		_ = p.Cache.PutPage(ctx, page)
	}

	return page, nil
}

// prepare reduces raw page HTML to prompt content. The model
// tolerates noisy input far better than the run tolerates a lost URL,
// so any preparation failure falls back to the raw HTML.
func (p *Pipeline) prepare(html string) string {
	if p.Extractor == nil {
		return html
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil || extracted == nil || strings.TrimSpace(extracted.ContentHTML) == "" {
		return html
	}

	content := extracted.ContentHTML
	if p.Converter != nil {
		if md, err := p.Converter.Convert(content); err == nil && strings.TrimSpace(md) != "" {
			content = md
		}
	}

	return content
}

// lastModified resolves the record's Last Modified value: response
// metadata wins, then page markup, then whatever the model reported.
func (p *Pipeline) lastModified(page *provinv.Page, rec *provinv.ProviderRecord) string {
	if page.LastModified != "" {
		return page.LastModified
	}
	if p.MetaLastModified != nil {
		if v := p.MetaLastModified(page.HTML); v != "" {
			return v
		}
	}
	return rec.LastModified
}

func (p *Pipeline) maxContentBytes() int {
	if p.MaxContentBytes > 0 {
		return p.MaxContentBytes
	}
	return provinv.DefaultMaxContentBytes
}
