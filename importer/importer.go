// Package importer turns source URLs into editable pages.
// It coordinates sample resolution, fetching and extraction, and degrades
// every failure into a template page instead of returning an error.
package importer

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/sample"
	"golang.org/x/sync/errgroup"
)

// Notes attached to a page that replaced a failed import.
const (
	NoteImportFailed    = "インポートに失敗しました"
	NoteTemplateApplied = "テンプレートで代替しました"
)

// DefaultConcurrency is the number of imports ImportAll runs at once when
// Concurrency is unset.
const DefaultConcurrency = 4

// Ensure Importer implements pagekit.Importer at compile time.
var _ pagekit.Importer = (*Importer)(nil)

// Source records which path produced an imported page.
type Source string

// Import sources.
const (
	SourceSample   Source = "sample"
	SourceExtract  Source = "extract"
	SourceFallback Source = "fallback"
)

// Importer resolves samples first, then fetches and extracts.
type Importer struct {
	Samples     pagekit.SampleResolver
	Fetcher     pagekit.Fetcher
	Extractor   pagekit.PageExtractor
	Concurrency int
}

// Import returns a page for url. It never fails and never returns nil:
// sample URLs yield a high-confidence template copy, other URLs are fetched
// and extracted, and any failure along the way yields the fallback template
// with low confidence and notes explaining what happened.
func (i *Importer) Import(ctx context.Context, url string) *pagekit.Page {
	page, _ := i.ImportWithSource(ctx, url)
	return page
}

// ImportWithSource is like Import but also reports which path produced the
// page.
func (i *Importer) ImportWithSource(ctx context.Context, url string) (*pagekit.Page, Source) {
	if page := i.resolve(url); page != nil {
		return page, SourceSample
	}

	page, err := i.fetchAndExtract(ctx, url)
	if err != nil {
		return i.fallback(url, err), SourceFallback
	}
	return page, SourceExtract
}

// ImportHTML is like Import but uses caller-supplied markup instead of
// fetching url.
func (i *Importer) ImportHTML(ctx context.Context, rawHTML, url string) *pagekit.Page {
	if page := i.resolve(url); page != nil {
		return page
	}
	if err := ctx.Err(); err != nil {
		return i.fallback(url, err)
	}

	page, err := i.extract(rawHTML, url)
	if err != nil {
		return i.fallback(url, err)
	}
	return page
}

// Progress reports one finished import during ImportAll.
type Progress struct {
	Completed int
	Total     int
	URL       string
	Source    Source
}

// ProgressFunc is a callback for reporting ImportAll progress.
type ProgressFunc func(p Progress)

// ImportAll imports urls concurrently, at most Concurrency at a time.
// Results are returned in input order. The progress callback, if provided,
// is invoked from worker goroutines as each import finishes.
func (i *Importer) ImportAll(ctx context.Context, urls []string, progress ProgressFunc) []*pagekit.Page {
	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*pagekit.Page, len(urls))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for n, url := range urls {
		g.Go(func() error {
			page, source := i.ImportWithSource(gctx, url)
			pages[n] = page
			if progress != nil {
				progress(Progress{
					Completed: int(completed.Add(1)),
					Total:     len(urls),
					URL:       url,
					Source:    source,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	return pages
}

func (i *Importer) resolve(url string) *pagekit.Page {
	if i.Samples == nil {
		return nil
	}
	page := i.Samples.Resolve(url)
	if page != nil {
		page.Meta.Confidence = pagekit.ConfidenceHigh
	}
	return page
}

func (i *Importer) fetchAndExtract(ctx context.Context, url string) (*pagekit.Page, error) {
	if strings.TrimSpace(url) == "" {
		return nil, pagekit.Errorf(pagekit.EINVALID, "url required")
	}
	if i.Fetcher == nil {
		return nil, pagekit.Errorf(pagekit.EINTERNAL, "no fetcher configured")
	}

	html, err := i.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return i.extract(html, url)
}

// extract runs the extractor, converting a panic into an error so a
// misbehaving heuristic cannot take the caller down.
func (i *Importer) extract(rawHTML, url string) (page *pagekit.Page, err error) {
	if i.Extractor == nil {
		return nil, pagekit.Errorf(pagekit.EINTERNAL, "no extractor configured")
	}

	defer func() {
		if r := recover(); r != nil {
			page, err = nil, pagekit.Errorf(pagekit.EINTERNAL, "extractor panic: %v", r)
		}
	}()

	page, err = i.Extractor.Extract(rawHTML, url)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, pagekit.Errorf(pagekit.EINTERNAL, "extractor returned no page")
	}
	return page, nil
}

// fallback returns the fallback template stamped with url and the reason
// the import failed. Without a resolver, or when it has no fallback, the
// built-in service sample is used so the page is always valid.
func (i *Importer) fallback(url string, cause error) *pagekit.Page {
	var page *pagekit.Page
	if i.Samples != nil {
		page = i.Samples.Fallback()
	}
	if page == nil {
		page = sample.NewResolver().Fallback()
	}

	page.Meta.SourceURL = url
	page.Meta.Confidence = pagekit.ConfidenceLow
	page.Meta.Notes = []string{NoteImportFailed, NoteTemplateApplied}
	if msg := errorText(cause); msg != "" {
		page.Meta.Notes = append(page.Meta.Notes, msg)
	}
	return page
}

// errorText returns the message of a bare application error and the full
// text of anything else, so wrapped infrastructure failures keep their
// context.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*pagekit.Error); ok {
		return e.Message
	}
	return err.Error()
}
