package mock

import (
	"context"

	"github.com/fwojciec/pagekit"
)

// Compile-time interface verification.
var (
	_ pagekit.SampleResolver = (*SampleResolver)(nil)
	_ pagekit.Importer       = (*Importer)(nil)
)

// SampleResolver is a mock implementation of pagekit.SampleResolver.
type SampleResolver struct {
	ResolveFn  func(url string) *pagekit.Page
	FallbackFn func() *pagekit.Page
}

func (r *SampleResolver) Resolve(url string) *pagekit.Page {
	return r.ResolveFn(url)
}

func (r *SampleResolver) Fallback() *pagekit.Page {
	return r.FallbackFn()
}

// Importer is a mock implementation of pagekit.Importer.
type Importer struct {
	ImportFn func(ctx context.Context, url string) *pagekit.Page
}

func (i *Importer) Import(ctx context.Context, url string) *pagekit.Page {
	return i.ImportFn(ctx, url)
}
