package mock

import (
	"context"

	"github.com/fwojciec/pagekit"
)

// Compile-time interface verification.
var (
	_ pagekit.Generator  = (*Generator)(nil)
	_ pagekit.SiteWriter = (*SiteWriter)(nil)
)

// Generator is a mock implementation of pagekit.Generator.
type Generator struct {
	GenerateFn   func(page *pagekit.Page) (string, error)
	StylesheetFn func() string
}

func (g *Generator) Generate(page *pagekit.Page) (string, error) {
	return g.GenerateFn(page)
}

func (g *Generator) Stylesheet() string {
	return g.StylesheetFn()
}

// SiteWriter is a mock implementation of pagekit.SiteWriter.
type SiteWriter struct {
	WriteFn func(ctx context.Context, page *pagekit.Page, html, css string) error
}

func (w *SiteWriter) Write(ctx context.Context, page *pagekit.Page, html, css string) error {
	return w.WriteFn(ctx, page, html, css)
}
