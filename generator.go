package pagekit

import "context"

// Generator regenerates a standalone HTML document from a Page.
type Generator interface {
	// Generate renders the visible sections of page, in order, into a
	// complete HTML document.
	Generate(page *Page) (string, error)

	// Stylesheet returns the CSS referenced by every generated document.
	// It does not depend on page content.
	Stylesheet() string
}

// SiteWriter publishes a generated page and its stylesheet.
type SiteWriter interface {
	Write(ctx context.Context, page *Page, html, css string) error
}
