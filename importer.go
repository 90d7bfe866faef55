package pagekit

import "context"

// SampleResolver maps a source URL to a hand-authored sample page.
type SampleResolver interface {
	// Resolve returns a fresh copy of the sample matching url,
	// or nil when no sample matches.
	Resolve(url string) *Page

	// Fallback returns a fresh copy of the sample used when an import fails.
	Fallback() *Page
}

// Importer turns a URL into an editable Page.
// Implementations never fail: a failed import degrades to a low-confidence
// template page whose notes explain what happened.
type Importer interface {
	Import(ctx context.Context, url string) *Page
}
