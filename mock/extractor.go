package mock

import "github.com/fwojciec/pagekit"

// Compile-time interface verification.
var (
	_ pagekit.PageExtractor    = (*PageExtractor)(nil)
	_ pagekit.MetadataReader   = (*MetadataReader)(nil)
	_ pagekit.LanguageDetector = (*LanguageDetector)(nil)
)

// PageExtractor is a mock implementation of pagekit.PageExtractor.
type PageExtractor struct {
	ExtractFn func(rawHTML string, sourceURL string) (*pagekit.Page, error)
}

func (e *PageExtractor) Extract(rawHTML string, sourceURL string) (*pagekit.Page, error) {
	return e.ExtractFn(rawHTML, sourceURL)
}

// MetadataReader is a mock implementation of pagekit.MetadataReader.
type MetadataReader struct {
	ReadMetadataFn func(rawHTML string, sourceURL string) (*pagekit.Metadata, error)
}

func (r *MetadataReader) ReadMetadata(rawHTML string, sourceURL string) (*pagekit.Metadata, error) {
	return r.ReadMetadataFn(rawHTML, sourceURL)
}

// LanguageDetector is a mock implementation of pagekit.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (string, bool)
}

func (d *LanguageDetector) DetectLanguage(text string) (string, bool) {
	return d.DetectLanguageFn(text)
}
