package pagekit

// PageExtractor builds a Page from raw HTML using heuristics.
type PageExtractor interface {
	// Extract parses rawHTML and returns a well-formed draft Page whose
	// sections are the patterns that could be detected. A missing pattern
	// is not an error; it only lowers the page's confidence.
	// Returns EINVALID when the markup cannot be parsed at all.
	Extract(rawHTML string, sourceURL string) (*Page, error)
}

// Metadata holds page-level information read from a document's metadata.
type Metadata struct {
	Title       string
	Description string
	SiteName    string
	Language    string
}

// MetadataReader reads page-level metadata (meta tags, JSON+LD, etc.)
// from raw HTML.
type MetadataReader interface {
	ReadMetadata(rawHTML string, sourceURL string) (*Metadata, error)
}

// LanguageDetector guesses the language of visible text.
type LanguageDetector interface {
	// DetectLanguage returns an ISO 639-1 code, or false when the text is
	// not reliably recognised.
	DetectLanguage(text string) (string, bool)
}
