package pagekit

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Used to produce a plain-text preview of a generated page.
	Convert(html string) (string, error)
}
