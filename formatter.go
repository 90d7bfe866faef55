package pagekit

import (
	"fmt"
	"strings"
)

// FormatPage formats a one-page summary for display: title, provenance,
// notes, and the ordered section outline.
// Hidden sections are marked rather than omitted.
func FormatPage(page *Page) string {
	var b strings.Builder

	title := page.Title
	if title == "" {
		title = page.Meta.SourceURL
	}
	fmt.Fprintf(&b, "## Page: %s\n", title)
	fmt.Fprintf(&b, "id: %s\nstatus: %s\nconfidence: %s\n", page.ID, page.Status, page.Meta.Confidence)
	if page.Meta.SourceURL != "" {
		fmt.Fprintf(&b, "source: %s\n", page.Meta.SourceURL)
	}
	for _, note := range page.Meta.Notes {
		fmt.Fprintf(&b, "note: %s\n", note)
	}

	for i, s := range page.Sections {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, s.Type(), s.Name)
		if !s.Visible {
			b.WriteString(" (hidden)")
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// FormatPages formats multiple pages separated by blank lines.
func FormatPages(pages []*Page) string {
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, FormatPage(page))
	}

	return strings.Join(parts, "\n\n")
}
