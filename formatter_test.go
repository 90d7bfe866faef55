package pagekit_test

import (
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/stretchr/testify/assert"
)

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("formats title, provenance and section outline", func(t *testing.T) {
		t.Parallel()

		page := &pagekit.Page{
			ID:     "page-1",
			Title:  "Acme",
			Status: pagekit.StatusDraft,
			Meta: pagekit.Meta{
				SourceURL:  "https://example.com",
				Confidence: pagekit.ConfidenceLow,
				Notes:      []string{"画像は差し替えてください"},
			},
			Sections: []pagekit.Section{
				pagekit.NewSection("hero-1", &pagekit.HeroData{Heading: "Hello"}),
			},
		}

		result := pagekit.FormatPage(page)

		expected := "## Page: Acme\n" +
			"id: page-1\nstatus: draft\nconfidence: low\n" +
			"source: https://example.com\n" +
			"note: 画像は差し替えてください\n" +
			"1. [hero] ヒーロー"
		assert.Equal(t, expected, result)
	})

	t.Run("uses source URL when title is empty", func(t *testing.T) {
		t.Parallel()

		page := &pagekit.Page{ID: "p", Meta: pagekit.Meta{SourceURL: "https://example.com/lp"}}

		assert.Contains(t, pagekit.FormatPage(page), "## Page: https://example.com/lp")
	})

	t.Run("marks hidden sections", func(t *testing.T) {
		t.Parallel()

		section := pagekit.NewSection("faq-1", &pagekit.FAQData{})
		section.Visible = false
		page := &pagekit.Page{ID: "p", Title: "T", Sections: []pagekit.Section{section}}

		assert.Contains(t, pagekit.FormatPage(page), "1. [faq] よくある質問 (hidden)")
	})
}

func TestFormatPages(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no pages", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pagekit.FormatPages(nil))
	})

	t.Run("separates pages with blank line", func(t *testing.T) {
		t.Parallel()

		pages := []*pagekit.Page{
			{ID: "a", Title: "First"},
			{ID: "b", Title: "Second"},
		}

		result := pagekit.FormatPages(pages)

		assert.Contains(t, result, "## Page: First")
		assert.Contains(t, result, "\n\n## Page: Second")
	})
}
