package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func footerFrom(t *testing.T, html string) *pagekit.FooterData {
	t.Helper()
	doc, err := goquery.Parse(html)
	require.NoError(t, err)
	section := goquery.ExtractFooter(doc, goquery.DefaultLimits())
	if section == nil {
		return nil
	}
	return section.Data.(*pagekit.FooterData)
}

func TestExtractFooter(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without footer", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, footerFrom(t, `<div class="company">Acme</div><a href="/">Home</a>`))
	})

	t.Run("accepts contentinfo landmark", func(t *testing.T) {
		t.Parallel()

		footer := footerFrom(t, `<div role="contentinfo"><strong>Acme</strong><a href="/a">About</a></div>`)

		require.NotNil(t, footer)
		assert.Equal(t, "Acme", footer.CompanyName)
		assert.Equal(t, []pagekit.FooterLink{{Label: "About", URL: "/a"}}, footer.Links)
	})

	t.Run("prefers company element over strong and paragraph", func(t *testing.T) {
		t.Parallel()

		footer := footerFrom(t, `<footer>
			<p>Copyright 2026</p>
			<strong>Bold text</strong>
			<span class="site-logo">Acme Corp</span>
		</footer>`)

		require.NotNil(t, footer)
		assert.Equal(t, "Acme Corp", footer.CompanyName)
	})

	t.Run("uses placeholder company and default link when empty", func(t *testing.T) {
		t.Parallel()

		footer := footerFrom(t, `<footer></footer>`)

		require.NotNil(t, footer)
		assert.Equal(t, goquery.CompanyNamePlaceholder, footer.CompanyName)
		assert.Equal(t, []pagekit.FooterLink{pagekit.DefaultContactLink()}, footer.Links)
	})

	t.Run("skips noisy labels and defaults missing href", func(t *testing.T) {
		t.Parallel()

		footer := footerFrom(t, `<footer>
			<a href="/long">`+strings.Repeat("x", 31)+`</a>
			<a href="/empty"> </a>
			<a>Sitemap</a>
		</footer>`)

		require.NotNil(t, footer)
		assert.Equal(t, []pagekit.FooterLink{{Label: "Sitemap", URL: "#"}}, footer.Links)
	})

	t.Run("caps links at five", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<footer>")
		for i := 1; i <= 8; i++ {
			fmt.Fprintf(&b, `<a href="/l%d">Link %d</a>`, i, i)
		}
		b.WriteString("</footer>")

		footer := footerFrom(t, b.String())

		require.NotNil(t, footer)
		require.Len(t, footer.Links, 5)
		assert.Equal(t, "/l5", footer.Links[4].URL)
	})

	t.Run("rejected labels do not use up the cap", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<footer>")
		for i := 1; i <= 4; i++ {
			fmt.Fprintf(&b, `<a href="/noise%d">%s</a>`, i, strings.Repeat("x", 31))
		}
		for i := 1; i <= 6; i++ {
			fmt.Fprintf(&b, `<a href="/l%d">Link %d</a>`, i, i)
		}
		b.WriteString("</footer>")

		footer := footerFrom(t, b.String())

		require.NotNil(t, footer)
		require.Len(t, footer.Links, 5)
		assert.Equal(t, "/l1", footer.Links[0].URL)
		assert.Equal(t, "/l5", footer.Links[4].URL)
	})

	t.Run("truncates company name", func(t *testing.T) {
		t.Parallel()

		footer := footerFrom(t, `<footer><p>`+strings.Repeat("社", 60)+`</p></footer>`)

		require.NotNil(t, footer)
		assert.Equal(t, strings.Repeat("社", 50), footer.CompanyName)
	})
}
