package htmltomarkdown_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/htmltomarkdown"
	"github.com/fwojciec/pagekit/mock"
	"github.com/fwojciec/pagekit/sample"
	"github.com/fwojciec/pagekit/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts hero heading", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<section class="hero"><h1>Launch faster</h1><p>Ship today.</p></section>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Launch faster")
		assert.Contains(t, md, "Ship today.")
	})

	t.Run("converts call to action links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p><a class="btn" href="https://example.com/signup">Sign up</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Sign up](https://example.com/signup)")
	})

	t.Run("converts footer link lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<footer><ul><li><a href="/about">About</a></li><li><a href="#contact">Contact</a></li></ul></footer>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- [About](/about)")
		assert.Contains(t, md, "- [Contact](#contact)")
	})

	t.Run("converts testimonial quotes", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<blockquote><p>Great product.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> Great product.")
	})

	t.Run("converts feature tables", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<table>
<thead><tr><th>Plan</th><th>Price</th></tr></thead>
<tbody><tr><td>Basic</td><td>Free</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Plan")
		assert.Contains(t, md, "Basic")
		assert.Contains(t, md, "|")
	})

	t.Run("drops the document head", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<!DOCTYPE html><html><head><title>Head title</title><style>body{color:red}</style></head><body><h2>Visible</h2></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Visible")
		assert.NotContains(t, md, "Head title")
		assert.NotContains(t, md, "color:red")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, pagekit.EINVALID, pagekit.ErrorCode(err))
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("previews a generated sample page", func(t *testing.T) {
		t.Parallel()

		page := sample.Service()
		md, err := htmltomarkdown.Preview(template.NewGenerator(), htmltomarkdown.NewConverter(), page)

		require.NoError(t, err)
		assert.Contains(t, md, "# "+page.Hero().Heading)
		assert.Contains(t, md, "## "+pagekit.DefaultName(pagekit.SectionFAQ))
	})

	t.Run("omits hidden sections", func(t *testing.T) {
		t.Parallel()

		page := sample.Service()
		page.Section(pagekit.SectionFAQ).Visible = false
		md, err := htmltomarkdown.Preview(template.NewGenerator(), htmltomarkdown.NewConverter(), page)

		require.NoError(t, err)
		assert.NotContains(t, md, "## "+pagekit.DefaultName(pagekit.SectionFAQ))
	})

	t.Run("returns generator errors", func(t *testing.T) {
		t.Parallel()

		gen := &mock.Generator{
			GenerateFn: func(*pagekit.Page) (string, error) {
				return "", errors.New("boom")
			},
		}
		_, err := htmltomarkdown.Preview(gen, htmltomarkdown.NewConverter(), sample.Service())

		require.EqualError(t, err, "boom")
	})
}
