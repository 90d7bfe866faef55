package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heroFrom(t *testing.T, html string) *pagekit.HeroData {
	t.Helper()
	doc, err := goquery.Parse(html)
	require.NoError(t, err)
	section := goquery.ExtractHero(doc)
	if section == nil {
		return nil
	}
	return section.Data.(*pagekit.HeroData)
}

func TestExtractHero(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without h1", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, heroFrom(t, `<h2>Subtitle</h2><a class="btn" href="/go">Go</a>`))
	})

	t.Run("uses first h1 in document order", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1> First
			heading </h1><h1>Second</h1>`)

		require.NotNil(t, hero)
		assert.Equal(t, "First heading", hero.Heading)
	})

	t.Run("takes subheading from paragraph right after h1", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1>Title</h1><p>Lead text</p><h2>Other</h2>`)

		require.NotNil(t, hero)
		assert.Equal(t, "Lead text", hero.Subheading)
	})

	t.Run("falls back to first h2 when no paragraph follows", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1>Title</h1><div>wrapper</div><p>Later</p><h2>Fallback sub</h2>`)

		require.NotNil(t, hero)
		assert.Equal(t, "Fallback sub", hero.Subheading)
	})

	t.Run("prefers button-styled element for call to action", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1>Title</h1>
			<a href="/contact">Contact us</a>
			<a class="cta-large" href="/trial">Try it</a>`)

		require.NotNil(t, hero)
		assert.Equal(t, "Try it", hero.CTAText)
		assert.Equal(t, "/trial", hero.CTALink)
	})

	t.Run("uses contact or entry link when no button exists", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1>Title</h1>
			<a href="/about">About</a>
			<a href="/recruit/ENTRY">Apply now</a>`)

		require.NotNil(t, hero)
		assert.Equal(t, "Apply now", hero.CTAText)
		assert.Equal(t, "/recruit/ENTRY", hero.CTALink)
	})

	t.Run("button without target links to contact anchor", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1>Title</h1><button class="button">Sign up</button>`)

		require.NotNil(t, hero)
		assert.Equal(t, "Sign up", hero.CTAText)
		assert.Equal(t, goquery.DefaultCTALink, hero.CTALink)
	})

	t.Run("defaults call to action when nothing matches", func(t *testing.T) {
		t.Parallel()

		hero := heroFrom(t, `<h1>Title</h1><a href="/about">About</a>`)

		require.NotNil(t, hero)
		assert.Equal(t, goquery.DefaultCTAText, hero.CTAText)
		assert.Equal(t, goquery.DefaultCTALink, hero.CTALink)
	})
}
