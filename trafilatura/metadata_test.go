package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure MetadataReader implements pagekit.MetadataReader at compile time.
var _ pagekit.MetadataReader = (*trafilatura.MetadataReader)(nil)

func TestMetadataReader_ReadMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads title and description from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Acme Cloud</title>
<meta property="og:title" content="Acme Cloud">
<meta name="description" content="Cloud tools for small teams.">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Ship faster</h1>
<p>Acme Cloud brings deploys, logs and metrics together in one place for your whole team.</p>
<p>Start free and upgrade when you need more capacity or advanced collaboration features.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		md, err := trafilatura.NewMetadataReader().ReadMetadata(html, "https://acme.example")

		require.NoError(t, err)
		assert.NotEmpty(t, md.Title)
		assert.Equal(t, "Cloud tools for small teams.", md.Description)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewMetadataReader().ReadMetadata("", "https://acme.example")

		require.Error(t, err)
		assert.Equal(t, pagekit.EINVALID, pagekit.ErrorCode(err))
	})
}
