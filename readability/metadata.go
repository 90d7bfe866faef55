// Package readability reads page metadata with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagekit"
	"github.com/go-shiori/go-readability"
)

// Ensure MetadataReader implements pagekit.MetadataReader at compile time.
var _ pagekit.MetadataReader = (*MetadataReader)(nil)

// MetadataReader wraps go-readability to read page-level metadata. The
// excerpt doubles as a description when the page has no meta description.
type MetadataReader struct{}

// NewMetadataReader creates a new MetadataReader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// ReadMetadata parses rawHTML and returns its title, excerpt, site name
// and declared language.
func (r *MetadataReader) ReadMetadata(rawHTML string, sourceURL string) (*pagekit.Metadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagekit.Errorf(pagekit.EINVALID, "empty HTML input")
	}

	var pageURL *url.URL
	if u, err := url.Parse(sourceURL); err == nil && u.IsAbs() {
		pageURL = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	return &pagekit.Metadata{
		Title:       pagekit.Clean(article.Title),
		Description: pagekit.Clean(article.Excerpt),
		SiteName:    pagekit.Clean(article.SiteName),
		Language:    strings.TrimSpace(article.Language),
	}, nil
}
