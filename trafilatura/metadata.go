// Package trafilatura reads page metadata with go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagekit"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure MetadataReader implements pagekit.MetadataReader at compile time.
var _ pagekit.MetadataReader = (*MetadataReader)(nil)

// MetadataReader wraps go-trafilatura to read page-level metadata.
// Trafilatura also inspects JSON-LD and Dublin Core, so it finds
// descriptions that plain meta tags miss.
type MetadataReader struct{}

// NewMetadataReader creates a new MetadataReader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// ReadMetadata processes rawHTML and returns its metadata.
func (r *MetadataReader) ReadMetadata(rawHTML string, sourceURL string) (*pagekit.Metadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagekit.Errorf(pagekit.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(sourceURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pagekit.Metadata{
		Title:       pagekit.Clean(result.Metadata.Title),
		Description: pagekit.Clean(result.Metadata.Description),
		SiteName:    pagekit.Clean(result.Metadata.Sitename),
		Language:    strings.TrimSpace(result.Metadata.Language),
	}, nil
}
