// Package fs publishes generated pages as static sites on the local
// filesystem.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagekit"
)

// File names inside a published site directory.
const (
	IndexFile      = "index.html"
	StylesheetFile = "style.css"
	PageFile       = "page.json"
)

// Ensure SiteWriter implements pagekit.SiteWriter at compile time.
var _ pagekit.SiteWriter = (*SiteWriter)(nil)

// SiteWriter writes a page's HTML, stylesheet and source document into a
// directory with atomic update semantics: files are staged in dir.tmp and
// renamed over dir only once all of them were written, so readers never see
// a half-written site.
type SiteWriter struct {
	dir string
}

// NewSiteWriter creates a SiteWriter that publishes into dir.
func NewSiteWriter(dir string) *SiteWriter {
	return &SiteWriter{dir: filepath.Clean(dir)}
}

func (w *SiteWriter) tempDir() string {
	return w.dir + ".tmp"
}

// Write publishes html and css for page, replacing any previous contents
// of the directory.
func (w *SiteWriter) Write(ctx context.Context, page *pagekit.Page, html, css string) error {
	if page == nil {
		return pagekit.Errorf(pagekit.EINVALID, "page required")
	}

	doc, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}

	if err := os.RemoveAll(w.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	files := []struct {
		name    string
		content []byte
	}{
		{IndexFile, []byte(html)},
		{StylesheetFile, []byte(css)},
		{PageFile, doc},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			_ = w.abort()
			return err
		}
		if err := os.WriteFile(filepath.Join(w.tempDir(), f.name), f.content, 0644); err != nil {
			_ = w.abort()
			return err
		}
	}

	return w.commit()
}

func (w *SiteWriter) commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(w.dir); err != nil {
		return err
	}

	return os.Rename(w.tempDir(), w.dir)
}

func (w *SiteWriter) abort() error {
	return os.RemoveAll(w.tempDir())
}
