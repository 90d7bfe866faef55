// Package htmltomarkdown renders plain-text previews of generated pages.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagekit"
)

// Ensure Converter implements pagekit.Converter at compile time.
var _ pagekit.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. The document head is
// dropped, so a generated page converts to its visible text only.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagekit.Errorf(pagekit.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", pagekit.Errorf(pagekit.EINTERNAL, "failed to convert HTML: %v", err)
	}
	return strings.TrimSpace(result), nil
}

// Preview generates page with gen and converts the document to Markdown.
func Preview(gen pagekit.Generator, conv pagekit.Converter, page *pagekit.Page) (string, error) {
	html, err := gen.Generate(page)
	if err != nil {
		return "", err
	}
	return conv.Convert(html)
}
