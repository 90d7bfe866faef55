// Package template regenerates standalone HTML documents from pages using
// html/template.
package template

import (
	"bytes"
	htmltemplate "html/template"
	"strings"

	"github.com/fwojciec/pagekit"
)

// DefaultLanguage is the document language used when a page declares none.
const DefaultLanguage = "ja"

// Ensure Generator implements pagekit.Generator at compile time.
var _ pagekit.Generator = (*Generator)(nil)

var documentTemplate = htmltemplate.Must(htmltemplate.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- with .Description}}
<meta name="description" content="{{.}}">
{{- end}}
<link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
{{.Body}}
</body>
</html>
`))

type documentView struct {
	Lang        string
	Title       string
	Description string
	Stylesheet  string
	Body        htmltemplate.HTML
}

// Generator renders pages into complete HTML documents. Output depends only
// on the page, so equal pages always produce identical bytes.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the visible sections of page in order inside a fixed
// document skeleton.
func (g *Generator) Generate(page *pagekit.Page) (string, error) {
	if page == nil {
		return "", pagekit.Errorf(pagekit.EINVALID, "page required")
	}

	fragments := make([]string, 0, len(page.Sections))
	for _, s := range page.Sections {
		fragment, err := RenderSection(s)
		if err != nil {
			return "", err
		}
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}

	view := documentView{
		Lang:        page.Meta.Language,
		Title:       page.Title,
		Description: page.Meta.Description,
		Stylesheet:  StylesheetHref(),
		// Fragments come from sectionTemplates and are already escaped.
		Body: htmltemplate.HTML(strings.Join(fragments, "\n")),
	}
	if view.Lang == "" {
		view.Lang = DefaultLanguage
	}
	if view.Description == "" {
		if hero := page.Hero(); hero != nil {
			view.Description = hero.Subheading
		}
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Stylesheet returns the CSS referenced by every generated document.
func (g *Generator) Stylesheet() string {
	return Stylesheet()
}
