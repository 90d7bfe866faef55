// Package goquery implements pagekit.PageExtractor with heuristic section
// detection over a goquery document.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagekit"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// DefaultTitle is the title of a page with neither a <title> nor an h1.
const DefaultTitle = "無題のページ"

// Notes attached to pages whose extraction was incomplete.
const (
	NotePartialExtraction = "一部のセクションを抽出できませんでした"
	NoteReplaceImages     = "画像は差し替えてください"
)

// noiseSelector matches nodes that are never content: scripts, styles,
// navigation chrome, embedded frames, plugins and vector graphics.
const noiseSelector = "script, style, noscript, nav, iframe, frame, svg, object, embed"

// Ensure Extractor implements pagekit.PageExtractor at compile time.
var _ pagekit.PageExtractor = (*Extractor)(nil)

// Extractor builds pages from raw HTML by running the section extractors in
// the fixed order hero, features, FAQ, footer.
type Extractor struct {
	limits   Limits
	metadata pagekit.MetadataReader
	language pagekit.LanguageDetector
	newID    func() string
	now      func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLimits overrides the heuristic thresholds.
// Zero fields keep their default values.
func WithLimits(l Limits) Option {
	return func(e *Extractor) {
		e.limits = l.withDefaults()
	}
}

// WithMetadataReader fills a missing description or language from r.
func WithMetadataReader(r pagekit.MetadataReader) Option {
	return func(e *Extractor) {
		e.metadata = r
	}
}

// WithLanguageDetector guesses the language from visible text when the
// markup does not declare one.
func WithLanguageDetector(d pagekit.LanguageDetector) Option {
	return func(e *Extractor) {
		e.language = d
	}
}

// WithIDGenerator sets the function that assigns page IDs.
func WithIDGenerator(fn func() string) Option {
	return func(e *Extractor) {
		e.newID = fn
	}
}

// WithClock sets the function that stamps creation times.
func WithClock(fn func() time.Time) Option {
	return func(e *Extractor) {
		e.now = fn
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		limits: DefaultLimits(),
		newID:  func() string { return uuid.New().String() },
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns a draft page with every section that
// could be detected. Identical input yields identical sections, title and
// meta; only the ID and timestamps differ between calls.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*pagekit.Page, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	meta := pagekit.Meta{
		SourceURL:   sourceURL,
		Description: readDescription(doc),
		Language:    strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
	}
	e.fillMetadata(&meta, rawHTML, sourceURL)

	var sections []pagekit.Section
	for _, found := range []*pagekit.Section{
		ExtractHero(doc),
		ExtractFeatures(doc, e.limits),
		ExtractFAQ(doc, e.limits),
		ExtractFooter(doc, e.limits),
	} {
		if found != nil {
			sections = append(sections, *found)
		}
	}

	if meta.Language == "" && e.language != nil {
		if lang, ok := e.language.DetectLanguage(text(doc.Find("body"))); ok {
			meta.Language = lang
		}
	}

	meta.Confidence = pagekit.ConfidenceFor(len(sections))
	meta.Notes = notesFor(meta.Confidence)

	now := e.now()
	return &pagekit.Page{
		ID:        e.newID(),
		Title:     resolveTitle(doc, sections),
		Status:    pagekit.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
		Meta:      meta,
		Sections:  sections,
	}, nil
}

// Parse parses rawHTML and strips the nodes that are never content, so the
// section extractors neither see nor count navigation chrome.
func Parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagekit.Errorf(pagekit.EINVALID, "empty HTML input")
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagekit.Errorf(pagekit.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.Find(noiseSelector).Remove()
	return doc, nil
}

// fillMetadata completes meta from the configured reader. Metadata is
// optional enrichment, so reader errors are ignored.
func (e *Extractor) fillMetadata(meta *pagekit.Meta, rawHTML, sourceURL string) {
	if e.metadata == nil || (meta.Description != "" && meta.Language != "") {
		return
	}
	md, err := e.metadata.ReadMetadata(rawHTML, sourceURL)
	if err != nil || md == nil {
		return
	}
	if meta.Description == "" {
		meta.Description = pagekit.Clean(md.Description)
	}
	if meta.Language == "" {
		meta.Language = strings.TrimSpace(md.Language)
	}
}

// resolveTitle picks <title>, then the hero heading, then DefaultTitle.
func resolveTitle(doc *goquery.Document, sections []pagekit.Section) string {
	title := text(doc.Find("title"))
	if title == "" {
		for _, s := range sections {
			if hero, ok := s.Data.(*pagekit.HeroData); ok {
				title = hero.Heading
				break
			}
		}
	}
	if title == "" {
		title = DefaultTitle
	}
	return pagekit.TruncateWithEllipsis(title, pagekit.MaxTitleLen)
}

// readDescription reads the meta description, then the Open Graph one.
func readDescription(doc *goquery.Document) string {
	for _, selector := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if v := pagekit.Clean(doc.Find(selector).First().AttrOr("content", "")); v != "" {
			return v
		}
	}
	return ""
}

// notesFor returns the caveats shown for a given confidence.
func notesFor(c pagekit.Confidence) []string {
	if c == pagekit.ConfidenceHigh {
		return []string{}
	}
	return []string{NotePartialExtraction, NoteReplaceImages}
}

// sectionID returns the ID of the extracted section of type t. An extracted
// page holds at most one section per type, so positional IDs are unique and
// stable across runs.
func sectionID(t pagekit.SectionType) string {
	return string(t) + "-1"
}
