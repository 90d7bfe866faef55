package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagekit"
)

// Default call to action used when the page offers none.
const (
	DefaultCTAText = "お問い合わせ"
	DefaultCTALink = "#contact"
)

// buttonSelector matches anchors and buttons styled as buttons.
const buttonSelector = `a[class*="btn"], a[class*="button"], a[class*="cta"], ` +
	`button[class*="btn"], button[class*="button"], button[class*="cta"]`

// ctaKeywords mark anchors whose target looks like a conversion page.
var ctaKeywords = []string{"contact", "entry"}

// ExtractHero builds a hero section around the first h1 in the document.
// A document without an h1 has no identifiable hero and yields nil.
//
// The subheading is the paragraph immediately following the h1, falling back
// to the first h2. The call to action is the first button-styled anchor or
// button, then the first anchor pointing at a contact or entry page, then
// DefaultCTAText and DefaultCTALink.
func ExtractHero(doc *goquery.Document) *pagekit.Section {
	h1 := doc.Find("h1").First()
	if h1.Length() == 0 {
		return nil
	}

	subheading := text(h1.NextFiltered("p"))
	if subheading == "" {
		subheading = text(doc.Find("h2"))
	}

	ctaText, ctaLink := findCTA(doc)

	section := pagekit.NewSection(sectionID(pagekit.SectionHero), &pagekit.HeroData{
		Heading:    text(h1),
		Subheading: subheading,
		CTAText:    ctaText,
		CTALink:    ctaLink,
	})
	return &section
}

// findCTA locates the page's primary call to action.
func findCTA(doc *goquery.Document) (label, link string) {
	if btn := doc.Find(buttonSelector).First(); btn.Length() > 0 {
		return ctaFrom(btn)
	}

	anchor := doc.Find("a[href]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		href := strings.ToLower(sel.AttrOr("href", ""))
		for _, kw := range ctaKeywords {
			if strings.Contains(href, kw) {
				return true
			}
		}
		return false
	}).First()
	if anchor.Length() > 0 {
		return ctaFrom(anchor)
	}

	return DefaultCTAText, DefaultCTALink
}

// ctaFrom reads label and target from an anchor or button.
// Buttons carry no href, so their target comes from data-href or
// formaction when present.
func ctaFrom(sel *goquery.Selection) (label, link string) {
	label = text(sel)
	if label == "" {
		label = DefaultCTAText
	}

	for _, attr := range []string{"href", "data-href", "formaction"} {
		if v := strings.TrimSpace(sel.AttrOr(attr, "")); v != "" {
			return label, v
		}
	}
	return label, DefaultCTALink
}
