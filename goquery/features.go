package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagekit"
)

// FeatureBodyPlaceholder is the body of a feature whose description was
// not found.
const FeatureBodyPlaceholder = "説明文を入力してください"

// featureCandidateSelector matches card-like elements: h3 headings and
// elements whose class or tag suggests a feature, card, service or article.
const featureCandidateSelector = `h3, [class*="feature"], [class*="card"], [class*="service"], article`

const (
	featureTitleSelector = `h2, h3, h4, [class*="title"]`
	featureBodySelector  = `p, [class*="desc"], [class*="text"]`
)

// ExtractFeatures collects feature cards in document order.
//
// At most MaxFeatureCandidates candidates are scanned. A candidate's title is
// its first nested heading or title-labelled element, else the start of its
// own text; its body is its first nested paragraph or description. Titles
// whose length is not strictly between MinFeatureTitleLen and
// MaxFeatureTitleLen are noise and rejected. A card and its own h3 are
// separate candidates, so both may be accepted.
//
// When no candidate is accepted, h2 headings paired with their following
// paragraph are tried instead, at most MaxFallbackFeatures of them.
// Returns nil rather than an empty section when nothing is accepted.
func ExtractFeatures(doc *goquery.Document, limits Limits) *pagekit.Section {
	limits = limits.withDefaults()

	var items []pagekit.FeatureItem
	accept := func(title, body string) {
		n := pagekit.RuneLen(title)
		if n <= limits.MinFeatureTitleLen || n >= limits.MaxFeatureTitleLen {
			return
		}
		if body == "" {
			body = FeatureBodyPlaceholder
		}
		items = append(items, pagekit.FeatureItem{Title: title, Body: body})
	}

	head(doc.Find(featureCandidateSelector), limits.MaxFeatureCandidates).Each(func(_ int, card *goquery.Selection) {
		title := text(card.Find(featureTitleSelector))
		if title == "" {
			title = pagekit.Truncate(text(card), limits.FeatureTitleChars)
		}
		accept(title, text(card.Find(featureBodySelector)))
	})

	if len(items) == 0 {
		head(doc.Find("h2"), limits.MaxFallbackFeatures).Each(func(_ int, h2 *goquery.Selection) {
			accept(text(h2), text(h2.NextFiltered("p")))
		})
	}

	if len(items) == 0 {
		return nil
	}

	section := pagekit.NewSection(sectionID(pagekit.SectionFeatures), &pagekit.FeaturesData{Items: items})
	return &section
}
