package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagekit"
)

// ExtractFAQ collects question and answer pairs.
//
// Definition lists (dt followed by dd) are tried first; details elements
// (summary as the question, the remaining text as the answer) only when no
// definition pair was found. Pairs missing either half are discarded and
// each strategy stops after MaxFAQItems pairs. Returns nil when no pair
// survives.
func ExtractFAQ(doc *goquery.Document, limits Limits) *pagekit.Section {
	limits = limits.withDefaults()

	items := collectPairs(doc.Find("dt"), limits.MaxFAQItems, func(dt *goquery.Selection) (string, string) {
		return text(dt), text(dt.NextFiltered("dd"))
	})

	if len(items) == 0 {
		items = collectPairs(doc.Find("details"), limits.MaxFAQItems, func(details *goquery.Selection) (string, string) {
			q := text(details.Find("summary"))
			rest := details.Clone()
			rest.Find("summary").Remove()
			return q, text(rest)
		})
	}

	if len(items) == 0 {
		return nil
	}

	section := pagekit.NewSection(sectionID(pagekit.SectionFAQ), &pagekit.FAQData{Items: items})
	return &section
}

// collectPairs applies pair to each element of sel in order, keeping
// complete pairs until max have been collected.
func collectPairs(sel *goquery.Selection, max int, pair func(*goquery.Selection) (string, string)) []pagekit.FAQItem {
	var items []pagekit.FAQItem
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		q, a := pair(s)
		if q != "" && a != "" {
			items = append(items, pagekit.FAQItem{Q: q, A: a})
		}
		return len(items) < max
	})
	return items
}
