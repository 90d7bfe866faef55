package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagekit"
)

// text returns the normalised text of the first element in sel.
func text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return pagekit.Clean(sel.First().Text())
}

// firstText returns the first non-empty normalised text among the
// selectors, tried in priority order within root.
func firstText(root *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if t := text(root.Find(selector)); t != "" {
			return t
		}
	}
	return ""
}

// head returns the first n elements of sel.
func head(sel *goquery.Selection, n int) *goquery.Selection {
	if sel.Length() > n {
		return sel.Slice(0, n)
	}
	return sel
}
