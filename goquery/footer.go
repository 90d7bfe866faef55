package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagekit"
)

// CompanyNamePlaceholder is used when the footer names no company.
const CompanyNamePlaceholder = "会社名"

// ExtractFooter reads the company name and links of the page footer.
// Without a footer element (or role="contentinfo") it yields nil; a footer
// is never invented.
//
// The company name comes from a company or logo labelled element, then
// strong or b, then the first paragraph. Links come from the footer's
// anchors; labels longer than MaxLinkLabelLen are noise. The result always
// carries at least one link: when none survive, pagekit.DefaultContactLink
// is used.
func ExtractFooter(doc *goquery.Document, limits Limits) *pagekit.Section {
	limits = limits.withDefaults()

	footer := doc.Find(`footer, [role="contentinfo"]`).First()
	if footer.Length() == 0 {
		return nil
	}

	company := firstText(footer, `[class*="company"], [class*="logo"]`, "strong, b", "p")
	if company == "" {
		company = CompanyNamePlaceholder
	}

	var links []pagekit.FooterLink
	footer.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		label := text(a)
		if label == "" || pagekit.RuneLen(label) > limits.MaxLinkLabelLen {
			return true
		}
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			href = "#"
		}
		links = append(links, pagekit.FooterLink{Label: label, URL: href})
		return len(links) < limits.MaxFooterLinks
	})
	if len(links) == 0 {
		links = []pagekit.FooterLink{pagekit.DefaultContactLink()}
	}

	section := pagekit.NewSection(sectionID(pagekit.SectionFooter), &pagekit.FooterData{
		CompanyName: pagekit.Truncate(company, limits.MaxCompanyNameLen),
		Links:       links,
	})
	return &section
}
