package goquery

// Limits holds the thresholds the section heuristics use to tell content
// from noise. The defaults are empirically chosen and kept configurable.
type Limits struct {
	// MaxFeatureCandidates is how many card-like elements are scanned.
	MaxFeatureCandidates int `yaml:"maxFeatureCandidates"`

	// MaxFallbackFeatures is how many h2 headings the fallback scans.
	MaxFallbackFeatures int `yaml:"maxFallbackFeatures"`

	// A feature title is accepted only when its length is strictly
	// between MinFeatureTitleLen and MaxFeatureTitleLen.
	MinFeatureTitleLen int `yaml:"minFeatureTitleLen"`
	MaxFeatureTitleLen int `yaml:"maxFeatureTitleLen"`

	// FeatureTitleChars is how much of a candidate's own text becomes its
	// title when it has no nested heading.
	FeatureTitleChars int `yaml:"featureTitleChars"`

	// MaxFAQItems caps the question and answer pairs of each strategy.
	MaxFAQItems int `yaml:"maxFAQItems"`

	// MaxFooterLinks caps the links collected from the footer.
	MaxFooterLinks int `yaml:"maxFooterLinks"`

	// MaxLinkLabelLen rejects footer links with longer labels as noise.
	MaxLinkLabelLen int `yaml:"maxLinkLabelLen"`

	// MaxCompanyNameLen truncates the footer company name.
	MaxCompanyNameLen int `yaml:"maxCompanyNameLen"`
}

// DefaultLimits returns the standard extraction thresholds.
func DefaultLimits() Limits {
	return Limits{
		MaxFeatureCandidates: 6,
		MaxFallbackFeatures:  3,
		MinFeatureTitleLen:   2,
		MaxFeatureTitleLen:   50,
		FeatureTitleChars:    30,
		MaxFAQItems:          6,
		MaxFooterLinks:       5,
		MaxLinkLabelLen:      30,
		MaxCompanyNameLen:    50,
	}
}

// withDefaults fills zero fields from DefaultLimits so partially specified
// configuration stays usable.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxFeatureCandidates <= 0 {
		l.MaxFeatureCandidates = d.MaxFeatureCandidates
	}
	if l.MaxFallbackFeatures <= 0 {
		l.MaxFallbackFeatures = d.MaxFallbackFeatures
	}
	if l.MinFeatureTitleLen <= 0 {
		l.MinFeatureTitleLen = d.MinFeatureTitleLen
	}
	if l.MaxFeatureTitleLen <= 0 {
		l.MaxFeatureTitleLen = d.MaxFeatureTitleLen
	}
	if l.FeatureTitleChars <= 0 {
		l.FeatureTitleChars = d.FeatureTitleChars
	}
	if l.MaxFAQItems <= 0 {
		l.MaxFAQItems = d.MaxFAQItems
	}
	if l.MaxFooterLinks <= 0 {
		l.MaxFooterLinks = d.MaxFooterLinks
	}
	if l.MaxLinkLabelLen <= 0 {
		l.MaxLinkLabelLen = d.MaxLinkLabelLen
	}
	if l.MaxCompanyNameLen <= 0 {
		l.MaxCompanyNameLen = d.MaxCompanyNameLen
	}
	return l
}
