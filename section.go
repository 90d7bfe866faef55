package pagekit

import (
	"encoding/json"
	"slices"
)

// SectionType is the tag of a Section's payload.
type SectionType string

// Supported section types.
const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionTestimonials SectionType = "testimonials"
	SectionFAQ          SectionType = "faq"
	SectionFooter       SectionType = "footer"
)

// SectionTypes lists every section type in canonical order.
var SectionTypes = []SectionType{
	SectionHero,
	SectionFeatures,
	SectionTestimonials,
	SectionFAQ,
	SectionFooter,
}

// DefaultName returns the user-facing label a new section of type t receives.
func DefaultName(t SectionType) string {
	switch t {
	case SectionHero:
		return "ヒーロー"
	case SectionFeatures:
		return "特徴"
	case SectionTestimonials:
		return "お客様の声"
	case SectionFAQ:
		return "よくある質問"
	case SectionFooter:
		return "フッター"
	}
	return string(t)
}

// SectionData is the payload of a Section. The set of implementations is
// closed: HeroData, FeaturesData, TestimonialsData, FAQData and FooterData.
type SectionData interface {
	// SectionType returns the tag that identifies the payload.
	SectionType() SectionType

	cloneData() SectionData
}

// Section is one typed, orderable block within a Page.
// The type tag is derived from Data, so it can never disagree with it.
type Section struct {
	ID      string
	Name    string
	Visible bool
	Data    SectionData
}

// NewSection returns a visible section carrying data, named with the
// default label for its type.
func NewSection(id string, data SectionData) Section {
	return Section{
		ID:      id,
		Name:    DefaultName(data.SectionType()),
		Visible: true,
		Data:    data,
	}
}

// Type returns the section's type tag, or "" when it carries no data.
func (s Section) Type() SectionType {
	if s.Data == nil {
		return ""
	}
	return s.Data.SectionType()
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	if s.Data != nil {
		s.Data = s.Data.cloneData()
	}
	return s
}

// sectionJSON is the wire form of a Section.
type sectionJSON struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Name    string          `json:"name"`
	Visible bool            `json:"visible"`
	Data    json.RawMessage `json:"data"`
}

// MarshalJSON encodes the section with an explicit type tag.
func (s Section) MarshalJSON() ([]byte, error) {
	if s.Data == nil {
		return nil, Errorf(EINVALID, "section %q has no data", s.ID)
	}
	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionJSON{
		ID:      s.ID,
		Type:    s.Data.SectionType(),
		Name:    s.Name,
		Visible: s.Visible,
		Data:    data,
	})
}

// UnmarshalJSON decodes a section, dispatching the payload on its type tag.
// Unknown types are rejected with EINVALID.
func (s *Section) UnmarshalJSON(b []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var data SectionData
	switch raw.Type {
	case SectionHero:
		data = &HeroData{}
	case SectionFeatures:
		data = &FeaturesData{}
	case SectionTestimonials:
		data = &TestimonialsData{}
	case SectionFAQ:
		data = &FAQData{}
	case SectionFooter:
		data = &FooterData{}
	default:
		return Errorf(EINVALID, "unknown section type %q", raw.Type)
	}
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			return err
		}
	}

	*s = Section{
		ID:      raw.ID,
		Name:    raw.Name,
		Visible: raw.Visible,
		Data:    data,
	}
	return nil
}

// HeroData is the payload of a hero section.
type HeroData struct {
	Heading         string `json:"heading"`
	Subheading      string `json:"subheading"`
	BackgroundImage string `json:"backgroundImage"`
	CTAText         string `json:"ctaText"`
	CTALink         string `json:"ctaLink"`
}

func (d *HeroData) SectionType() SectionType { return SectionHero }

func (d *HeroData) cloneData() SectionData {
	c := *d
	return &c
}

// FeatureItem is one card of a features section.
type FeatureItem struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	IconImage string `json:"iconImage"`
}

// FeaturesData is the payload of a features section.
type FeaturesData struct {
	Items []FeatureItem `json:"items"`
}

func (d *FeaturesData) SectionType() SectionType { return SectionFeatures }

func (d *FeaturesData) cloneData() SectionData {
	return &FeaturesData{Items: slices.Clone(d.Items)}
}

// Testimonial is one customer quote.
type Testimonial struct {
	Name  string `json:"name"`
	Quote string `json:"quote"`
}

// TestimonialsData is the payload of a testimonials section.
type TestimonialsData struct {
	Items []Testimonial `json:"items"`
}

func (d *TestimonialsData) SectionType() SectionType { return SectionTestimonials }

func (d *TestimonialsData) cloneData() SectionData {
	return &TestimonialsData{Items: slices.Clone(d.Items)}
}

// FAQItem is one question and answer pair.
type FAQItem struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// FAQData is the payload of a FAQ section.
type FAQData struct {
	Items []FAQItem `json:"items"`
}

func (d *FAQData) SectionType() SectionType { return SectionFAQ }

func (d *FAQData) cloneData() SectionData {
	return &FAQData{Items: slices.Clone(d.Items)}
}

// FooterLink is one navigable link in the footer.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FooterData is the payload of a footer section.
// Links always holds at least one entry.
type FooterData struct {
	CompanyName string       `json:"companyName"`
	Links       []FooterLink `json:"links"`
}

func (d *FooterData) SectionType() SectionType { return SectionFooter }

func (d *FooterData) cloneData() SectionData {
	return &FooterData{CompanyName: d.CompanyName, Links: slices.Clone(d.Links)}
}

// DefaultContactLink is the link a footer carries when no other link exists.
func DefaultContactLink() FooterLink {
	return FooterLink{Label: "お問い合わせ", URL: "#contact"}
}
