package pagekit

import (
	"context"
	"slices"
	"time"
)

// MaxTitleLen is the number of characters a page title may hold before it
// is truncated with an ellipsis.
const MaxTitleLen = 50

// Status is the publication state of a Page.
type Status string

// Page statuses.
const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Confidence is a coarse quality signal for an imported page.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceFor rates an extraction purely by how many sections it found.
func ConfidenceFor(sections int) Confidence {
	switch {
	case sections >= 3:
		return ConfidenceHigh
	case sections == 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Meta records where a page came from. It is written once at creation.
type Meta struct {
	SourceURL   string     `json:"sourceUrl"`
	Confidence  Confidence `json:"confidence"`
	Notes       []string   `json:"notes"`
	Description string     `json:"description,omitempty"`
	Language    string     `json:"language,omitempty"`
}

// Page is the canonical, persisted representation of a landing page.
type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Meta      Meta      `json:"meta"`
	Sections  []Section `json:"sections"`
}

// Validate returns an error if the page is not well-formed.
func (p *Page) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "page ID required")
	}
	switch p.Status {
	case StatusDraft, StatusPublished:
	default:
		return Errorf(EINVALID, "invalid page status %q", p.Status)
	}

	seen := make(map[string]bool, len(p.Sections))
	for _, s := range p.Sections {
		if s.ID == "" {
			return Errorf(EINVALID, "section ID required")
		}
		if seen[s.ID] {
			return Errorf(EINVALID, "duplicate section ID %q", s.ID)
		}
		seen[s.ID] = true

		if s.Data == nil {
			return Errorf(EINVALID, "section %q has no data", s.ID)
		}
		if footer, ok := s.Data.(*FooterData); ok && len(footer.Links) == 0 {
			return Errorf(EINVALID, "footer section %q requires at least one link", s.ID)
		}
	}
	return nil
}

// Clone returns a deep copy of the page. Mutating the copy never affects
// the original.
func (p *Page) Clone() *Page {
	c := *p
	c.Meta.Notes = slices.Clone(p.Meta.Notes)
	if p.Sections != nil {
		c.Sections = make([]Section, len(p.Sections))
		for i, s := range p.Sections {
			c.Sections[i] = s.Clone()
		}
	}
	return &c
}

// Touch refreshes UpdatedAt. Call after any section mutation.
func (p *Page) Touch(now time.Time) {
	p.UpdatedAt = now
}

// Section returns the first section of type t, or nil.
func (p *Page) Section(t SectionType) *Section {
	for i := range p.Sections {
		if p.Sections[i].Type() == t {
			return &p.Sections[i]
		}
	}
	return nil
}

// Hero returns the payload of the first hero section, or nil.
func (p *Page) Hero() *HeroData {
	if s := p.Section(SectionHero); s != nil {
		return s.Data.(*HeroData)
	}
	return nil
}

// PageService represents a service for persisting pages by ID.
type PageService interface {
	// CreatePage persists a new page. A page without an ID is assigned one.
	// Returns ECONFLICT if a page with the same ID exists.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// UpdatePage updates an existing page.
	// Returns ENOTFOUND if page does not exist.
	UpdatePage(ctx context.Context, id string, upd PageUpdate) (*Page, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID        *string `json:"id"`
	Status    *Status `json:"status"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageUpdate represents fields that can be updated on a page.
type PageUpdate struct {
	Title    *string    `json:"title"`
	Status   *Status    `json:"status"`
	Sections *[]Section `json:"sections"`
}
