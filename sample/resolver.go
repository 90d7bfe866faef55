// Package sample maps well-known source URLs to hand-authored sample pages.
package sample

import (
	"strings"
	"time"

	"github.com/fwojciec/pagekit"
	"github.com/google/uuid"
)

// Ensure Resolver implements pagekit.SampleResolver at compile time.
var _ pagekit.SampleResolver = (*Resolver)(nil)

// Kind names a sample template.
type Kind string

// Sample kinds.
const (
	KindRestaurant Kind = "restaurant"
	KindRecruit    Kind = "recruit"
	KindService    Kind = "service"
)

// Rule selects a template when the URL contains any of its keywords.
type Rule struct {
	Kind     Kind
	Keywords []string
}

// DefaultRules returns the rules in priority order. The first matching rule
// wins, so a URL mentioning both food and a product resolves to the
// restaurant sample.
func DefaultRules() []Rule {
	return []Rule{
		{Kind: KindRestaurant, Keywords: []string{"restaurant", "food", "cafe"}},
		{Kind: KindRecruit, Keywords: []string{"recruit", "career", "job"}},
		{Kind: KindService, Keywords: []string{"service", "saas", "product"}},
	}
}

// Resolver matches URLs against an ordered list of rules.
// Templates are never handed out; every result is a fresh deep copy.
type Resolver struct {
	rules     []Rule
	templates map[Kind]*pagekit.Page
	fallback  Kind
	newID     func() string
	now       func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRules replaces the default matching rules.
func WithRules(rules []Rule) Option {
	return func(r *Resolver) {
		r.rules = rules
	}
}

// WithIDGenerator sets the function that assigns page IDs.
func WithIDGenerator(fn func() string) Option {
	return func(r *Resolver) {
		r.newID = fn
	}
}

// WithClock sets the function that stamps creation times.
func WithClock(fn func() time.Time) Option {
	return func(r *Resolver) {
		r.now = fn
	}
}

// NewResolver creates a Resolver over the built-in templates.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		rules: DefaultRules(),
		templates: map[Kind]*pagekit.Page{
			KindRestaurant: Restaurant(),
			KindRecruit:    Recruit(),
			KindService:    Service(),
		},
		fallback: KindService,
		newID:    func() string { return uuid.New().String() },
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}

	// Rules naming a kind without a template can never produce a page.
	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if r.templates[rule.Kind] != nil {
			rules = append(rules, rule)
		}
	}
	r.rules = rules
	return r
}

// Resolve returns a copy of the first template whose rule matches url,
// compared case-insensitively. Returns nil when no rule matches.
func (r *Resolver) Resolve(url string) *pagekit.Page {
	kind, ok := r.Match(url)
	if !ok {
		return nil
	}
	page := r.instantiate(kind)
	if page == nil {
		return nil
	}
	page.Meta.SourceURL = url
	return page
}

// Match reports which template url resolves to.
func (r *Resolver) Match(url string) (Kind, bool) {
	lower := strings.ToLower(url)
	if lower == "" {
		return "", false
	}
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Kind, true
			}
		}
	}
	return "", false
}

// Fallback returns a copy of the service template.
func (r *Resolver) Fallback() *pagekit.Page {
	return r.instantiate(r.fallback)
}

// instantiate returns a fresh copy of the template for kind, or nil when
// there is none.
func (r *Resolver) instantiate(kind Kind) *pagekit.Page {
	tmpl := r.templates[kind]
	if tmpl == nil {
		return nil
	}
	page := tmpl.Clone()
	now := r.now()
	page.ID = r.newID()
	page.CreatedAt = now
	page.UpdatedAt = now
	return page
}
