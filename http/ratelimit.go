package http

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/pagekit"
	"golang.org/x/time/rate"
)

var _ pagekit.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per host with one token bucket each.
// Hosts are compared case-insensitively and without a leading "www.", so a
// site and its www alias share a budget.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter returns a limiter allowing rps requests per second to each
// host, with a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
		burst:   1,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(hostKey(domain)).Wait(ctx)
}

// Domains returns the number of hosts seen so far.
func (d *DomainLimiter) Domains() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buckets)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.limit, d.burst)
		d.buckets[key] = b
	}
	return b
}

func hostKey(domain string) string {
	return strings.TrimPrefix(strings.ToLower(domain), "www.")
}
