package mock

import (
	"context"

	"github.com/fwojciec/pagekit"
)

// Compile-time interface verification.
var (
	_ pagekit.Fetcher       = (*Fetcher)(nil)
	_ pagekit.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of pagekit.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of pagekit.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
