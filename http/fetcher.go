// Package http provides the network edges of pagekit: a Fetcher that
// downloads landing pages without executing JavaScript, and a Server that
// exposes import and generation over a JSON API.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"syscall"
	"strings"
	"time"

	"github.com/fwojciec/pagekit"
)

// DefaultFetchTimeout is the default timeout for a single HTTP request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response is read.
const DefaultMaxBodySize = 5 << 20

// DefaultUserAgent identifies pagekit to the sites it imports.
const DefaultUserAgent = "pagekit/1.0 (+https://github.com/fwojciec/pagekit)"

// Ensure Fetcher implements pagekit.Fetcher at compile time.
var _ pagekit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	limiter     pagekit.DomainLimiter
	retryDelays []time.Duration
	userAgent   string
	maxBodySize int64
	denyPrivate bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLimiter spaces out requests to the same host.
func WithLimiter(l pagekit.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithRetryDelays sets the backoff between attempts. A transient failure is
// retried once per delay; nil disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps how many bytes of a response body are read.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithDenyPrivateHosts refuses to connect to loopback, private, link-local
// and unspecified addresses. The check runs on the dialed address, so it
// also covers redirects and names that resolve to internal hosts. Refused
// fetches fail with EINVALID and are not retried.
//
// Without this option the fetcher follows any http or https URL, including
// internal ones. Enable it whenever URLs come from untrusted callers, such
// as the server's import endpoint.
func WithDenyPrivateHosts() Option {
	return func(f *Fetcher) {
		f.denyPrivate = true
	}
}

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// NewFetcher creates a new HTTP-based Fetcher. Without options it neither
// rate limits nor retries.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	if f.denyPrivate {
		dialer := &net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second, Control: denyPrivateAddr}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.Proxy = nil
		transport.DialContext = dialer.DialContext
		f.client.Transport = transport
	}

	return f
}

// errPrivateHost is returned by the dialer when a connection would reach an
// internal address.
var errPrivateHost = errors.New("private host")

func denyPrivateAddr(network, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return err
	}
	addr := ap.Addr().Unmap()
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() || addr.IsUnspecified() {
		return fmt.Errorf("%w: %s", errPrivateHost, addr)
	}
	return nil
}

// Fetch retrieves the HTML content from the given URL.
// Only http and https URLs are accepted; anything else is EINVALID.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", pagekit.Errorf(pagekit.EINVALID, "invalid URL %q", rawURL)
	}

	return f.fetchWithRetry(ctx, u)
}

// fetchWithRetry attempts the request once plus once per retry delay.
// Permanent failures (4xx other than 429) are returned immediately.
func (f *Fetcher) fetchWithRetry(ctx context.Context, u *url.URL) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.retryDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(f.retryDelays[attempt-1]):
			}
		}

		html, err := f.fetchOnce(ctx, u)
		if err == nil {
			return html, nil
		}
		lastErr = err

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			break
		}
		if pagekit.ErrorCode(err) == pagekit.EINVALID {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, u *url.URL) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u.Hostname()); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if errors.Is(err, errPrivateHost) {
		return "", pagekit.Errorf(pagekit.EINVALID, "refusing to fetch internal host %s", u.Hostname())
	} else if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode, url: u.String()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusError reports a non-200 response.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.code, e.url)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}
