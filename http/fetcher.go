// Package http provides an HTTP-based implementation of trellodoc.Fetcher
// for retrieving the static documentation pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/trellodoc"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond caps how fast documentation pages are requested,
// to stay polite toward the live site.
const DefaultRequestsPerSecond = 1.0

// Ensure Fetcher implements trellodoc.Fetcher at compile time.
var _ trellodoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests. Requests are
// rate limited; the documentation pages are static so no JavaScript rendering
// is needed.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	rps     float64
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

// WithRequestsPerSecond sets the request rate limit.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		f.rps = rps
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		rps:     DefaultRequestsPerSecond,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	f.limiter = rate.NewLimiter(rate.Limit(f.rps), 1)

	return f
}

// Fetch retrieves the HTML content from the given URL, waiting on the rate
// limiter first.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", trellodoc.Errorf(trellodoc.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
