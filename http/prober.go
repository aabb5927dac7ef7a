// Package http provides an HTTP-based implementation of linkcheck.Prober.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/linkcheck"
)

// DefaultProbeTimeout is the default timeout for HTTP requests.
const DefaultProbeTimeout = 10 * time.Second

// DefaultUserAgent identifies the checker to remote servers.
const DefaultUserAgent = "linkcheck"

// Ensure Prober implements linkcheck.Prober at compile time.
var _ linkcheck.Prober = (*Prober)(nil)

// Prober checks remote URLs with HEAD requests. Redirects are followed and
// the status of the final response is reported.
type Prober struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultProbeTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		p.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each probe.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// NewProber creates a new HTTP-based Prober.
func NewProber(opts ...Option) *Prober {
	p := &Prober{
		timeout:   DefaultProbeTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = &http.Client{
		Timeout: p.timeout,
	}

	return p
}

// Probe issues a HEAD request to url and returns the response status code.
func (p *Prober) Probe(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
