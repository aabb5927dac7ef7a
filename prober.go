package linkcheck

import "context"

// Prober checks that a remote URL exists without transferring its body.
type Prober interface {
	// Probe issues a header-only request and returns the final status code.
	// Connection failures and transport errors are returned as errors.
	// The context and the implementation's timeout bound the request.
	Probe(ctx context.Context, url string) (status int, err error)
}

// HostLimiter provides per-host rate limiting for probes.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
