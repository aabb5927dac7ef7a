package mock

import (
	"context"

	"github.com/fwojciec/linkcheck"
)

var _ linkcheck.Prober = (*Prober)(nil)

// Prober is a mock implementation of linkcheck.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) (int, error)
}

func (p *Prober) Probe(ctx context.Context, url string) (int, error) {
	return p.ProbeFn(ctx, url)
}

var _ linkcheck.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of linkcheck.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
