// Package slog provides logging decorators for linkcheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Ensure LoggingProber implements linkcheck.Prober.
var _ linkcheck.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with debug logging.
type LoggingProber struct {
	next   linkcheck.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next linkcheck.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the operation.
func (p *LoggingProber) Probe(ctx context.Context, url string) (status int, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("probe",
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Probe(ctx, url)
}
