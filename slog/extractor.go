package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Ensure LoggingExtractor implements linkcheck.LinkExtractor.
var _ linkcheck.LinkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LinkExtractor with debug logging.
type LoggingExtractor struct {
	next   linkcheck.LinkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkcheck.LinkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(path, encoding string) (refs []linkcheck.Reference, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"path", path,
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(path, encoding)
}
