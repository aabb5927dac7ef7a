package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Ensure LoggingRunService implements linkcheck.RunService.
var _ linkcheck.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging.
type LoggingRunService struct {
	next   linkcheck.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next linkcheck.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

// CreateRun delegates to the wrapped service and logs the stored run.
func (s *LoggingRunService) CreateRun(ctx context.Context, run *linkcheck.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("run recorded",
			"id", run.ID,
			"bad", len(run.BadLinks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (run *linkcheck.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find run", "id", id, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindRunByID(ctx, id)
}

func (s *LoggingRunService) FindRuns(ctx context.Context, filter linkcheck.RunFilter) (runs []*linkcheck.Run, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find runs", "count", len(runs), "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.FindRuns(ctx, filter)
}
