package mock

import (
	"context"

	"github.com/fwojciec/linkcheck"
)

var _ linkcheck.RunService = (*RunService)(nil)

// RunService is a mock implementation of linkcheck.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *linkcheck.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*linkcheck.Run, error)
	FindRunsFn    func(ctx context.Context, filter linkcheck.RunFilter) ([]*linkcheck.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *linkcheck.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*linkcheck.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter linkcheck.RunFilter) ([]*linkcheck.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
