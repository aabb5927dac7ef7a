package linkcheck

import (
	"context"
	"time"
)

// Run is the stored summary of a completed check.
// Runs are an audit trail only; a check never reads earlier runs.
type Run struct {
	ID          string    `json:"id"`
	StartFile   string    `json:"startFile"`
	Processed   int       `json:"processed"`
	BadLinks    []BadLink `json:"badLinks"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewRun builds a Run from a check result.
func NewRun(result *Result) *Run {
	return &Run{
		StartFile:   result.StartFile,
		Processed:   result.Processed(),
		BadLinks:    result.BadLinks,
		Fingerprint: result.Fingerprint,
	}
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.StartFile == "" {
		return Errorf(EINVALID, "run start file required")
	}
	if r.Processed < 0 {
		return Errorf(EINVALID, "run processed count must not be negative")
	}
	return nil
}

// RunService represents a service for recording check runs.
type RunService interface {
	// CreateRun stores a new run and assigns its ID and timestamp.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	StartFile *string `json:"startFile"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
