package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/linkcheck"
	main "github.com/fwojciec/linkcheck/cmd/linkcheck"
	"github.com/fwojciec/linkcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes start file and limit to the filter", func(t *testing.T) {
		t.Parallel()

		var got linkcheck.RunFilter
		runs := &mock.RunService{
			FindRunsFn: func(_ context.Context, filter linkcheck.RunFilter) ([]*linkcheck.Run, error) {
				got = filter
				return []*linkcheck.Run{{
					ID:          "run-123",
					StartFile:   "site/index.html",
					Processed:   12,
					Fingerprint: "abcdef0123456789",
					CreatedAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
				}}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		cmd := &main.HistoryCmd{StartFile: "site/index.html", Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.StartFile)
		assert.Equal(t, "site/index.html", *got.StartFile)
		assert.Equal(t, 5, got.Limit)
		assert.Contains(t, stdout.String(), "run-123  2025-01-15T10:00:00Z  site/index.html  processed=12  bad=0  abcdef0123456789")
	})

	t.Run("shows helpful message when no runs exist", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunsFn: func(context.Context, linkcheck.RunFilter) ([]*linkcheck.Run, error) {
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs")
	})

	t.Run("shows one run with sources by ID", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(_ context.Context, id string) (*linkcheck.Run, error) {
				return &linkcheck.Run{
					ID:        id,
					StartFile: "site/index.html",
					Processed: 3,
					BadLinks: []linkcheck.BadLink{
						{Reference: "missing.html", Reason: linkcheck.ReasonMissingLocalFile, Sources: []string{"site/index.html", "site/about.html"}},
					},
					CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Runs: runs}

		err := (&main.HistoryCmd{ID: "run-9"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "run-9  2025-01-15T10:00:00Z  site/index.html  processed=3  bad=1")
		assert.Contains(t, stdout.String(), "\tmissing.html (missing local file)\n\t\tsite/index.html\n\t\tsite/about.html\n")
	})

	t.Run("reports unknown run ID", func(t *testing.T) {
		t.Parallel()

		runs := &mock.RunService{
			FindRunByIDFn: func(context.Context, string) (*linkcheck.Run, error) {
				return nil, linkcheck.Errorf(linkcheck.ENOTFOUND, "run not found")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Runs: runs}

		err := (&main.HistoryCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, linkcheck.ENOTFOUND, linkcheck.ErrorCode(err))
		assert.Contains(t, stderr.String(), "run not found")
	})

	t.Run("returns error when FindRuns fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		runs := &mock.RunService{
			FindRunsFn: func(context.Context, linkcheck.RunFilter) ([]*linkcheck.Run, error) {
				return nil, dbErr
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Runs: runs}

		err := (&main.HistoryCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
