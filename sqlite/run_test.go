package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func newRun(startFile string, links ...linkcheck.BadLink) *linkcheck.Run {
	return &linkcheck.Run{
		StartFile:   startFile,
		Processed:   4,
		BadLinks:    links,
		Fingerprint: "0123456789abcdef",
	}
}

func TestRunService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("creates run with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		run := newRun("site/index.html")

		err := svc.CreateRun(context.Background(), run)
		require.NoError(t, err)

		assert.NotEmpty(t, run.ID, "ID should be generated")
		assert.False(t, run.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		err := svc.CreateRun(context.Background(), &linkcheck.Run{})
		require.Error(t, err)
		assert.Equal(t, linkcheck.EINVALID, linkcheck.ErrorCode(err))
	})
}

func TestRunService_FindRunByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips bad links in order with sources", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		links := []linkcheck.BadLink{
			{Reference: "missing.html", Reason: linkcheck.ReasonMissingLocalFile, Sources: []string{"site/index.html", "site/about.html"}},
			{Reference: "http://localhost:8080/", Reason: linkcheck.ReasonLocalhostDependency, Sources: []string{"site/index.html"}},
			{Reference: "index.html", Reason: linkcheck.ReasonMissingLocalFile},
		}
		run := newRun("site/index.html", links...)
		require.NoError(t, svc.CreateRun(ctx, run))

		found, err := svc.FindRunByID(ctx, run.ID)
		require.NoError(t, err)

		assert.Equal(t, run.ID, found.ID)
		assert.Equal(t, "site/index.html", found.StartFile)
		assert.Equal(t, 4, found.Processed)
		assert.Equal(t, "0123456789abcdef", found.Fingerprint)
		assert.Equal(t, links, found.BadLinks)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		_, err := svc.FindRunByID(context.Background(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, linkcheck.ENOTFOUND, linkcheck.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		first := newRun("site/index.html")
		second := newRun("site/index.html", linkcheck.BadLink{Reference: "x.html", Reason: linkcheck.ReasonMissingLocalFile})
		require.NoError(t, svc.CreateRun(ctx, first))
		require.NoError(t, svc.CreateRun(ctx, second))

		runs, err := svc.FindRuns(ctx, linkcheck.RunFilter{})
		require.NoError(t, err)

		require.Len(t, runs, 2)
		assert.Equal(t, second.ID, runs[0].ID)
		assert.Len(t, runs[0].BadLinks, 1)
		assert.Equal(t, first.ID, runs[1].ID)
		assert.Empty(t, runs[1].BadLinks)
	})

	t.Run("filters by start file", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateRun(ctx, newRun("a/index.html")))
		require.NoError(t, svc.CreateRun(ctx, newRun("b/index.html")))

		startFile := "b/index.html"
		runs, err := svc.FindRuns(ctx, linkcheck.RunFilter{StartFile: &startFile})
		require.NoError(t, err)

		require.Len(t, runs, 1)
		assert.Equal(t, "b/index.html", runs[0].StartFile)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))
		ctx := context.Background()
		var ids []string
		for i := 0; i < 3; i++ {
			run := newRun("site/index.html")
			require.NoError(t, svc.CreateRun(ctx, run))
			ids = append(ids, run.ID)
		}

		runs, err := svc.FindRuns(ctx, linkcheck.RunFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)

		require.Len(t, runs, 1)
		assert.Equal(t, ids[1], runs[0].ID)
	})

	t.Run("returns empty for no runs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(setupTestDB(t))

		runs, err := svc.FindRuns(context.Background(), linkcheck.RunFilter{})
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
