package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/linkcheck"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ linkcheck.RunService = (*RunService)(nil)

// RunService implements linkcheck.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run and its bad links in a single transaction.
func (s *RunService) CreateRun(ctx context.Context, run *linkcheck.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, start_file, processed, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.StartFile, run.Processed, run.Fingerprint, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, link := range run.BadLinks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO bad_links (run_id, position, reference, reason, sources)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, i, string(link.Reference), string(link.Reason), strings.Join(link.Sources, "\n")); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run and its bad links by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*linkcheck.Run, error) {
	var run linkcheck.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, start_file, processed, fingerprint, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.StartFile, &run.Processed, &run.Fingerprint, &createdAt)

	if err == sql.ErrNoRows {
		return nil, linkcheck.Errorf(linkcheck.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if run.BadLinks, err = s.findBadLinks(ctx, run.ID); err != nil {
		return nil, err
	}

	return &run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter linkcheck.RunFilter) ([]*linkcheck.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, start_file, processed, fingerprint, created_at FROM runs WHERE 1=1")

	if filter.StartFile != nil {
		query.WriteString(" AND start_file = ?")
		args = append(args, *filter.StartFile)
	}

	// rowid breaks ties between runs created within the same second.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	runs, err := s.queryRuns(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	// Bad links are loaded after the run rows are closed; the pool holds a
	// single connection.
	for _, run := range runs {
		if run.BadLinks, err = s.findBadLinks(ctx, run.ID); err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (s *RunService) queryRuns(ctx context.Context, query string, args ...any) ([]*linkcheck.Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*linkcheck.Run
	for rows.Next() {
		var run linkcheck.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.StartFile, &run.Processed, &run.Fingerprint, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

func (s *RunService) findBadLinks(ctx context.Context, runID string) ([]linkcheck.BadLink, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT reference, reason, sources
		FROM bad_links
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []linkcheck.BadLink
	for rows.Next() {
		var reference, reason, sources string
		if err := rows.Scan(&reference, &reason, &sources); err != nil {
			return nil, err
		}

		link := linkcheck.BadLink{
			Reference: linkcheck.Reference(reference),
			Reason:    linkcheck.Reason(reason),
		}
		if sources != "" {
			link.Sources = strings.Split(sources, "\n")
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
