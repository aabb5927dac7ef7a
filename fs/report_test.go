package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/linkcheck/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Report Output
// Reports replace the previous file only when fully written

func TestWriteFile_CreatesFileAndParentDirectories(t *testing.T) {
	t.Parallel()

	// Given a target inside a directory that doesn't exist yet
	path := filepath.Join(t.TempDir(), "reports", "linkcheck.xml")

	// When I write a report
	err := fs.WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<testsuites/>")
		return err
	})

	// Then the file holds the content
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<testsuites/>", string(data))
}

func TestWriteFile_FailedWriteKeepsPreviousReport(t *testing.T) {
	t.Parallel()

	// Given an existing report
	dir := t.TempDir()
	path := filepath.Join(dir, "linkcheck.xml")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0644))

	// When writing the new report fails halfway
	err := fs.WriteFile(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return errors.New("encoding failed")
	})

	// Then the previous report is untouched and no temp files remain
	require.Error(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
