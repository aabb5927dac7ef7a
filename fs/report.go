// Package fs provides file-based output for check reports.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes a report to path with atomic replace semantics.
// The content is written by write into a temporary file next to path, which
// is renamed over path only if write succeeds. On failure the temporary file
// is removed and any existing file at path is left untouched.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
