package check

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkcheck"
)

// ResolveLocal turns a local reference found in the document at source into
// a candidate file path. The fragment is dropped, the remainder is joined
// onto the directory of source, and if that names a directory the default
// document is appended. A reference that is only a fragment therefore
// resolves to the default document of the source's directory.
func ResolveLocal(source string, ref linkcheck.Reference, defaultDocument string) string {
	link := string(ref)
	if idx := strings.Index(link, "#"); idx != -1 {
		link = link[:idx]
	}
	path := filepath.Join(filepath.Dir(source), filepath.FromSlash(link))
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, defaultDocument)
	}
	return path
}

// exists reports whether path names an existing filesystem entry.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
