package linkcheck

import (
	"fmt"
	"io"
	"strings"
)

// Result holds the outcome of a check run.
type Result struct {
	// StartFile is the document the traversal started from.
	StartFile string

	// Checked lists every reference that entered the worklist, in
	// processing order. It never contains duplicates.
	Checked []Reference

	// BadLinks lists references found invalid under the active policy, in
	// worklist order.
	BadLinks []BadLink

	// Provenance maps each discovered reference to its source documents.
	Provenance *Provenance

	// Fingerprint identifies the bad links and their sources. Two runs over
	// an unchanged tree produce the same fingerprint.
	Fingerprint string
}

// Processed returns the number of references that were processed.
func (r *Result) Processed() int {
	return len(r.Checked)
}

// HasBadLinks reports whether any bad link was recorded.
func (r *Result) HasBadLinks() bool {
	return len(r.BadLinks) > 0
}

// FormatReport renders the human-readable bad link report.
// Each bad link is followed by the documents that reference it.
func FormatReport(result *Result) string {
	var b strings.Builder
	b.WriteString("\n")
	if len(result.BadLinks) == 0 {
		b.WriteString("no bad links\n")
	} else {
		fmt.Fprintf(&b, "%d bad links:\n", len(result.BadLinks))
		for _, link := range result.BadLinks {
			fmt.Fprintf(&b, "\t%s (%s)\n", link.Reference, link.Reason.Description())
			if len(link.Sources) > 0 {
				b.WriteString("\tbad link referenced from:\n")
				for _, source := range link.Sources {
					fmt.Fprintf(&b, "\t\t%s\n", source)
				}
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}

// WriteReport writes the human-readable bad link report to w.
func WriteReport(w io.Writer, result *Result) error {
	_, err := io.WriteString(w, FormatReport(result))
	return err
}
