package linkcheck

import "strings"

// Policy defaults.
const (
	DefaultDocument = "index.html"
	DefaultEncoding = "UTF-8"
)

// Policy configures how a check run treats the references it finds.
// It is immutable for the duration of a run.
type Policy struct {
	// DefaultDocument is appended when a local link resolves to a directory,
	// the way a web server serves index.html for a folder request.
	DefaultDocument string

	// FailOnLocalhost records links to localhost as bad.
	FailOnLocalhost bool

	// FailOnBadURLs records unreachable, malformed or non-200 URLs as bad.
	// Remote URLs are outside the build's control, so this is off by default.
	FailOnBadURLs bool

	// ReportOnly logs findings without failing the run.
	ReportOnly bool

	// Skip bypasses the check entirely.
	Skip bool

	// Encoding is the character encoding used to read local documents.
	Encoding string
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		DefaultDocument: DefaultDocument,
		FailOnLocalhost: true,
		Encoding:        DefaultEncoding,
	}
}

// Validate returns an error if the policy contains invalid fields.
func (p *Policy) Validate() error {
	if p.DefaultDocument == "" {
		return Errorf(EINVALID, "default document name required")
	}
	if strings.ContainsAny(p.DefaultDocument, `/\`) {
		return Errorf(EINVALID, "default document %q must be a file name, not a path", p.DefaultDocument)
	}
	if p.Encoding == "" {
		return Errorf(EINVALID, "encoding required")
	}
	return nil
}
