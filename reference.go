package linkcheck

// Reference is a raw link string extracted from a document attribute, such
// as an href or src value. The fragment, if any, is part of its identity.
type Reference string

// Category is the classification of a Reference.
type Category int

// Reference categories.
const (
	CategoryLocalPath Category = iota
	CategoryURL
	CategoryIgnored
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryURL:
		return "url"
	case CategoryIgnored:
		return "ignored"
	default:
		return "local"
	}
}

// Reason explains why a Reference was recorded as bad.
type Reason string

// Failure reasons.
const (
	ReasonMissingLocalFile    Reason = "MissingLocalFile"
	ReasonLocalhostDependency Reason = "LocalhostDependency"
	ReasonMalformedURL        Reason = "MalformedUrl"
	ReasonUnreachable         Reason = "UnreachableOrErrorStatus"
)

// Description returns a short human-readable description of the reason.
func (r Reason) Description() string {
	switch r {
	case ReasonMissingLocalFile:
		return "missing local file"
	case ReasonLocalhostDependency:
		return "localhost dependency"
	case ReasonMalformedURL:
		return "malformed URL"
	case ReasonUnreachable:
		return "unreachable or error status"
	default:
		return string(r)
	}
}

// BadLink is a Reference confirmed invalid under the active policy.
type BadLink struct {
	Reference Reference `json:"reference"`
	Reason    Reason    `json:"reason"`

	// Sources lists the documents that contain the reference, in discovery
	// order. The start document has no sources.
	Sources []string `json:"sources,omitempty"`
}
