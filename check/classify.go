package check

import (
	"regexp"
	"strings"

	"github.com/fwojciec/linkcheck"
)

// absoluteURL matches a scheme followed by "://" and a non-empty authority.
// It is permissive: single-label hosts such as localhost pass,
// and characters the strict URL parser rejects later are not checked here.
var absoluteURL = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://[^/?#\s]+`)

// Classifier decides whether a reference is a URL, a local path, or ignored.
type Classifier struct {
	ignoredPrefixes []string
	url             *regexp.Regexp
}

// NewClassifier returns a Classifier that ignores javascript: and mailto:
// references.
func NewClassifier() *Classifier {
	return &Classifier{
		ignoredPrefixes: []string{"javascript:", "mailto:"},
		url:             absoluteURL,
	}
}

// Classify returns the category of ref.
// Anything that is neither ignored nor a syntactically valid absolute URL is
// a local path, including fragment-only links.
func (c *Classifier) Classify(ref linkcheck.Reference) linkcheck.Category {
	s := string(ref)
	for _, prefix := range c.ignoredPrefixes {
		if strings.HasPrefix(s, prefix) {
			return linkcheck.CategoryIgnored
		}
	}
	if c.url.MatchString(s) {
		return linkcheck.CategoryURL
	}
	return linkcheck.CategoryLocalPath
}
