// Package goquery implements linkcheck.LinkExtractor on top of goquery.
package goquery

import (
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkcheck"
	"golang.org/x/net/html/charset"
)

// TagAttribute pairs an element name with the attribute that holds its
// reference.
type TagAttribute struct {
	Tag       string
	Attribute string
}

// DefaultTagAttributes are the elements whose references are checked,
// in extraction order.
var DefaultTagAttributes = []TagAttribute{
	{Tag: "a", Attribute: "href"},
	{Tag: "frame", Attribute: "src"},
	{Tag: "img", Attribute: "src"},
}

// Ensure Extractor implements linkcheck.LinkExtractor at compile time.
var _ linkcheck.LinkExtractor = (*Extractor)(nil)

// Extractor reads references from local HTML documents.
type Extractor struct {
	tags []TagAttribute
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTagAttributes replaces the element table.
// Defaults to DefaultTagAttributes if not specified.
func WithTagAttributes(tags ...TagAttribute) Option {
	return func(e *Extractor) {
		e.tags = tags
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		tags: DefaultTagAttributes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract opens the document at path and returns its references.
// Files are parsed regardless of their extension.
func (e *Extractor) Extract(path, encoding string) ([]linkcheck.Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return e.ExtractFromReader(f, encoding)
}

// ExtractFromReader decodes r using the named character encoding and returns
// the references of every configured element, grouped by element in table
// order and in document order within a group. Elements whose attribute is
// missing or empty yield nothing.
func (e *Extractor) ExtractFromReader(r io.Reader, encoding string) ([]linkcheck.Reference, error) {
	decoded, err := charset.NewReaderLabel(encoding, r)
	if err != nil {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "unsupported encoding %q: %v", encoding, err)
	}

	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var refs []linkcheck.Reference
	for _, ta := range e.tags {
		doc.Find(ta.Tag).Each(func(_ int, sel *goquery.Selection) {
			value, exists := sel.Attr(ta.Attribute)
			if !exists || value == "" {
				return
			}
			refs = append(refs, linkcheck.Reference(value))
		})
	}
	return refs, nil
}

// ValidateEncoding returns EINVALID if label is not a character encoding
// the extractor can decode.
func ValidateEncoding(label string) error {
	if enc, _ := charset.Lookup(label); enc == nil {
		return linkcheck.Errorf(linkcheck.EINVALID, "unsupported encoding %q", label)
	}
	return nil
}
