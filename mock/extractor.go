package mock

import "github.com/fwojciec/linkcheck"

var _ linkcheck.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of linkcheck.LinkExtractor.
type LinkExtractor struct {
	ExtractFn func(path, encoding string) ([]linkcheck.Reference, error)
}

func (e *LinkExtractor) Extract(path, encoding string) ([]linkcheck.Reference, error) {
	return e.ExtractFn(path, encoding)
}
