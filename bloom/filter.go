// Package bloom provides a probabilistic membership prefilter for link
// references. A negative answer is exact, so callers only need to consult
// their exact index when the filter reports a possible hit.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by reference strings.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected references
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a reference.
func (f *Filter) Add(ref string) {
	f.f.AddString(ref)
}

// MayContain returns false if ref was definitely never added.
// A true result can be a false positive.
func (f *Filter) MayContain(ref string) bool {
	return f.f.TestString(ref)
}
