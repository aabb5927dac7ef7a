package check

import (
	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/bloom"
)

// state is the processing state of a work item.
type state int

const (
	stateQueued state = iota
	stateSkipped
	stateGood
	stateBad
)

// workItem is a reference queued for processing.
type workItem struct {
	ref linkcheck.Reference

	// source is the document that first introduced the reference. Local
	// references resolve against its directory.
	source string

	state  state
	reason linkcheck.Reason
}

// Worklist is an insertion-ordered sequence of unique references.
// It grows while it is being processed; callers iterate it by index so
// items appended during traversal are observed before termination.
// It is not safe for concurrent use; the traversal coordinator owns it.
type Worklist struct {
	items []*workItem
	index map[linkcheck.Reference]int
	seen  *bloom.Filter
}

// NewWorklist creates an empty Worklist sized for n expected references.
func NewWorklist(n uint) *Worklist {
	return &Worklist{
		index: make(map[linkcheck.Reference]int),
		seen:  bloom.NewFilter(n, worklistFalsePositiveRate),
	}
}

// Push appends ref, introduced by the document at source, to the worklist.
// Returns false if ref is already in the worklist.
func (w *Worklist) Push(ref linkcheck.Reference, source string) bool {
	if w.Contains(ref) {
		return false
	}
	w.seen.Add(string(ref))
	w.index[ref] = len(w.items)
	w.items = append(w.items, &workItem{ref: ref, source: source})
	return true
}

// Contains returns true if ref has been pushed.
func (w *Worklist) Contains(ref linkcheck.Reference) bool {
	if !w.seen.MayContain(string(ref)) {
		return false
	}
	_, ok := w.index[ref]
	return ok
}

// Len returns the number of references pushed so far.
func (w *Worklist) Len() int {
	return len(w.items)
}

// References returns all pushed references in insertion order.
func (w *Worklist) References() []linkcheck.Reference {
	refs := make([]linkcheck.Reference, len(w.items))
	for i, item := range w.items {
		refs[i] = item.ref
	}
	return refs
}

// at returns the i-th item. The pointer stays valid as the worklist grows.
func (w *Worklist) at(i int) *workItem {
	return w.items[i]
}
