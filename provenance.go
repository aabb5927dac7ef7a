package linkcheck

// Provenance maps each Reference to the set of documents that contain it.
// Sources keep their first-seen order so reports are reproducible. The zero value is not usable; use NewProvenance.
type Provenance struct {
	count   int
	sources map[Reference][]string
	seen    map[Reference]map[string]struct{}
}

// NewProvenance returns an empty Provenance.
func NewProvenance() *Provenance {
	return &Provenance{
		sources: make(map[Reference][]string),
		seen:    make(map[Reference]map[string]struct{}),
	}
}

// Add records that source contains ref.
// Adding the same pair twice is a no-op.
func (p *Provenance) Add(ref Reference, source string) {
	set, ok := p.seen[ref]
	if !ok {
		set = make(map[string]struct{})
		p.seen[ref] = set
		p.count++
	}
	if _, dup := set[source]; dup {
		return
	}
	set[source] = struct{}{}
	p.sources[ref] = append(p.sources[ref], source)
}

// Sources returns the documents that contain ref, in the order they were
// recorded. It returns nil if ref was never recorded.
func (p *Provenance) Sources(ref Reference) []string {
	sources := p.sources[ref]
	if len(sources) == 0 {
		return nil
	}
	out := make([]string, len(sources))
	copy(out, sources)
	return out
}

// Len returns the number of distinct references recorded.
func (p *Provenance) Len() int {
	return p.count
}
