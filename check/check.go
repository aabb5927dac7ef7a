// Package check implements link-validation traversal.
// It walks a growing worklist seeded with a start document, resolves local
// references against the filesystem, probes remote URLs, and collects bad
// links together with the documents that reference them.
package check

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/linkcheck"
	"golang.org/x/sync/errgroup"
)

// Worklist configuration.
const (
	// worklistExpectedReferences is the expected number of references for Bloom filter sizing.
	worklistExpectedReferences = 10000
	// worklistFalsePositiveRate is the acceptable false positive rate of the prefilter.
	worklistFalsePositiveRate = 0.01
)

// DefaultConcurrency is the number of URL probes run in parallel when
// Concurrency is not set.
const DefaultConcurrency = 3

// Checker validates the links reachable from a local start document.
type Checker struct {
	Extractor   linkcheck.LinkExtractor
	Prober      linkcheck.Prober
	RateLimiter linkcheck.HostLimiter
	Logger      *slog.Logger
	Policy      linkcheck.Policy

	// Concurrency bounds the number of in-flight URL probes.
	// 1 probes strictly sequentially.
	Concurrency int
}

// traversal holds the state of a single run.
type traversal struct {
	extractor  linkcheck.LinkExtractor
	policy     linkcheck.Policy
	logger     *slog.Logger
	classifier *Classifier
	worklist   *Worklist
	provenance *linkcheck.Provenance

	// extracted tracks document paths already parsed, so a file reached
	// through several reference strings is read once.
	extracted map[string]bool
}

// Check traverses the documents reachable from startFile and returns every
// reference that is bad under the checker's policy.
//
// The worklist, provenance and enqueue decisions are owned by the calling
// goroutine. URL probes run on a bounded pool and only write their own work
// item, so the returned bad links are in worklist order regardless of
// Concurrency. A document that cannot be read aborts the run.
func (c *Checker) Check(ctx context.Context, startFile string) (*linkcheck.Result, error) {
	if startFile == "" {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "start file required")
	}
	if err := c.Policy.Validate(); err != nil {
		return nil, err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := c.logger()

	t := &traversal{
		extractor:  c.Extractor,
		policy:     c.Policy,
		logger:     logger,
		classifier: NewClassifier(),
		worklist:   NewWorklist(worklistExpectedReferences),
		provenance: linkcheck.NewProvenance(),
		extracted:  make(map[string]bool),
	}

	// The seed resolves against its own directory and has no provenance.
	t.worklist.Push(linkcheck.Reference(filepath.Base(startFile)), startFile)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	// Don't range over the worklist as it grows during traversal.
	for i := 0; i < t.worklist.Len(); i++ {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}

		item := t.worklist.at(i)
		category := t.classifier.Classify(item.ref)
		logger.Debug("processing", "ref", item.ref, "category", category)
		switch category {
		case linkcheck.CategoryURL:
			g.Go(func() error {
				c.validateURL(gctx, logger, item)
				return nil
			})
		case linkcheck.CategoryIgnored:
			item.state = stateSkipped
		default:
			if err := t.processLocal(item); err != nil {
				cancel()
				_ = g.Wait()
				return nil, err
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Debug("traversal complete",
		"references", t.worklist.Len(),
		"linked", t.provenance.Len(),
	)

	result := &linkcheck.Result{
		StartFile:  startFile,
		Checked:    t.worklist.References(),
		Provenance: t.provenance,
	}
	for i := 0; i < t.worklist.Len(); i++ {
		item := t.worklist.at(i)
		if item.state != stateBad {
			continue
		}
		result.BadLinks = append(result.BadLinks, linkcheck.BadLink{
			Reference: item.ref,
			Reason:    item.reason,
			Sources:   t.provenance.Sources(item.ref),
		})
	}
	result.Fingerprint = Fingerprint(result)

	return result, nil
}

// processLocal resolves a local reference and, if the file exists, extracts
// its references into the worklist.
func (t *traversal) processLocal(item *workItem) error {
	path := ResolveLocal(item.source, item.ref, t.policy.DefaultDocument)
	if !exists(path) {
		t.logger.Debug("missing local file", "ref", item.ref, "path", path)
		item.state = stateBad
		item.reason = linkcheck.ReasonMissingLocalFile
		return nil
	}
	item.state = stateGood

	if t.extracted[path] {
		t.logger.Debug("already extracted", "ref", item.ref, "path", path)
		return nil
	}
	t.extracted[path] = true

	refs, err := t.extractor.Extract(path, t.policy.Encoding)
	if err != nil {
		return linkcheck.Errorf(linkcheck.EINTERNAL, "file cannot be read: %s: %v", path, err)
	}

	for _, ref := range refs {
		if t.classifier.Classify(ref) == linkcheck.CategoryIgnored {
			t.logger.Debug("ignoring", "ref", ref)
			continue
		}
		if !t.worklist.Push(ref, path) {
			t.logger.Debug("already marked", "ref", ref)
		}
		t.provenance.Add(ref, path)
	}
	return nil
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
