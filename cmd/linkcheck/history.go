package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/linkcheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		return c.show(deps)
	}

	filter := linkcheck.RunFilter{Limit: c.Limit}
	if c.StartFile != "" {
		filter.StartFile = &c.StartFile
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  processed=%d  bad=%d  %s\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.StartFile, r.Processed, len(r.BadLinks), r.Fingerprint)
		if !c.Verbose {
			continue
		}
		for _, link := range r.BadLinks {
			fmt.Fprintf(deps.Stdout, "\t%s (%s)\n", link.Reference, link.Reason.Description())
		}
	}

	return nil
}

// show prints a single run with each bad link and its sources.
func (c *HistoryCmd) show(deps *Dependencies) error {
	r, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s  %s  %s  processed=%d  bad=%d  %s\n",
		r.ID, r.CreatedAt.Format(time.RFC3339), r.StartFile, r.Processed, len(r.BadLinks), r.Fingerprint)
	for _, link := range r.BadLinks {
		fmt.Fprintf(deps.Stdout, "\t%s (%s)\n", link.Reference, link.Reason.Description())
		for _, source := range link.Sources {
			fmt.Fprintf(deps.Stdout, "\t\t%s\n", source)
		}
	}
	return nil
}
