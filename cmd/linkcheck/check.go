package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/etree"
	"github.com/fwojciec/linkcheck/fs"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if c.Skip {
		deps.Logger.Info("skipping link check")
		return nil
	}

	result, err := deps.Checker.Check(deps.Ctx, c.StartFile)
	if err != nil {
		return err
	}

	if err := linkcheck.WriteReport(deps.Stdout, result); err != nil {
		return err
	}
	deps.Logger.Info("processed files", "count", result.Processed())

	if c.JUnit != "" {
		if err := writeJUnit(c.JUnit, result); err != nil {
			return err
		}
	}

	if deps.Runs != nil {
		if err := deps.Runs.CreateRun(deps.Ctx, linkcheck.NewRun(result)); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	if !result.HasBadLinks() {
		return nil
	}
	if c.ReportOnly {
		deps.Logger.Warn("not failing build for bad links as configured", "count", len(result.BadLinks))
		return nil
	}
	return &linkcheck.FailureError{Count: len(result.BadLinks)}
}

func writeJUnit(path string, result *linkcheck.Result) error {
	if err := fs.WriteFile(path, func(w io.Writer) error {
		return etree.WriteJUnit(w, result)
	}); err != nil {
		return fmt.Errorf("writing JUnit report to %q: %w", path, err)
	}
	return nil
}
