package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/check"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Checker *check.Checker
	Runs    linkcheck.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `help:"Load flag values from a YAML file" placeholder:"FILE"`
	Debug     bool            `help:"Enable debug logging" env:"LINKCHECK_DEBUG"`
	HistoryDB string          `name:"history-db" help:"Record runs in this SQLite database" env:"LINKCHECK_HISTORY_DB" placeholder:"PATH"`

	Check   CheckCmd   `cmd:"" default:"withargs" help:"Check the links reachable from a start document"`
	History HistoryCmd `cmd:"" help:"List recorded runs, newest first"`
}

// CheckCmd is the "check" subcommand, run when no command is given.
type CheckCmd struct {
	StartFile string `arg:"" name:"start-file" help:"Local document to start from"`

	DefaultFile     string  `name:"default-file" default:"index.html" env:"LINKCHECK_DEFAULT_FILE" help:"Document used when a link names a directory"`
	FailOnLocalhost bool    `name:"fail-on-localhost" default:"true" negatable:"" env:"LINKCHECK_FAIL_ON_LOCALHOST" help:"Treat links to localhost as bad"`
	FailOnBadURLs   bool    `name:"fail-on-bad-urls" env:"LINKCHECK_FAIL_ON_BAD_URLS" help:"Treat malformed or unreachable URLs as bad"`
	ReportOnly      bool    `name:"report-only" env:"LINKCHECK_REPORT_ONLY" help:"Report bad links without failing"`
	Skip            bool    `env:"LINKCHECK_SKIP" help:"Skip the check entirely"`
	Encoding        string  `default:"UTF-8" env:"LINKCHECK_ENCODING" help:"Character encoding of local documents"`
	Concurrency     int     `short:"c" default:"3" env:"LINKCHECK_CONCURRENCY" help:"Concurrent URL probe limit"`
	Rate            float64 `default:"0" env:"LINKCHECK_RATE" help:"Probes per second per host (0 for unlimited)"`
	UserAgent       string  `name:"user-agent" default:"linkcheck" env:"LINKCHECK_USER_AGENT" help:"User-Agent header for URL probes"`
	JUnit           string  `name:"junit" env:"LINKCHECK_JUNIT" help:"Write a JUnit XML report to this file" placeholder:"FILE"`

	Timeout time.Duration `default:"10s" env:"LINKCHECK_TIMEOUT" help:"Timeout for each URL probe"`
}

// Policy returns the validation policy configured by the flags.
func (c *CheckCmd) Policy() linkcheck.Policy {
	return linkcheck.Policy{
		DefaultDocument: c.DefaultFile,
		FailOnLocalhost: c.FailOnLocalhost,
		FailOnBadURLs:   c.FailOnBadURLs,
		ReportOnly:      c.ReportOnly,
		Skip:            c.Skip,
		Encoding:        c.Encoding,
	}
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	StartFile string `arg:"" optional:"" name:"start-file" help:"Only show runs for this start file"`
	Limit     int    `short:"n" default:"10" help:"Maximum number of runs to show"`
	Verbose   bool   `short:"v" help:"Show the bad links of each run"`
	ID        string `name:"id" help:"Show one run with the sources of its bad links"`
}
