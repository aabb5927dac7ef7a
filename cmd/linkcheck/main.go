package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkcheck"
	"github.com/fwojciec/linkcheck/check"
	"github.com/fwojciec/linkcheck/goquery"
	lchttp "github.com/fwojciec/linkcheck/http"
	lcslog "github.com/fwojciec/linkcheck/slog"
	"github.com/fwojciec/linkcheck/sqlite"
)

// Exit codes.
const (
	exitOK       = 0
	exitBadLinks = 1
	exitError    = 2
)

// DefaultConfigFile is read, when present, before flags and environment.
const DefaultConfigFile = ".linkcheck.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a run error to the process exit code. Bad links exit 1 so
// callers can tell them apart from a check that could not complete.
func exitCode(err error) int {
	var failure *linkcheck.FailureError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &failure):
		return exitBadLinks
	default:
		return exitError
	}
}

// Main represents the program.
type Main struct {
	// SQLite database for run history, opened when --history-db is set.
	DB *sqlite.DB

	// Prober overrides the HTTP prober for end-to-end testing.
	Prober linkcheck.Prober
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkcheck"),
		kong.Description("Check the links of a local HTML document tree."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAML, DefaultConfigFile),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no start file specified. Run 'linkcheck --help' for usage")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := kongCtx.Command()

	deps.Logger = newLogger(stderr, cli.Debug)

	if cli.HistoryDB != "" {
		m.DB = sqlite.NewDB(cli.HistoryDB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open history database at %q: %w", cli.HistoryDB, err)
		}
		defer m.Close()

		deps.Runs = lcslog.NewLoggingRunService(sqlite.NewRunService(m.DB), deps.Logger)
	}

	if strings.HasPrefix(command, "history") && deps.Runs == nil {
		return linkcheck.Errorf(linkcheck.EINVALID, "--history-db is required for the history command")
	}

	if strings.HasPrefix(command, "check") && !cli.Check.Skip {
		checker, err := m.newChecker(cli, deps)
		if err != nil {
			return err
		}
		deps.Checker = checker
	}

	return kongCtx.Run(deps)
}

// newChecker wires a Checker from the check command flags.
func (m *Main) newChecker(cli *CLI, deps *Dependencies) (*check.Checker, error) {
	policy := cli.Check.Policy()
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := goquery.ValidateEncoding(policy.Encoding); err != nil {
		return nil, err
	}

	var extractor linkcheck.LinkExtractor = goquery.NewExtractor()

	var prober linkcheck.Prober
	if m.Prober != nil {
		prober = m.Prober
	} else {
		prober = lchttp.NewProber(
			lchttp.WithTimeout(cli.Check.Timeout),
			lchttp.WithUserAgent(cli.Check.UserAgent),
		)
	}

	if cli.Debug {
		extractor = lcslog.NewLoggingExtractor(extractor, deps.Logger)
		prober = lcslog.NewLoggingProber(prober, deps.Logger)
	}

	checker := &check.Checker{
		Extractor:   extractor,
		Prober:      prober,
		Logger:      deps.Logger,
		Policy:      policy,
		Concurrency: cli.Check.Concurrency,
	}
	if cli.Check.Rate > 0 {
		checker.RateLimiter = check.NewHostLimiter(cli.Check.Rate)
	}
	return checker, nil
}
