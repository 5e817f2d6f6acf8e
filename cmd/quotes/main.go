package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/quotes"
	"github.com/fwojciec/quotes/rod"
	"github.com/fwojciec/quotes/scrape"
	locslog "github.com/fwojciec/quotes/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Launcher acquires browser sessions. Defaults to a rod launcher with a
	// visible browser window when nil.
	Launcher quotes.Launcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quotes"),
		kong.Description("Print the quotes found on "+quotes.TargetURL),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	launcher := m.Launcher
	if launcher == nil {
		launcher = rod.NewLauncher()
	}

	scraper := scrape.NewScraper(locslog.NewLoggingLauncher(launcher, logger))
	result, err := scraper.Scrape(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, quotes.FormatQuotes(result))
	return nil
}

// newLogger returns a text logger on w tagged with a run ID, or a logger that
// discards everything when verbose is false.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil)).With("run", uuid.NewString())
}
