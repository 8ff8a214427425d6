package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/golazo"
	"github.com/fwojciec/golazo/crawl"
	"github.com/fwojciec/golazo/goquery"
	golazohttp "github.com/fwojciec/golazo/http"
	"github.com/fwojciec/golazo/rod"
	golazoslog "github.com/fwojciec/golazo/slog"
	"github.com/fwojciec/golazo/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher chosen by flags. Set before calling Run().
	Fetcher golazo.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("golazo"),
		kong.Description("Football results, standings and stream links scraped into JSON."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'golazo --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	// The channel directory is static and needs no fetcher.
	if kongCtx.Command() == "channels" {
		return kongCtx.Run(deps)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		if fetcher, err = cli.newFetcher(); err != nil {
			return err
		}
		defer fetcher.Close()
	}
	if cli.Retries > 0 {
		fetcher = crawl.NewRetryFetcher(fetcher, cli.Retries, logger)
	}
	fetcher = golazoslog.NewLoggingFetcher(fetcher, logger)

	scraper := &crawl.Scraper{
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(cli.BaseURL, goquery.WithLogger(logger)),
		Extractor:   trafilatura.NewExtractor(),
		StreamURL:   cli.StreamURL,
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}
	deps.Matches = golazoslog.NewLoggingMatchService(scraper, logger)
	deps.Standings = golazoslog.NewLoggingStandingsService(scraper, logger)
	deps.Fichas = golazoslog.NewLoggingFichaService(scraper, logger)
	deps.Teams = golazoslog.NewLoggingTeamService(scraper, logger)
	deps.Streams = golazoslog.NewLoggingStreamService(scraper, logger)

	return kongCtx.Run(deps)
}

// newFetcher builds the fetcher selected by --fetcher.
func (c *CLI) newFetcher() (golazo.Fetcher, error) {
	switch c.Fetcher {
	case "rod":
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(c.Timeout),
			// Any of these marks a page whose content has rendered.
			rod.WithWaitSelector("iframe#videoFrame, .card-container, table"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return f, nil
	default:
		return golazohttp.NewFetcher(golazohttp.WithTimeout(c.Timeout)), nil
	}
}

// newLogger returns a logger writing to w in the given level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
