package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/trellodoc"
	"github.com/fwojciec/trellodoc/fs"
	"github.com/fwojciec/trellodoc/goquery"
	trellohttp "github.com/fwojciec/trellodoc/http"
	trelloslog "github.com/fwojciec/trellodoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("trellodoc"),
		kong.Description("Generate a JSON descriptor of the Trello API from its HTML documentation"),
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := trellohttp.NewFetcher()
	defer fetcher.Close()

	var writer trellodoc.ConfigWriter
	if cli.Output == "-" {
		writer = fs.NewStreamWriter(stdout)
	} else {
		writer = fs.NewWriter(cli.Output)
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   trelloslog.NewLoggingFetcher(fetcher, logger),
		Extractor: trelloslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Writer:    writer,
		Regions:   trellodoc.Regions,
		DocsURL:   cli.BaseURL,
	}

	cmd := &GenerateCmd{
		Output:  cli.Output,
		Verbose: cli.Verbose,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output  string `short:"o" default:"trello.json" help:"Output file path (- writes to stdout)"`
	Verbose bool   `short:"v" help:"Narrate progress"`
	BaseURL string `name:"base-url" default:"https://trello.com/docs/api" help:"Base URL of the documentation site"`
}
