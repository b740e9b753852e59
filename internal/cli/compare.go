package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenscope/tokenscope/internal/cache"
	"github.com/tokenscope/tokenscope/internal/compare"
	"github.com/tokenscope/tokenscope/internal/config"
	"github.com/tokenscope/tokenscope/internal/errors"
	"github.com/tokenscope/tokenscope/internal/source"
	"github.com/tokenscope/tokenscope/internal/tokenizer"
)

type compareOptions struct {
	binary    string
	fixtures  string
	tokenizer string
	noCache   bool
	verbose   bool
}

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare [files or urls...]",
		Short: "Compare snapshot token counts against raw HTML",
		Long: `Runs the snapshot binary over each input, counts tokens on both the
raw HTML and the snapshot output, and prints a per-source table with
totals.

With no arguments, every *.html file under the fixtures directory is
compared (in name order), followed by one live example URL. Sources are
processed one at a time in input order; a source that fails to resolve
is reported on stderr and skipped, never aborting the run.`,
		Example: `  tokenscope compare                            # fixtures + live example
  tokenscope compare page.html other.html       # specific files
  tokenscope compare https://example.com        # live URL (launches a browser)
  tokenscope compare page.html https://example.com
  tokenscope compare --tokenizer approximate    # skip tiktoken`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.binary, "binary", "", "Path to the snapshot binary (default: auto-discover)")
	cmd.Flags().StringVar(&opts.fixtures, "fixtures", "", "Fixtures directory scanned when no inputs are given")
	cmd.Flags().StringVar(&opts.tokenizer, "tokenizer", "", "Counting strategy: auto, exact, or approximate")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Skip the fetched-HTML cache")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show resolution progress")

	return cmd
}

func runCompare(ctx context.Context, opts *compareOptions, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override the config file.
	if opts.binary != "" {
		cfg.Snapshot.Binary = opts.binary
	}
	if opts.fixtures != "" {
		cfg.FixturesDir = opts.fixtures
	}
	if opts.tokenizer != "" {
		cfg.Tokenizer.Strategy = opts.tokenizer
	}

	// Strategy selection happens exactly once, before any counting.
	counter, err := tokenizer.Select(cfg.Tokenizer.Strategy)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = source.DefaultInputs(cfg.FixturesDir, cfg.DefaultURL)
	}
	if len(inputs) == 0 {
		return errors.NoInputs()
	}

	binary, err := source.FindBinary(cfg.Snapshot.Binary)
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Println(dim("Snapshot binary: " + binary))
	}

	snapshotter := source.NewSnapshotter(binary)
	snapshotter.FileTimeout = cfg.Snapshot.FileTimeoutDuration()
	snapshotter.URLTimeout = cfg.Snapshot.URLTimeoutDuration()

	resolver := &source.Resolver{
		Snapshotter: snapshotter,
		Fetcher:     source.NewFetcher(cfg.Fetch.TimeoutDuration()),
	}
	if !opts.noCache {
		resolver.Cache = cache.New(config.NewPaths())
		resolver.CacheTTL = cfg.Cache.TTLDuration()
	}

	runner := &compare.Runner{
		Counter:  counter,
		Resolver: resolver,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}
	return runner.Run(ctx, inputs)
}
