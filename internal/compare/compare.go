// Package compare computes and reports token savings of condensed page
// snapshots against the raw HTML they were produced from.
package compare

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tokenscope/tokenscope/internal/errors"
	"github.com/tokenscope/tokenscope/internal/tokenizer"
)

// Source supplies one comparison input: a display label plus the raw
// document text and the condensed snapshot text. Sources are consumed
// once and not retained after their row is printed.
type Source struct {
	Label    string
	Raw      string
	Snapshot string
}

// Resolver turns an input argument (file path or URL) into a Source.
// Implemented by internal/source; faked in tests.
type Resolver interface {
	Resolve(ctx context.Context, input string) (*Source, error)
}

// Metrics holds the token counts for one source. Ratio and savings are
// derived, never stored.
type Metrics struct {
	RawTokens      int
	SnapshotTokens int
}

// Ratio returns snapshot tokens over raw tokens, or 0 when there are no
// raw tokens. A zero raw count is a defined outcome, not an error.
func (m Metrics) Ratio() float64 {
	if m.RawTokens == 0 {
		return 0.0
	}
	return float64(m.SnapshotTokens) / float64(m.RawTokens)
}

// PercentSaved returns the reduction as a percentage; negative when the
// snapshot is larger than the raw input.
func (m Metrics) PercentSaved() float64 {
	return (1.0 - m.Ratio()) * 100
}

// Saved returns the number of tokens saved.
func (m Metrics) Saved() int {
	return m.RawTokens - m.SnapshotTokens
}

// Runner resolves sources in input order, counts tokens on each side,
// and writes the comparison table. Processing is strictly sequential;
// the running totals are the only state carried across sources.
type Runner struct {
	Counter  tokenizer.Strategy
	Resolver Resolver
	Out      io.Writer // table and summary
	Err      io.Writer // per-source error lines
}

// Run produces the report for the given inputs. A failing source is
// printed as an error line and excluded from totals; it never aborts
// the run. The only error returned is the absence of any input.
func (r *Runner) Run(ctx context.Context, inputs []string) error {
	if len(inputs) == 0 {
		return errors.NoInputs()
	}

	fmt.Fprintf(r.Out, "Tokenizer: %s\n\n", r.Counter.Name())

	header := fmt.Sprintf("%-*s %*s %*s %*s %*s",
		labelWidth, "Source",
		countWidth, "Raw HTML",
		countWidth, "Snapshot",
		ratioWidth, "Ratio",
		ratioWidth, "Saved")
	rule := strings.Repeat("─", utf8.RuneCountInString(header))
	fmt.Fprintln(r.Out, header)
	fmt.Fprintln(r.Out, rule)

	var total Metrics
	rows := 0

	for _, input := range inputs {
		src, err := r.Resolver.Resolve(ctx, input)
		if err != nil {
			fmt.Fprintf(r.Err, "%-*s %*s   %v\n",
				labelWidth, truncate(DisplayLabel(input), labelWidth),
				countWidth, "ERROR", err)
			continue
		}

		m := Metrics{
			RawTokens:      r.Counter.Count(src.Raw),
			SnapshotTokens: r.Counter.Count(src.Snapshot),
		}
		total.RawTokens += m.RawTokens
		total.SnapshotTokens += m.SnapshotTokens
		rows++

		fmt.Fprintln(r.Out, formatRow(src.Label, m))
	}

	// The total ratio is derived from the two sums, never averaged
	// across per-row ratios.
	if rows > 1 && total.RawTokens > 0 {
		fmt.Fprintln(r.Out, rule)
		fmt.Fprintln(r.Out, formatRow("TOTAL", total))
	}

	r.printSummary(total)
	return nil
}

// printSummary writes the trailing totals with full, comma-grouped
// integers under the table.
func (r *Runner) printSummary(total Metrics) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(r.Out)
	fmt.Fprintf(r.Out, "Raw HTML tokens:    %s\n", p.Sprintf("%d", total.RawTokens))
	fmt.Fprintf(r.Out, "Snapshot tokens:    %s\n", p.Sprintf("%d", total.SnapshotTokens))
	if total.RawTokens > 0 {
		fmt.Fprintf(r.Out, "Tokens saved:       %s (%s reduction)\n",
			p.Sprintf("%d", total.Saved()), FormatPercent(total.Ratio()))
	}
}
