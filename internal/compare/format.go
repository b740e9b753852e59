package compare

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Table column widths, matching the report layout:
// Source | Raw HTML | Snapshot | Ratio | Saved.
const (
	labelWidth = 35
	countWidth = 12
	ratioWidth = 8

	// URL labels drop the scheme and get truncated so they fit the
	// label column with room for the padding space.
	urlLabelMax = 33
)

// FormatNumber renders a token count compactly: 999 stays "999",
// 1500 becomes "1.5k", 2000000 becomes "2.0M".
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

// FormatPercent renders the savings implied by a snapshot/raw ratio to
// one decimal place. Negative savings (snapshot larger than raw) render
// as a negative percentage, which is a valid outcome.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", (1.0-ratio)*100)
}

// IsURL reports whether an input argument names a live URL rather than
// a local file.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// DisplayLabel derives the table label for an input: the basename for
// file paths, the scheme-stripped and truncated remainder for URLs.
func DisplayLabel(input string) string {
	if !IsURL(input) {
		return filepath.Base(input)
	}
	trimmed := input
	if i := strings.Index(input, "//"); i >= 0 {
		trimmed = input[i+2:]
	}
	return truncate(trimmed, urlLabelMax)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

func formatRow(label string, m Metrics) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s",
		labelWidth, truncate(label, labelWidth),
		countWidth, FormatNumber(m.RawTokens),
		countWidth, FormatNumber(m.SnapshotTokens),
		ratioWidth, fmt.Sprintf("%.2fx", m.Ratio()),
		ratioWidth, FormatPercent(m.Ratio()))
}
