// Package tokenizer counts tokens in text blobs for snapshot-vs-raw
// comparison. Two interchangeable strategies are provided: an exact
// byte-pair encoder (tiktoken) and a dependency-free approximation.
package tokenizer

import "fmt"

// Strategy counts tokens in a text blob.
type Strategy interface {
	// Count returns the number of tokens in text. Pure and deterministic;
	// always >= 0, and 0 for the empty string.
	Count(text string) int

	// Name returns a human-readable label for the report header (for logging)
	Name() string
}

// Strategy preference values accepted by Select.
const (
	PrefAuto        = "auto"
	PrefExact       = "exact"
	PrefApproximate = "approximate"
)

// Select resolves the token counting strategy once at startup.
//
// With PrefAuto the exact tiktoken strategy is used when its encoding
// data initializes, otherwise Select falls back silently to the
// approximation; the active strategy is surfaced via Name() in the
// report, not as an error. PrefExact propagates the initialization
// error instead of falling back.
func Select(pref string) (Strategy, error) {
	switch pref {
	case "", PrefAuto:
		if exact, err := NewExact(); err == nil {
			return exact, nil
		}
		return NewApproximate(), nil
	case PrefExact:
		return NewExact()
	case PrefApproximate:
		return NewApproximate(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer strategy %q (use auto, exact, or approximate)", pref)
	}
}
