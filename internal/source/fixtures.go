package source

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInputs lists the fixture HTML files in lexicographic order and
// appends the default live URL as a trailing example. Used when the
// compare run is given no explicit inputs.
func DefaultInputs(fixturesDir, defaultURL string) []string {
	var inputs []string

	if fixturesDir != "" {
		// **/*.html so fixtures can be organized in subdirectories.
		matches, err := doublestar.Glob(os.DirFS(fixturesDir), "**/*.html")
		if err == nil {
			sort.Strings(matches)
			for _, m := range matches {
				inputs = append(inputs, filepath.Join(fixturesDir, m))
			}
		}
	}

	if defaultURL != "" {
		inputs = append(inputs, defaultURL)
	}

	return inputs
}
