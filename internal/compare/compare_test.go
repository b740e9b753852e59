package compare

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tserrors "github.com/tokenscope/tokenscope/internal/errors"
)

// byteCounter counts one token per byte, which makes row arithmetic
// trivial to verify.
type byteCounter struct{}

func (byteCounter) Count(text string) int { return len(text) }
func (byteCounter) Name() string          { return "bytes" }

type fakeResolver struct {
	sources map[string]*Source
	errs    map[string]error
}

func (f *fakeResolver) Resolve(_ context.Context, input string) (*Source, error) {
	if err, ok := f.errs[input]; ok {
		return nil, err
	}
	src, ok := f.sources[input]
	if !ok {
		return nil, fmt.Errorf("unexpected input %q", input)
	}
	return src, nil
}

func text(n int) string { return strings.Repeat("x", n) }

func runFake(t *testing.T, resolver Resolver, inputs []string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	r := &Runner{
		Counter:  byteCounter{},
		Resolver: resolver,
		Out:      &out,
		Err:      &errOut,
	}
	err = r.Run(context.Background(), inputs)
	return out.String(), errOut.String(), err
}

func TestRun_SingleSource(t *testing.T) {
	resolver := &fakeResolver{sources: map[string]*Source{
		"blog.html": {Label: "blog.html", Raw: text(100), Snapshot: text(40)},
	}}

	out, errOut, err := runFake(t, resolver, []string{"blog.html"})
	require.NoError(t, err)
	assert.Empty(t, errOut)

	assert.Contains(t, out, "Tokenizer: bytes")
	assert.Contains(t, out, "blog.html")
	assert.Contains(t, out, "0.40x")
	assert.Contains(t, out, "60.0%")

	// One row means no TOTAL line.
	assert.NotContains(t, out, "TOTAL")
	assert.Contains(t, out, "Raw HTML tokens:    100")
	assert.Contains(t, out, "Snapshot tokens:    40")
	assert.Contains(t, out, "Tokens saved:       60 (60.0% reduction)")
}

func TestRun_TotalRatioIsSumOverSum(t *testing.T) {
	// Rows of differing magnitude where sum-then-divide (940/1100 = 0.85)
	// disagrees with the mean of per-row ratios ((0.40+0.90)/2 = 0.65).
	resolver := &fakeResolver{sources: map[string]*Source{
		"small.html": {Label: "small.html", Raw: text(100), Snapshot: text(40)},
		"large.html": {Label: "large.html", Raw: text(1000), Snapshot: text(900)},
	}}

	out, _, err := runFake(t, resolver, []string{"small.html", "large.html"})
	require.NoError(t, err)

	require.Contains(t, out, "TOTAL")
	totalLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "TOTAL") {
			totalLine = line
		}
	}
	require.NotEmpty(t, totalLine)

	assert.Contains(t, totalLine, "0.85x")
	assert.NotContains(t, totalLine, "0.65x")
	assert.Contains(t, totalLine, "1.1k") // 1100 raw
	assert.Contains(t, totalLine, "940")

	assert.Contains(t, out, "Raw HTML tokens:    1,100")
	assert.Contains(t, out, "Tokens saved:       160 (14.5% reduction)")
}

func TestRun_FailureIsolation(t *testing.T) {
	resolver := &fakeResolver{
		sources: map[string]*Source{
			"a.html": {Label: "a.html", Raw: text(200), Snapshot: text(50)},
			"c.html": {Label: "c.html", Raw: text(300), Snapshot: text(150)},
		},
		errs: map[string]error{
			"b.html": tserrors.SnapshotFailed("b.html", fmt.Errorf("exit status 1")),
		},
	}

	out, errOut, err := runFake(t, resolver, []string{"a.html", "b.html", "c.html"})
	require.NoError(t, err, "a failing source must not abort the run")

	assert.Contains(t, out, "a.html")
	assert.Contains(t, out, "c.html")
	assert.NotContains(t, out, "b.html")

	assert.Contains(t, errOut, "b.html")
	assert.Contains(t, errOut, "ERROR")
	assert.Contains(t, errOut, "exit status 1")

	// Totals reflect only the sources that resolved.
	assert.Contains(t, out, "Raw HTML tokens:    500")
	assert.Contains(t, out, "Snapshot tokens:    200")
}

func TestRun_AllSourcesFail(t *testing.T) {
	resolver := &fakeResolver{errs: map[string]error{
		"a.html": fmt.Errorf("gone"),
		"b.html": fmt.Errorf("also gone"),
	}}

	out, errOut, err := runFake(t, resolver, []string{"a.html", "b.html"})
	require.NoError(t, err, "failures after processing began are not fatal")

	assert.Contains(t, errOut, "a.html")
	assert.Contains(t, errOut, "b.html")
	assert.NotContains(t, out, "TOTAL")
	assert.Contains(t, out, "Raw HTML tokens:    0")
}

func TestRun_NoInputsIsFatal(t *testing.T) {
	_, _, err := runFake(t, &fakeResolver{}, nil)
	require.Error(t, err)

	var terr *tserrors.TokenscopeError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, tserrors.ErrNoInputs, terr.Code)
}

func TestRun_ZeroRawTokens(t *testing.T) {
	resolver := &fakeResolver{sources: map[string]*Source{
		"empty.html": {Label: "empty.html", Raw: "", Snapshot: text(10)},
	}}

	out, _, err := runFake(t, resolver, []string{"empty.html"})
	require.NoError(t, err)

	// Ratio is defined as 0.0 when there is nothing to divide by.
	assert.Contains(t, out, "0.00x")
}

func TestRun_SnapshotLargerThanRaw(t *testing.T) {
	resolver := &fakeResolver{sources: map[string]*Source{
		"odd.html": {Label: "odd.html", Raw: text(100), Snapshot: text(125)},
	}}

	out, _, err := runFake(t, resolver, []string{"odd.html"})
	require.NoError(t, err)

	assert.Contains(t, out, "1.25x")
	assert.Contains(t, out, "-25.0%")
}
