package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))
}

func TestDefaultInputs_SortedHTMLOnly(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "blog.html")
	writeFixture(t, dir, "article.html")
	writeFixture(t, dir, "notes.txt")
	writeFixture(t, dir, filepath.Join("nested", "table.html"))

	inputs := DefaultInputs(dir, "https://www.wikipedia.org")

	assert.Equal(t, []string{
		filepath.Join(dir, "article.html"),
		filepath.Join(dir, "blog.html"),
		filepath.Join(dir, "nested", "table.html"),
		"https://www.wikipedia.org",
	}, inputs)
}

func TestDefaultInputs_MissingFixturesDir(t *testing.T) {
	inputs := DefaultInputs(filepath.Join(t.TempDir(), "absent"), "https://www.wikipedia.org")
	assert.Equal(t, []string{"https://www.wikipedia.org"}, inputs)
}

func TestDefaultInputs_NoFixturesNoURL(t *testing.T) {
	assert.Empty(t, DefaultInputs(filepath.Join(t.TempDir(), "absent"), ""))
}
