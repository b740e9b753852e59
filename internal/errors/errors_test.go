package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryNotFound(t *testing.T) {
	err := BinaryNotFound("target/release/cortex-browser")

	assert.Equal(t, ErrBinaryNotFound, err.Code)
	assert.Contains(t, err.Error(), "target/release/cortex-browser")
	assert.Contains(t, err.Hint, "--binary")
}

func TestSnapshotFailed(t *testing.T) {
	cause := errors.New("exit status 1: parse error")
	err := SnapshotFailed("blog.html", cause)

	assert.Equal(t, ErrSnapshotFailed, err.Code)
	assert.Contains(t, err.Error(), "snapshot failed for blog.html")
	assert.Contains(t, err.Error(), "parse error")

	// Test error unwrapping
	unwrapped := err.Unwrap()
	require.NotNil(t, unwrapped)
	assert.Equal(t, cause, unwrapped)
}

func TestFetchFailed(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := FetchFailed("https://example.com", cause)

	assert.Equal(t, ErrFetchFailed, err.Code)
	assert.Contains(t, err.Error(), "https://example.com")
	assert.True(t, errors.Is(err, cause))
}

func TestNoInputs(t *testing.T) {
	err := NoInputs()

	assert.Equal(t, ErrNoInputs, err.Code)
	assert.Contains(t, err.Error(), "no fixtures found")
	assert.NotEmpty(t, err.Hint)
	assert.Nil(t, err.Unwrap())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrSourceNotFound, "cannot read page.html", "", cause)

	assert.Contains(t, err.Error(), "cannot read page.html")
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, cause, errors.Unwrap(err))
}
