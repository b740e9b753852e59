// Package errors provides typed errors for tokenscope.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrBinaryNotFound ErrorCode = "BINARY_NOT_FOUND"
	ErrSnapshotFailed ErrorCode = "SNAPSHOT_FAILED"
	ErrFetchFailed    ErrorCode = "FETCH_FAILED"
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrCacheNotFound  ErrorCode = "CACHE_NOT_FOUND"
	ErrNoInputs       ErrorCode = "NO_INPUTS"
)

// TokenscopeError represents a typed error with user-friendly hints.
type TokenscopeError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *TokenscopeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TokenscopeError) Unwrap() error {
	return e.Cause
}

// New creates a new TokenscopeError.
func New(code ErrorCode, message, hint string) *TokenscopeError {
	return &TokenscopeError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new TokenscopeError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *TokenscopeError {
	return &TokenscopeError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/tokenscope/config.yaml",
	}
}

// BinaryNotFound returns an error for a missing snapshot binary.
func BinaryNotFound(path string) *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrBinaryNotFound,
		Message: fmt.Sprintf("snapshot binary not found: %s", path),
		Hint:    "Build cortex-browser with `make release`, or point --binary at an existing build",
	}
}

// SnapshotFailed returns an error for a failed snapshot invocation.
func SnapshotFailed(input string, cause error) *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrSnapshotFailed,
		Message: fmt.Sprintf("snapshot failed for %s", input),
		Cause:   cause,
	}
}

// FetchFailed returns an error for a failed HTML fetch.
func FetchFailed(url string, cause error) *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrFetchFailed,
		Message: fmt.Sprintf("failed to fetch %s", url),
		Hint:    "Check the URL and your network connection",
		Cause:   cause,
	}
}

// SourceNotFound returns an error for an unreadable source file.
func SourceNotFound(path string, cause error) *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrSourceNotFound,
		Message: fmt.Sprintf("cannot read source file: %s", path),
		Cause:   cause,
	}
}

// CacheNotFound returns an error when no cached fetch exists for a URL.
func CacheNotFound(url string) *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrCacheNotFound,
		Message: fmt.Sprintf("no cached fetch for %s", url),
	}
}

// NoInputs returns the fatal error for a run with nothing to compare.
func NoInputs() *TokenscopeError {
	return &TokenscopeError{
		Code:    ErrNoInputs,
		Message: "no fixtures found and no inputs provided",
		Hint:    "Pass HTML files or URLs, or add *.html files to the fixtures directory",
	}
}
