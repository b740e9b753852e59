package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/tokenscope/tokenscope/internal/errors"
)

// Default timeouts for snapshot invocations. URL snapshots launch a
// browser, which takes longer than parsing a file on disk.
const (
	DefaultFileTimeout = 30 * time.Second
	DefaultURLTimeout  = 60 * time.Second
)

// binaryName is the external browser tool whose snapshot output gets
// measured.
const binaryName = "cortex-browser"

// Snapshotter invokes the external binary's snapshot operation and
// captures its standard output.
type Snapshotter struct {
	Binary      string
	FileTimeout time.Duration
	URLTimeout  time.Duration
}

// NewSnapshotter creates a Snapshotter with default timeouts.
func NewSnapshotter(binary string) *Snapshotter {
	return &Snapshotter{
		Binary:      binary,
		FileTimeout: DefaultFileTimeout,
		URLTimeout:  DefaultURLTimeout,
	}
}

// FindBinary locates the snapshot binary: an explicit path if given,
// else the release build under the working tree, else the debug build,
// else PATH.
func FindBinary(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.BinaryNotFound(explicit)
		}
		return explicit, nil
	}

	release := filepath.Join("target", "release", binaryName)
	if _, err := os.Stat(release); err == nil {
		return release, nil
	}
	debug := filepath.Join("target", "debug", binaryName)
	if _, err := os.Stat(debug); err == nil {
		return debug, nil
	}
	if path, err := exec.LookPath(binaryName); err == nil {
		return path, nil
	}

	return "", errors.BinaryNotFound(binaryName)
}

// SnapshotFile produces the snapshot for a local HTML file.
func (s *Snapshotter) SnapshotFile(ctx context.Context, path string) (string, error) {
	return s.run(ctx, path, s.FileTimeout, "snapshot", path)
}

// SnapshotURL produces the snapshot for a live URL. The --launch flag
// tells the binary to drive a real browser.
func (s *Snapshotter) SnapshotURL(ctx context.Context, url string) (string, error) {
	return s.run(ctx, url, s.URLTimeout, "snapshot", url, "--launch")
}

func (s *Snapshotter) run(ctx context.Context, input string, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s", timeout)
		} else if detail := strings.TrimSpace(stderr.String()); detail != "" {
			err = fmt.Errorf("%w: %s", err, detail)
		}
		return "", errors.SnapshotFailed(input, err)
	}

	return stdout.String(), nil
}
