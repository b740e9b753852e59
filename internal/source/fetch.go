package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/tokenscope/tokenscope/internal/errors"
)

// DefaultFetchTimeout bounds a single raw HTML fetch.
const DefaultFetchTimeout = 30 * time.Second

// userAgent mirrors a desktop browser; some sites refuse the Go and
// curl defaults outright.
const userAgent = "Mozilla/5.0"

// Fetcher retrieves raw HTML for a URL. It prefers curl when present
// (curl follows redirects and uses the platform TLS store), falling
// back to net/http.
type Fetcher struct {
	Timeout time.Duration

	// CurlPath is the resolved curl binary; empty disables the curl
	// path entirely.
	CurlPath string

	// Client is the fallback HTTP client.
	Client *http.Client
}

// NewFetcher creates a Fetcher, probing PATH for curl once.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	curl, _ := exec.LookPath("curl")
	return &Fetcher{
		Timeout:  timeout,
		CurlPath: curl,
		Client:   &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw document text for a URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.CurlPath != "" {
		if body, err := f.fetchCurl(ctx, url); err == nil && body != "" {
			return body, nil
		}
	}

	body, err := f.fetchHTTP(ctx, url)
	if err != nil {
		return "", errors.FetchFailed(url, err)
	}
	return body, nil
}

// fetchCurl shells out to curl with the transfer bounded by -m; the
// outer context gets a few seconds of grace for process startup.
func (f *Fetcher) fetchCurl(ctx context.Context, url string) (string, error) {
	secs := int(f.Timeout.Seconds())
	if secs < 1 {
		secs = 1
	}

	ctx, cancel := context.WithTimeout(ctx, f.Timeout+5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.CurlPath,
		"-sL", "-m", strconv.Itoa(secs), "-A", userAgent, url)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: f.Timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Invalid UTF-8 bytes are replaced rather than failing the fetch.
	return strings.ToValidUTF8(string(data), "�"), nil
}
