// Package source resolves compare inputs into raw/snapshot text pairs
// by reading files, shelling out to the snapshot binary, and fetching
// live URLs.
package source

import (
	"context"
	"os"
	"time"

	"github.com/tokenscope/tokenscope/internal/cache"
	"github.com/tokenscope/tokenscope/internal/compare"
	"github.com/tokenscope/tokenscope/internal/errors"
)

// Resolver implements compare.Resolver over the external collaborators:
// the filesystem, the snapshot binary, and the network.
type Resolver struct {
	Snapshotter *Snapshotter
	Fetcher     *Fetcher

	// Cache stores fetched HTML between runs; nil disables caching.
	Cache    *cache.Cache
	CacheTTL time.Duration
}

// Resolve turns one input argument into a resolved source. URLs are
// fetched and snapshotted live; anything else is read as a file path.
func (r *Resolver) Resolve(ctx context.Context, input string) (*compare.Source, error) {
	label := compare.DisplayLabel(input)

	if compare.IsURL(input) {
		raw, err := r.fetchRaw(ctx, input)
		if err != nil {
			return nil, err
		}
		snapshot, err := r.Snapshotter.SnapshotURL(ctx, input)
		if err != nil {
			return nil, err
		}
		return &compare.Source{Label: label, Raw: raw, Snapshot: snapshot}, nil
	}

	rawBytes, err := os.ReadFile(input)
	if err != nil {
		return nil, errors.SourceNotFound(input, err)
	}
	snapshot, err := r.Snapshotter.SnapshotFile(ctx, input)
	if err != nil {
		return nil, err
	}
	return &compare.Source{Label: label, Raw: string(rawBytes), Snapshot: snapshot}, nil
}

// fetchRaw returns the page HTML, consulting the fetch cache first.
func (r *Resolver) fetchRaw(ctx context.Context, url string) (string, error) {
	if r.Cache != nil {
		if content, meta, err := r.Cache.Read(url); err == nil && !meta.IsStale(r.CacheTTL) {
			return content, nil
		}
	}

	content, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if r.Cache != nil {
		// Best effort; a failed cache write must not fail the run.
		_ = r.Cache.Write(url, content, nil)
	}
	return content, nil
}
