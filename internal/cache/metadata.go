// Package cache stores fetched raw HTML between runs so repeated
// comparisons against live URLs don't refetch unchanged pages.
// Snapshot output is never cached; the binary under measurement always
// runs.
package cache

import (
	"fmt"
	"time"
)

// Metadata stores fetch state for staleness checks.
type Metadata struct {
	URL         string    `json:"url"`
	LastFetched time.Time `json:"last_fetched"`
}

// IsStale returns true if the cached fetch is at or older than the TTL.
func (m *Metadata) IsStale(ttl time.Duration) bool {
	return time.Since(m.LastFetched) >= ttl
}

// Age returns human-readable age string.
func (m *Metadata) Age() string {
	duration := time.Since(m.LastFetched)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
