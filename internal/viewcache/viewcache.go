// Package viewcache stores rendered views by path so mutations can mark them
// stale. Invalidation is fire-and-forget; a miss just means the view is
// recomputed on next access.
package viewcache

import "time"

const DefaultTTL = 5 * time.Minute

// Invalidator marks a previously rendered view as stale.
type Invalidator interface {
	Invalidate(path string)
}

// Store is a view cache keyed by request path.
type Store interface {
	Invalidator

	Get(path string) ([]byte, bool)
	Set(path string, payload []byte, ttl time.Duration)
}
