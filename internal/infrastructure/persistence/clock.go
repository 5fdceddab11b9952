// Package persistence implements the entity repositories on top of any
// repository.RecordStore, so the same code serves the in-memory and the
// postgres backends.
package persistence

import "time"

// Clock stamps server-owned creation times.
type Clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

func (c Clock) now() time.Time {
	if c == nil {
		return utcNow()
	}
	return c().UTC()
}
