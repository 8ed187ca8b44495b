// Package zonecache holds the process-wide IngressZone lookup table shared
// between the IngressZone and Application controllers.
package zonecache

import (
	"sync"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

// Cache is a concurrency-safe map of zone name to IngressZone. There is a
// single writer (the IngressZone reconciler) and many concurrent readers
// (one per Application reconcile); reads never block each other and a
// write is atomic with respect to any single read.
//
// TODO: Application reconciles currently only observe zone changes at
// their next scheduled requeue or user edit. A reverse index from zone
// name to the set of Application keys referencing it would let the zone
// reconciler force those Applications to requeue immediately; building it
// needs an Application lister this cache does not have access to today.
type Cache struct {
	mu    sync.RWMutex
	zones map[string]*yakupv1.IngressZone
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{zones: make(map[string]*yakupv1.IngressZone)}
}

// Upsert inserts or replaces the cache entry for zone.Name.
func (c *Cache) Upsert(zone *yakupv1.IngressZone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zones[zone.Name] = zone.DeepCopy()
}

// Delete removes the cache entry for the named zone, if present. It is
// used when an IngressZone is deleted, so that Applications referencing a
// removed zone correctly see it as absent instead of stale.
func (c *Cache) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.zones, name)
}

// Snapshot returns a point-in-time copy of the cache contents, safe for the
// caller to read or hold onto without holding any lock: each zone is deep
// copied, so it shares no state with what a concurrent Upsert stores next.
// The snapshot may be stale by up to one watch event.
func (c *Cache) Snapshot() map[string]*yakupv1.IngressZone {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]*yakupv1.IngressZone, len(c.zones))
	for name, zone := range c.zones {
		out[name] = zone.DeepCopy()
	}
	return out
}
