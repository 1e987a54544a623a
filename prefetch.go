package navcache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// PrefetchKind says how a prefetch was requested.
type PrefetchKind string

const (
	// PrefetchAuto is the default, heuristically sized prefetch.
	PrefetchAuto PrefetchKind = "auto"
	// PrefetchFull requests the whole subtree eagerly.
	PrefetchFull PrefetchKind = "full"
	// PrefetchTemporary backs an in-flight navigation only.
	PrefetchTemporary PrefetchKind = "temporary"
)

// PrefetchStatus is the freshness of a prefetch entry.
type PrefetchStatus int

const (
	PrefetchFresh PrefetchStatus = iota
	PrefetchReusable
	PrefetchStale
	PrefetchExpired
)

// PrefetchEntry records one prefetched navigation. The merge engine treats
// entries as opaque apart from Reusable; the rest is bookkeeping for the
// surrounding router.
type PrefetchEntry struct {
	Kind   PrefetchKind
	Status PrefetchStatus
	// Tree and Node are the prefetched router state and cache subtree.
	Tree *RouterState
	Node *CacheNode
}

// Reusable reports whether deep fills may carry nodes attached to this
// entry forward instead of refetching them. Safe to call on a nil entry.
func (e *PrefetchEntry) Reusable() bool {
	return e != nil && e.Kind == PrefetchAuto && e.Status == PrefetchReusable
}

// PrefetchCache keeps recent prefetch entries. One cache can be shared by
// any number of trees.
type PrefetchCache struct {
	entries *lru.ARCCache
}

// NewPrefetchCache creates a new LRU-based prefetch cache of the given size.
func NewPrefetchCache(size int) *PrefetchCache {
	entries, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return &PrefetchCache{entries: entries}
}

// Put stores the entry under the given key, evicting older entries as
// needed.
func (p *PrefetchCache) Put(key string, entry *PrefetchEntry) {
	p.entries.Add(key, entry)
}

// Get retrieves the entry stored under the given key, if present.
func (p *PrefetchCache) Get(key string) (*PrefetchEntry, bool) {
	value, ok := p.entries.Get(key)
	if !ok {
		return nil, false
	}
	return value.(*PrefetchEntry), true
}

// Len returns the number of cached entries.
func (p *PrefetchCache) Len() int {
	return p.entries.Len()
}

// PrefetchKey derives the cache key for a route, joining segment keys with
// search parameters stripped so lookups hit regardless of query string.
func PrefetchKey(segments ...Segment) string {
	keys := make([]string, len(segments))
	for i, s := range segments {
		keys[i] = s.CacheKeyWithoutSearch()
	}
	return "/" + strings.Join(keys, "/")
}
