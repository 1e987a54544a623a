package navcache

import (
	"fmt"
	"reflect"
)

type fillMode int

const (
	fillFull fillMode = iota
	fillLoadingOnly
)

// Filler merges incoming partial updates into a navigation cache tree,
// copy-on-write. A destination tree handed to a fill must be exclusively
// owned by the caller; the source tree and everything reachable from it is
// only read, so older trees keep aliasing its nodes and slot maps.
type Filler struct {
	invalidate func(newNode, existing *CacheNode, patch *RouterState)
	fillDeep   func(newNode, existing *CacheNode, patch *RouterState, seed *SeedContent, head any, entry *PrefetchEntry)
	debug      bool
}

// Options configure a Filler. The zero value gives the default collaborators.
type Options struct {
	// Invalidate overrides the router-state invalidation run on a freshly
	// materialized node before it is filled.
	Invalidate func(newNode, existing *CacheNode, patch *RouterState)
	// FillDeep overrides the deep fill that populates not-yet-loaded
	// descendants and attaches head fragments.
	FillDeep func(newNode, existing *CacheNode, patch *RouterState, seed *SeedContent, head any, entry *PrefetchEntry)
	// Debug enables merge tracing.
	Debug bool
}

// NewFiller returns a Filler using the given options.
func NewFiller(options *Options) *Filler {
	f := Filler{
		invalidate: invalidateCacheByRouterState,
	}
	f.fillDeep = f.fillLazyItemsTillLeafWithHead
	if options != nil {
		if options.Invalidate != nil {
			f.invalidate = options.Invalidate
		}
		if options.FillDeep != nil {
			f.fillDeep = options.FillDeep
		}
		f.debug = options.Debug
	}
	return &f
}

// FillNewSubtree merges the update described by path into dst, reading src
// copy-on-write: rendered content, nested slot structure and head fragments
// are all filled in. Everything outside the path keeps referencing src's
// nodes.
func (f *Filler) FillNewSubtree(dst, src *CacheNode, path FlightPath, entry *PrefetchEntry) {
	f.fill(dst, src, path, entry, fillFull)
}

// FillLoadingState is FillNewSubtree restricted to loading placeholders:
// the terminal node surfaces only the seed's loading value, with no content
// and no inherited slot structure.
func (f *Filler) FillLoadingState(dst, src *CacheNode, path FlightPath, entry *PrefetchEntry) {
	f.fill(dst, src, path, entry, fillLoadingOnly)
}

func (f *Filler) fill(dst, src *CacheNode, path FlightPath, entry *PrefetchEntry, mode fillMode) {
	if len(path) == 0 {
		panic("navcache: fill with empty flight path")
	}
	terminal := path.Terminal()
	slot, segment := path.Head()
	cacheKey := segment.CacheKey()
	if f.debug {
		fmt.Printf("filling %s/%s terminal=%v...\n", slot, cacheKey, terminal)
	}

	existingSlotMap, ok := src.Slots[slot]
	if !ok {
		// The existing cache holds nothing under this slot, so there is
		// nothing to merge onto; the missing segment triggers a lazy fetch
		// downstream.
		return
	}

	slotMap := dst.Slots[slot]
	if slotMap == nil || sameSlotMap(slotMap, existingSlotMap) {
		slotMap = existingSlotMap.fork()
		dst.Slots[slot] = slotMap
	}

	existingChild := existingSlotMap[cacheKey]
	child := slotMap[cacheKey]

	seed, patch, head := path.Parts()

	if terminal {
		// Materialize only when there is a seed and the slot entry is still
		// overwritable: absent, unloaded, or not yet forked from the source.
		// The three-way guard is load-bearing for repeated partial updates;
		// keep it as is.
		if seed == nil || (child != nil && !child.Content.NotLoaded() && child != existingChild) {
			return
		}
		next := &CacheNode{
			Loading: seed.Loading,
			Slots:   map[string]SlotMap{},
		}
		if mode == fillFull {
			next.Content = ResolvedContent(seed.Rendered)
			if existingChild != nil {
				next.Slots = inheritSlots(existingChild)
				f.invalidate(next, existingChild, patch)
			}
			f.fillDeep(next, existingChild, patch, seed, head, entry)
		}
		slotMap[cacheKey] = next
		return
	}

	if child == nil || existingChild == nil {
		// The existing tree cannot support descending further.
		return
	}
	if child == existingChild {
		child = child.clone()
		slotMap[cacheKey] = child
	}
	f.fill(child, existingChild, path.Rest(), entry, mode)
}

// sameSlotMap reports whether a and b are the same map object, i.e. still
// aliased rather than forked.
func sameSlotMap(a, b SlotMap) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
