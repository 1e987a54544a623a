package navcache

type contentState uint8

const (
	contentNotLoaded contentState = iota
	contentNone
	contentResolved
)

// Content is the rendered output of a segment. It is a three-way value:
// not yet loaded (the zero value), explicitly absent, or resolved to a
// payload. The distinction matters to the merge engine: only a node whose
// content is still unloaded may be overwritten by a later partial update.
type Content struct {
	state contentState
	value any
}

// ResolvedContent returns content resolved to the given payload. A nil
// payload is the explicit no-content value.
func ResolvedContent(v any) Content {
	if v == nil {
		return Content{state: contentNone}
	}
	return Content{state: contentResolved, value: v}
}

// NoContent returns the explicit no-content value, distinct from the
// not-yet-loaded zero value.
func NoContent() Content {
	return Content{state: contentNone}
}

// NotLoaded reports whether the content has not been fetched yet.
func (c Content) NotLoaded() bool { return c.state == contentNotLoaded }

// Resolved reports whether the content holds a rendered payload.
func (c Content) Resolved() bool { return c.state == contentResolved }

// Value returns the rendered payload, or nil unless Resolved.
func (c Content) Value() any { return c.value }

// SlotMap maps segment cache keys to child nodes. Any number of trees may
// share one SlotMap by reference; a tree forks the map before its first
// write, so maps already visible through an older tree are never mutated.
type SlotMap map[string]*CacheNode

// fork returns a new SlotMap with the same entries. Children are aliased,
// not copied.
func (sm SlotMap) fork() SlotMap {
	forked := make(SlotMap, len(sm))
	for key, child := range sm {
		forked[key] = child
	}
	return forked
}

// CacheNode is one node of the navigation cache tree. Content and Head hold
// the final rendered output and page head fragment; the Prefetch variants
// hold speculative versions that may be promoted later. Loading is an
// optional placeholder shown while Content is unloaded. Slots fans out into
// the named parallel routes below this segment.
type CacheNode struct {
	Content         Content
	PrefetchContent any
	Head            any
	PrefetchHead    any
	Loading         any
	Slots           map[string]SlotMap
}

// NewCacheNode returns an empty node ready to receive a merge.
func NewCacheNode() *CacheNode {
	return &CacheNode{Slots: map[string]SlotMap{}}
}

// clone copies every field by value except Slots, which is forked one level
// deep: the clone gets its own slot-name map whose SlotMap values are still
// aliased to the original's. Deeper forking happens lazily, on write.
func (n *CacheNode) clone() *CacheNode {
	cloned := *n
	cloned.Slots = make(map[string]SlotMap, len(n.Slots))
	for name, sm := range n.Slots {
		cloned.Slots[name] = sm
	}
	return &cloned
}

// inheritSlots returns a fresh slot-name map aliasing the slot maps of
// existing, or an empty one when existing is nil.
func inheritSlots(existing *CacheNode) map[string]SlotMap {
	if existing == nil {
		return map[string]SlotMap{}
	}
	slots := make(map[string]SlotMap, len(existing.Slots))
	for name, sm := range existing.Slots {
		slots[name] = sm
	}
	return slots
}
