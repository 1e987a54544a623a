package navcache

// RouterState is the compact patch describing a subtree's router state: the
// segment rendered at this level and the state of each named parallel slot
// below it. A state with no slots is a leaf.
type RouterState struct {
	Segment Segment
	Slots   map[string]*RouterState
}

// Leaf reports whether the state has no parallel slots below it.
func (rs *RouterState) Leaf() bool {
	return rs == nil || len(rs.Slots) == 0
}

// invalidateCacheByRouterState drops, for every slot the patch names, the
// entry for the patch's segment from newNode, so stale nested content under
// the incoming segment cannot leak into the new tree. The existing node's
// slot maps are forked, never mutated; only newNode is written.
func invalidateCacheByRouterState(newNode, existing *CacheNode, patch *RouterState) {
	if patch == nil {
		return
	}
	for slot, childState := range patch.Slots {
		existingSlotMap, ok := existing.Slots[slot]
		if !ok {
			continue
		}
		forked := existingSlotMap.fork()
		delete(forked, childState.Segment.CacheKey())
		newNode.Slots[slot] = forked
	}
}
