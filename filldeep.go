package navcache

// fillLazyItemsTillLeafWithHead walks the router-state patch below a freshly
// materialized node, creating one node per (slot, segment) the patch names.
// Where the seed carries nested data the node is resolved from it; where it
// does not, a reusable prefetch entry lets the existing node's fields carry
// forward, and otherwise a bare not-yet-loaded node is created so rendering
// can trigger a lazy fetch. The head fragment lands on the node at the
// patch's leaf. Existing slot maps are forked, never mutated.
func (f *Filler) fillLazyItemsTillLeafWithHead(newNode, existing *CacheNode, patch *RouterState, seed *SeedContent, head any, entry *PrefetchEntry) {
	if patch.Leaf() {
		newNode.Head = head
		return
	}
	for slot, childState := range patch.Slots {
		cacheKey := childState.Segment.CacheKey()
		var childSeed *SeedContent
		if seed != nil {
			childSeed = seed.Slots[slot]
		}

		if existing != nil {
			if existingSlotMap, ok := existing.Slots[slot]; ok {
				forked := existingSlotMap.fork()
				existingChild := forked[cacheKey]
				var child *CacheNode
				switch {
				case childSeed != nil:
					// New data from the server.
					child = &CacheNode{
						Content: ResolvedContent(childSeed.Rendered),
						Loading: childSeed.Loading,
						Slots:   inheritSlots(existingChild),
					}
				case entry.Reusable() && existingChild != nil:
					// No new data, but the existing node came from a
					// still-reusable prefetch.
					child = existingChild.clone()
				default:
					// Nothing available; rendering will lazily fetch it.
					child = &CacheNode{Slots: inheritSlots(existingChild)}
				}
				forked[cacheKey] = child
				f.fillLazyItemsTillLeafWithHead(child, existingChild, childState, childSeed, head, entry)
				newNode.Slots[slot] = forked
				continue
			}
		}

		var child *CacheNode
		if childSeed != nil {
			child = &CacheNode{
				Content: ResolvedContent(childSeed.Rendered),
				Loading: childSeed.Loading,
				Slots:   map[string]SlotMap{},
			}
		} else {
			child = NewCacheNode()
		}
		if sm, ok := newNode.Slots[slot]; ok {
			sm[cacheKey] = child
		} else {
			newNode.Slots[slot] = SlotMap{cacheKey: child}
		}
		f.fillLazyItemsTillLeafWithHead(child, nil, childState, childSeed, head, entry)
	}
}
