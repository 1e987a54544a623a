package navcache

import "sort"

// DiffTrees invokes the callback for every slot entry where the two trees
// diverge. Subtrees still shared by reference are skipped without
// descending, which makes diffing two snapshots related by a merge cheap:
// only the merged path is walked. Either node handed to the callback may be
// nil, for entries present on one side only. The walk stops if the callback
// returns keepGoing==false.
func DiffTrees(oldTree, newTree *CacheNode, f func(path string, oldNode, newNode *CacheNode) (keepGoing bool)) {
	if oldTree == newTree {
		return
	}
	diffNodes("", oldTree, newTree, f)
}

func diffNodes(prefix string, oldNode, newNode *CacheNode, f func(string, *CacheNode, *CacheNode) bool) bool {
	for _, name := range slotNameUnion(oldNode, newNode) {
		var oldSM, newSM SlotMap
		if oldNode != nil {
			oldSM = oldNode.Slots[name]
		}
		if newNode != nil {
			newSM = newNode.Slots[name]
		}
		if sameSlotMap(oldSM, newSM) {
			continue
		}
		for _, key := range cacheKeyUnion(oldSM, newSM) {
			oldChild, newChild := oldSM[key], newSM[key]
			if oldChild == newChild {
				continue
			}
			path := prefix + "/" + name + "/" + key
			if !f(path, oldChild, newChild) {
				return false
			}
			if !diffNodes(path, oldChild, newChild, f) {
				return false
			}
		}
	}
	return true
}

func slotNameUnion(oldNode, newNode *CacheNode) []string {
	seen := map[string]bool{}
	if oldNode != nil {
		for name := range oldNode.Slots {
			seen[name] = true
		}
	}
	if newNode != nil {
		for name := range newNode.Slots {
			seen[name] = true
		}
	}
	return sortedKeys(seen)
}

func cacheKeyUnion(oldSM, newSM SlotMap) []string {
	seen := map[string]bool{}
	for key := range oldSM {
		seen[key] = true
	}
	for key := range newSM {
		seen[key] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
