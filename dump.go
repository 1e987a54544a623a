package navcache

import (
	"fmt"
	"sort"
)

// TreeString renders a subtree for debugging, one slot entry per line,
// children indented under their slot and cache key.
func TreeString(node *CacheNode) string {
	return treeString(node, "")
}

func treeString(node *CacheNode, indent string) string {
	res := indent + describeNode(node) + "\n"
	names := make([]string, 0, len(node.Slots))
	for name := range node.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sm := node.Slots[name]
		keys := make([]string, 0, len(sm))
		for key := range sm {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			res += fmt.Sprintf("%s  %s/%s {\n", indent, name, key)
			res += treeString(sm[key], indent+"   ")
			res += indent + "  }\n"
		}
	}
	return res
}

func describeNode(node *CacheNode) string {
	var state string
	switch {
	case node.Content.Resolved():
		state = fmt.Sprintf("content=%v", node.Content.Value())
	case node.Content.NotLoaded():
		state = "pending"
	default:
		state = "empty"
	}
	if node.Loading != nil {
		state += " loading"
	}
	if node.Head != nil {
		state += " head"
	}
	return state
}
