package navcache

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Canonical one-way encoding of a subtree, consumed by Fingerprint. Slot
// names and cache keys are emitted sorted so the encoding is stable across
// map iteration order; payloads go through the pluggable marshal function.

func appendLength(buf []byte, n int) []byte {
	var tmp [binary.MaxVarintLen64]byte
	used := binary.PutUvarint(tmp[:], uint64(n))
	return append(buf, tmp[:used]...)
}

func appendString(buf []byte, s string) []byte {
	buf = appendLength(buf, len(s))
	return append(buf, s...)
}

func appendPayload(buf []byte, v any, marshal func(any) ([]byte, error)) ([]byte, error) {
	if v == nil {
		return append(buf, 0), nil
	}
	buf = append(buf, 1)
	body, err := marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	buf = appendLength(buf, len(body))
	return append(buf, body...), nil
}

func appendNode(buf []byte, node *CacheNode, marshal func(any) ([]byte, error)) ([]byte, error) {
	if node == nil {
		return append(buf, 0), nil
	}
	buf = append(buf, 1, byte(node.Content.state))
	var err error
	for _, payload := range []any{
		node.Content.value,
		node.PrefetchContent,
		node.Head,
		node.PrefetchHead,
		node.Loading,
	} {
		buf, err = appendPayload(buf, payload, marshal)
		if err != nil {
			return nil, err
		}
	}
	names := make([]string, 0, len(node.Slots))
	for name := range node.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	buf = appendLength(buf, len(names))
	for _, name := range names {
		buf = appendString(buf, name)
		sm := node.Slots[name]
		keys := make([]string, 0, len(sm))
		for key := range sm {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		buf = appendLength(buf, len(keys))
		for _, key := range keys {
			buf = appendString(buf, key)
			buf, err = appendNode(buf, sm[key], marshal)
			if err != nil {
				return nil, err
			}
		}
	}
	return buf, nil
}
