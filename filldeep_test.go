package navcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillDeepAttachesHeadAtLeaf(t *testing.T) {
	t.Parallel()
	f := NewFiller(nil)
	node := NewCacheNode()
	f.fillLazyItemsTillLeafWithHead(node, nil, &RouterState{Segment: PageSegment("")}, nil, "head", nil)
	require.Equal(t, "head", node.Head)
}

func TestFillDeepCreatesPendingNodes(t *testing.T) {
	t.Parallel()
	patch := &RouterState{
		Segment: StaticSegment("docs"),
		Slots: map[string]*RouterState{
			"children": {Segment: StaticSegment("guides"),
				Slots: map[string]*RouterState{
					"children": {Segment: PageSegment("")},
				}},
		},
	}

	f := NewFiller(nil)
	node := NewCacheNode()
	f.fillLazyItemsTillLeafWithHead(node, nil, patch, nil, "head", nil)

	guides := node.Slots["children"]["guides"]
	require.NotNil(t, guides)
	require.True(t, guides.Content.NotLoaded(), "no seed means a lazily fetched node")
	page := guides.Slots["children"][PageSegmentName]
	require.NotNil(t, page)
	require.True(t, page.Content.NotLoaded())
	require.Equal(t, "head", page.Head, "head lands on the deepest patched node")
}

func TestFillDeepUsesSeedData(t *testing.T) {
	t.Parallel()
	patch := &RouterState{
		Segment: StaticSegment("docs"),
		Slots: map[string]*RouterState{
			"children": {Segment: PageSegment("")},
		},
	}
	seed := &SeedContent{
		Segment: StaticSegment("docs"),
		Slots: map[string]*SeedContent{
			"children": {Segment: PageSegment(""), Rendered: "page-rsc", Loading: "page-spinner"},
		},
	}

	f := NewFiller(nil)
	node := NewCacheNode()
	f.fillLazyItemsTillLeafWithHead(node, nil, patch, seed, "head", nil)

	page := node.Slots["children"][PageSegmentName]
	require.NotNil(t, page)
	require.Equal(t, "page-rsc", page.Content.Value())
	require.Equal(t, "page-spinner", page.Loading)
	require.Equal(t, "head", page.Head)
}

func TestFillDeepReusablePrefetch(t *testing.T) {
	t.Parallel()
	prefetched := &CacheNode{
		Content: ResolvedContent("prefetched-rsc"),
		Head:    "prefetched-head",
		Slots:   map[string]SlotMap{},
	}
	existing := &CacheNode{
		Slots: map[string]SlotMap{
			"children": {PageSegmentName: prefetched},
		},
	}
	patch := &RouterState{
		Segment: StaticSegment("docs"),
		Slots: map[string]*RouterState{
			"children": {Segment: PageSegment("")},
		},
	}

	f := NewFiller(nil)

	// Without a reusable entry the prefetched node is discarded.
	node := NewCacheNode()
	f.fillLazyItemsTillLeafWithHead(node, existing, patch, nil, "head", nil)
	require.True(t, node.Slots["children"][PageSegmentName].Content.NotLoaded())

	// With one, its fields carry forward into a fresh node.
	entry := &PrefetchEntry{Kind: PrefetchAuto, Status: PrefetchReusable}
	node = NewCacheNode()
	f.fillLazyItemsTillLeafWithHead(node, existing, patch, nil, "head", entry)
	carried := node.Slots["children"][PageSegmentName]
	require.NotSame(t, prefetched, carried)
	require.Equal(t, "prefetched-rsc", carried.Content.Value())
}

func TestFillDeepDoesNotMutateExisting(t *testing.T) {
	t.Parallel()
	existing := newTestSource()
	before, err := Fingerprint(existing)
	require.NoError(t, err)

	patch := &RouterState{
		Segment: StaticSegment("root"),
		Slots: map[string]*RouterState{
			"children": {Segment: StaticSegment("docs")},
		},
	}
	node := NewCacheNode()
	NewFiller(nil).fillLazyItemsTillLeafWithHead(node, existing, patch, nil, "head", nil)

	after, err := Fingerprint(existing)
	require.NoError(t, err)
	require.Equal(t, before, after)
	require.False(t, sameSlotMap(node.Slots["children"], existing.Slots["children"]))
}
