package navcache_test

import (
	"fmt"

	navcache "github.com/jrhy/navcache"
)

func Example() {
	// The current cache: a root layout whose docs section has not rendered
	// its page yet.
	docs := &navcache.CacheNode{
		Content: navcache.ResolvedContent("<DocsLayout>"),
		Slots: map[string]navcache.SlotMap{
			"children": {navcache.PageSegmentName: navcache.NewCacheNode()},
		},
	}
	current := &navcache.CacheNode{
		Content: navcache.ResolvedContent("<RootLayout>"),
		Slots: map[string]navcache.SlotMap{
			"children": {"docs": docs},
		},
	}

	// The server answered a navigation to /docs with fresh subtree data.
	segment := navcache.StaticSegment("docs")
	path := navcache.FlightPath{{
		Slot:    "children",
		Segment: segment,
		Seed: &navcache.SeedContent{
			Segment:  segment,
			Rendered: "<DocsLayout v2>",
			Slots: map[string]*navcache.SeedContent{
				"children": {
					Segment:  navcache.PageSegment(""),
					Rendered: "<DocsPage>",
				},
			},
		},
		Patch: &navcache.RouterState{
			Segment: segment,
			Slots: map[string]*navcache.RouterState{
				"children": {Segment: navcache.PageSegment("")},
			},
		},
		Head: "<title>Docs</title>",
	}}

	next := navcache.NewCacheNode()
	navcache.NewFiller(nil).FillNewSubtree(next, current, path, nil)

	merged := next.Slots["children"]["docs"]
	fmt.Println(merged.Content.Value())
	fmt.Println(merged.Slots["children"][navcache.PageSegmentName].Content.Value())
	fmt.Println(merged.Slots["children"][navcache.PageSegmentName].Head)
	// Output:
	// <DocsLayout v2>
	// <DocsPage>
	// <title>Docs</title>
}
