package navcache

import "strings"

// Reserved segment names. PageSegmentName marks the synthetic leaf segment
// that renders a page; DefaultSegmentName marks the fallback rendered when a
// parallel slot has no match.
const (
	PageSegmentName    = "__PAGE__"
	DefaultSegmentName = "__DEFAULT__"
)

// A Segment identifies one node within a route hierarchy: either a literal
// path component, or a dynamic parameter together with the value it matched.
type Segment struct {
	// Name is the literal segment, or the parameter name when Dynamic.
	Name string
	// Value is the matched value of a dynamic segment.
	Value string
	// MatchType distinguishes dynamic match kinds, e.g. "d" for plain
	// dynamic, "c" for catch-all, "oc" for optional catch-all.
	MatchType string
	Dynamic   bool
}

// StaticSegment returns the segment for a literal path component.
func StaticSegment(name string) Segment {
	return Segment{Name: name}
}

// DynamicSegment returns the segment for a matched route parameter.
func DynamicSegment(param, value, matchType string) Segment {
	return Segment{Name: param, Value: value, MatchType: matchType, Dynamic: true}
}

// PageSegment returns the synthetic page marker, carrying the given search
// parameters when non-empty.
func PageSegment(search string) Segment {
	if search == "" {
		return Segment{Name: PageSegmentName}
	}
	return Segment{Name: PageSegmentName + "?" + search}
}

// IsPage reports whether the segment is the synthetic page marker, with or
// without search parameters.
func (s Segment) IsPage() bool {
	return !s.Dynamic && strings.HasPrefix(s.Name, PageSegmentName)
}

// CacheKey returns the stable key the segment is stored under in a slot map.
// Distinct segments within one slot yield distinct keys. Dynamic segments
// key as "param|value|type", lowercased so that matches differing only in
// case collapse to the same entry.
func (s Segment) CacheKey() string {
	if s.Dynamic {
		return strings.ToLower(s.Name + "|" + s.Value + "|" + s.MatchType)
	}
	return s.Name
}

// CacheKeyWithoutSearch is CacheKey with search parameters stripped from
// page segments, so prefetch lookups hit regardless of query string.
func (s Segment) CacheKeyWithoutSearch() string {
	if s.IsPage() {
		return PageSegmentName
	}
	return s.CacheKey()
}
