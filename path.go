package navcache

// SeedContent is the payload for the deepest node an update path touches:
// the identity of the incoming segment, its rendered output, nested seeds
// per slot (consumed by the deep fill, not by the merge engine itself), and
// a loading placeholder.
type SeedContent struct {
	Segment  Segment
	Rendered any
	Slots    map[string]*SeedContent
	Loading  any
}

// PathStep is one (slot, segment) hop of a FlightPath. The terminal step
// additionally carries the seed content, the router-state patch for the
// subtree it lands on, and a page head fragment.
type PathStep struct {
	Slot    string
	Segment Segment
	Seed    *SeedContent
	Patch   *RouterState
	Head    any
}

// FlightPath is the ordered list of steps describing where an incoming
// partial update applies within the cache tree.
type FlightPath []PathStep

// Terminal reports whether exactly one step remains.
func (p FlightPath) Terminal() bool {
	return len(p) == 1
}

// Head returns the first step's slot name and segment.
func (p FlightPath) Head() (string, Segment) {
	return p[0].Slot, p[0].Segment
}

// Rest returns the path with its first step removed. Only defined when the
// path is not terminal.
func (p FlightPath) Rest() FlightPath {
	return p[1:]
}

// Parts returns the seed content, router-state patch and head fragment of
// the current step. Callers use the seed only on the terminal step.
func (p FlightPath) Parts() (*SeedContent, *RouterState, any) {
	return p[0].Seed, p[0].Patch, p[0].Head
}
