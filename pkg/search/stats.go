package search

// Counters reported by every search in this module
type Stats struct {
	// States removed from the frontier and expanded
	Explored int
	// States created as successors
	Generated int
	// Deepest level reached
	MaxDepth int
	// Recursive calls (depth-first searches only)
	Calls int
	// Wall time of the search in milliseconds
	TimeMs int
	// Why the search ended, StopNone when it ran to completion
	StopReason StopReason
}

// Observe a node at given depth
func (s *Stats) Visit(depth int) {
	s.Explored++
	s.MaxDepth = max(s.MaxDepth, depth)
}
