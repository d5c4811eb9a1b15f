package internal

import "math"

// Distance below which two input points are considered the same site. This
// is only used for duplicate rejection; every topological decision goes
// through the exact predicates, which have no tolerance at all. Mixing the
// two would let round-off pick different diagonals on different runs, which
// an oracle cannot afford.
const Tolerance = 1e-9

func coincident(p, q Point) bool {
	return math.Hypot(p.X-q.X, p.Y-q.Y) < Tolerance
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a
// slightly rotated coordinate system, allowing us to assume no two distinct
// points are at the same height. The comparison is exact, not
// tolerance-based: it breaks cocircular ties, and those must resolve the
// same way regardless of insertion order.
func (p Point) Below(q Point) bool {
	if p.Y == q.Y {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (p Point) Above(q Point) bool {
	return !p.Below(q)
}

type EdgeStack []EdgeID

func (s *EdgeStack) Push(e EdgeID) {
	*s = append(*s, e)
}

func (s *EdgeStack) Pop() EdgeID {
	if len(*s) == 0 {
		return NoEdge
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}
