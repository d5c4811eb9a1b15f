package internal

import "github.com/osuushi/delaunay/dbg"

// Point location by visibility walk: from a starting face, step across any
// edge that has the query strictly on its right, and stop when no edge
// does. Because the mesh is Delaunay at every insertion and the predicates
// are exact, the walk cannot cycle; the step cap and exhaustive fallback
// are there so that termination never rests on that argument alone.

type locationKind int

const (
	insideFace locationKind = iota
	onEdge
	onVertex
)

type location struct {
	kind locationKind
	face FaceID
	// The edge containing the query, when kind == onEdge.
	edge EdgeID
	// The coinciding vertex, when kind == onVertex.
	vertex VertexID
}

func (m *Mesh) Locate(q Point, start FaceID) location {
	f := start
	// Generous cap; a healthy walk visits far fewer faces than exist.
	limit := 4*len(m.Faces) + 12
	for steps := 0; steps < limit; steps++ {
		crossed := false
		e := m.Faces[f].Edge
		for i := 0; i < 3; i++ {
			if m.OrientPoint(m.Edges[e].Origin, m.Dest(e), q) == Clockwise {
				next := m.Edges[m.Edges[e].Twin].Face
				if next == NoFace {
					// The far triangle contains every real point, so the walk
					// can never exit through the outer boundary.
					fatal(ErrNumericalInconsistency, "walk escaped through boundary edge %s", dbg.Name(e))
				}
				f = next
				crossed = true
				break
			}
			e = m.Edges[e].Next
		}
		if !crossed {
			return m.classify(f, q)
		}
	}

	// A cycle would indicate a predicate bug, but an oracle answers by
	// scanning rather than hanging.
	return m.locateByScan(q)
}

// classify reports how q sits in face f, which must contain it: strictly
// inside, in the interior of one edge, or on a vertex.
func (m *Mesh) classify(f FaceID, q Point) location {
	var zero []EdgeID
	e := m.Faces[f].Edge
	for i := 0; i < 3; i++ {
		if m.OrientPoint(m.Edges[e].Origin, m.Dest(e), q) == Collinear {
			zero = append(zero, e)
		}
		e = m.Edges[e].Next
	}

	switch len(zero) {
	case 0:
		return location{kind: insideFace, face: f, edge: NoEdge, vertex: NoVertex}
	case 1:
		return location{kind: onEdge, face: f, edge: zero[0], vertex: NoVertex}
	case 2:
		// The query is the vertex shared by the two collinear edges.
		v := m.Edges[zero[1]].Origin
		if m.Edges[zero[0]].Next != zero[1] {
			v = m.Edges[zero[0]].Origin
		}
		return location{kind: onVertex, face: f, edge: NoEdge, vertex: v}
	}
	fatal(ErrNumericalInconsistency, "query collinear with all edges of %s", m.FaceName(f))
	panic("unreachable")
}

func (m *Mesh) locateByScan(q Point) location {
	for i := range m.Faces {
		f := FaceID(i)
		inside := true
		e := m.Faces[f].Edge
		for j := 0; j < 3; j++ {
			if m.OrientPoint(m.Edges[e].Origin, m.Dest(e), q) == Clockwise {
				inside = false
				break
			}
			e = m.Edges[e].Next
		}
		if inside {
			return m.classify(f, q)
		}
	}
	fatal(ErrNumericalInconsistency, "no face contains (%g, %g)", q.X, q.Y)
	panic("unreachable")
}
