package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/dbg"
)

// The mesh is a half-edge planar subdivision kept in flat arenas and
// addressed by integer handles. Handles are stable for the life of the
// triangulation: vertices are never deleted, and splits and flips recycle
// the edge and face slots they consume instead of freeing them. This keeps
// local navigation O(1) without the reference-cycle bookkeeping that
// pointer-linked twins and next-rings would need.

type VertexID int
type EdgeID int
type FaceID int

const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

func (v VertexID) Valid() bool { return v >= 0 }
func (e EdgeID) Valid() bool   { return e >= 0 }
func (f FaceID) Valid() bool   { return f >= 0 }

type Vertex struct {
	Pos Point
	// Site is the originating input index. The three bootstrap vertices
	// carry sites -1, -2, -3 and have no meaningful Pos; everything
	// geometric about them goes through their symbolic coordinates.
	Site int
}

type HalfEdge struct {
	Origin VertexID
	Twin   EdgeID
	Next   EdgeID
	Prev   EdgeID
	// Face is NoFace on the three outer boundary half-edges.
	Face FaceID
}

type Face struct {
	// An arbitrary one of the face's three edges.
	Edge EdgeID
}

type Mesh struct {
	Verts []Vertex
	Edges []HalfEdge
	Faces []Face
}

// NewMesh builds the bootstrap triangle over the three far vertices. Its
// inside is face 0; its outside is a boundary loop with Face == NoFace.
// Every real point lands strictly inside face coverage from then on.
func NewMesh() *Mesh {
	m := &Mesh{
		Verts: []Vertex{
			{Site: -1},
			{Site: -2},
			{Site: -3},
		},
	}

	// Interior cycle 0,1,2 and its boundary twins 3,4,5.
	m.Edges = []HalfEdge{
		{Origin: 0, Twin: 3, Next: 1, Prev: 2, Face: 0},
		{Origin: 1, Twin: 4, Next: 2, Prev: 0, Face: 0},
		{Origin: 2, Twin: 5, Next: 0, Prev: 1, Face: 0},
		{Origin: 1, Twin: 0, Next: 5, Prev: 4, Face: NoFace},
		{Origin: 2, Twin: 1, Next: 3, Prev: 5, Face: NoFace},
		{Origin: 0, Twin: 2, Next: 4, Prev: 3, Face: NoFace},
	}
	m.Faces = []Face{{Edge: 0}}
	return m
}

func (m *Mesh) AddVertex(p Point, site int) VertexID {
	m.Verts = append(m.Verts, Vertex{Pos: p, Site: site})
	return VertexID(len(m.Verts) - 1)
}

func (m *Mesh) Dest(e EdgeID) VertexID {
	return m.Edges[m.Edges[e].Twin].Origin
}

// Apex is the vertex of e's face that is not an endpoint of e.
func (m *Mesh) Apex(e EdgeID) VertexID {
	return m.Edges[m.Edges[e].Prev].Origin
}

// Onext walks to the next edge counter-clockwise around e's origin.
func (m *Mesh) Onext(e EdgeID) EdgeID {
	return m.Edges[m.Edges[e].Prev].Twin
}

func (m *Mesh) isFar(v VertexID) bool {
	return m.Verts[v].Site < 0
}

func (m *Mesh) symCoord(v VertexID) symPoint {
	vert := m.Verts[v]
	if vert.Site >= 0 {
		return realSymPoint(vert.Pos)
	}
	return farSymPoint(-vert.Site - 1)
}

// Orient is Orientation lifted to mesh vertices. Real triples take the fast
// float path; anything touching a far vertex is evaluated symbolically.
func (m *Mesh) Orient(u, v, w VertexID) Direction {
	if !m.isFar(u) && !m.isFar(v) && !m.isFar(w) {
		return Orientation(m.Verts[u].Pos, m.Verts[v].Pos, m.Verts[w].Pos)
	}
	return symOrientation(m.symCoord(u), m.symCoord(v), m.symCoord(w))
}

// OrientPoint orients a query point that is not yet a vertex against the
// directed edge u -> v.
func (m *Mesh) OrientPoint(u, v VertexID, q Point) Direction {
	if !m.isFar(u) && !m.isFar(v) {
		return Orientation(m.Verts[u].Pos, m.Verts[v].Pos, q)
	}
	return symOrientation(m.symCoord(u), m.symCoord(v), realSymPoint(q))
}

// CircleSide is InCircle lifted to mesh vertices; (a, b, c) must be CCW.
func (m *Mesh) CircleSide(a, b, c, q VertexID) CirclePosition {
	if !m.isFar(a) && !m.isFar(b) && !m.isFar(c) && !m.isFar(q) {
		return InCircle(m.Verts[a].Pos, m.Verts[b].Pos, m.Verts[c].Pos, m.Verts[q].Pos)
	}
	return symInCircle(m.symCoord(a), m.symCoord(b), m.symCoord(c), m.symCoord(q))
}

// addEdge appends a half-edge out of from with the given twin. Cycle links
// and face membership are left for the caller to wire.
func (m *Mesh) addEdge(from VertexID, twin EdgeID) EdgeID {
	e := EdgeID(len(m.Edges))
	m.Edges = append(m.Edges, HalfEdge{Origin: from, Twin: twin, Next: NoEdge, Prev: NoEdge, Face: NoFace})
	return e
}

// addEdgePair appends the half-edge from -> to and its twin, returning them
// in that order.
func (m *Mesh) addEdgePair(from, to VertexID) (EdgeID, EdgeID) {
	e := m.addEdge(from, NoEdge)
	t := m.addEdge(to, e)
	m.Edges[e].Twin = t
	return e, t
}

func (m *Mesh) addFace() FaceID {
	m.Faces = append(m.Faces, Face{Edge: NoEdge})
	return FaceID(len(m.Faces) - 1)
}

// setTriangle wires x -> y -> z -> x as the cycle of face f.
func (m *Mesh) setTriangle(f FaceID, x, y, z EdgeID) {
	m.Edges[x].Next, m.Edges[x].Prev = y, z
	m.Edges[y].Next, m.Edges[y].Prev = z, x
	m.Edges[z].Next, m.Edges[z].Prev = x, y
	m.Edges[x].Face = f
	m.Edges[y].Face = f
	m.Edges[z].Face = f
	m.Faces[f].Edge = x
}

// SplitFace replaces face f with the three triangles fanning out from v,
// which must lie strictly inside f. Returns the edges opposite v in the
// three new faces, i.e. the original boundary of f, for legalization.
func (m *Mesh) SplitFace(f FaceID, v VertexID) [3]EdgeID {
	e0 := m.Faces[f].Edge
	e1 := m.Edges[e0].Next
	e2 := m.Edges[e1].Next
	a := m.Edges[e0].Origin
	b := m.Edges[e1].Origin
	c := m.Edges[e2].Origin

	va, av := m.addEdgePair(v, a)
	vb, bv := m.addEdgePair(v, b)
	vc, cv := m.addEdgePair(v, c)

	f2 := m.addFace()
	f3 := m.addFace()
	m.setTriangle(f, e0, bv, va)  // a -> b -> v
	m.setTriangle(f2, e1, cv, vb) // b -> c -> v
	m.setTriangle(f3, e2, av, vc) // c -> a -> v

	return [3]EdgeID{e0, e1, e2}
}

// SplitEdge replaces the two faces flanking e with four triangles fanning
// out from v, which must lie in the interior of e. Returns the four edges
// opposite v for legalization.
func (m *Mesh) SplitEdge(e EdgeID, v VertexID) [4]EdgeID {
	s := m.Edges[e].Twin
	f := m.Edges[e].Face
	g := m.Edges[s].Face
	if f == NoFace || g == NoFace {
		// Real points are strictly inside the far triangle, so its boundary
		// can never be hit.
		fatal(ErrNumericalInconsistency, "point split on boundary edge %s", dbg.Name(e))
	}

	// e runs a -> b with apex c; s runs b -> a with apex d.
	eb := m.Edges[e].Next // b -> c
	ec := m.Edges[e].Prev // c -> a
	c := m.Edges[ec].Origin
	sd := m.Edges[s].Next // a -> d
	sb := m.Edges[s].Prev // d -> b
	d := m.Edges[sb].Origin

	// The slot of e becomes a -> v and the slot of s becomes b -> v, so both
	// need fresh twins; the other spokes are fresh pairs.
	va := m.addEdge(v, e)
	vb := m.addEdge(v, s)
	m.Edges[e].Twin = va
	m.Edges[s].Twin = vb
	vc, cv := m.addEdgePair(v, c)
	vd, dv := m.addEdgePair(v, d)

	f2 := m.addFace()
	g2 := m.addFace()
	m.setTriangle(f, e, vc, ec)   // a -> v -> c
	m.setTriangle(f2, vb, eb, cv) // v -> b -> c
	m.setTriangle(g, s, vd, sb)   // b -> v -> d
	m.setTriangle(g2, va, sd, dv) // v -> a -> d

	return [4]EdgeID{ec, eb, sb, sd}
}

// FlipEdge replaces the diagonal e of the quadrilateral formed by its two
// faces with the opposite diagonal. Refused (returns false) if e is on the
// outer boundary or the quadrilateral is not strictly convex; callers that
// have already established convexity via in-circle treat a refusal as an
// invariant violation.
func (m *Mesh) FlipEdge(e EdgeID) bool {
	s := m.Edges[e].Twin
	f := m.Edges[e].Face
	g := m.Edges[s].Face
	if f == NoFace || g == NoFace {
		return false
	}

	a := m.Edges[e].Origin
	b := m.Edges[s].Origin
	eb := m.Edges[e].Next // b -> c
	ec := m.Edges[e].Prev // c -> a
	c := m.Edges[ec].Origin
	sd := m.Edges[s].Next // a -> d
	sb := m.Edges[s].Prev // d -> b
	d := m.Edges[sb].Origin

	// Both replacement triangles must be counter-clockwise, which is exactly
	// strict convexity of the quad a, d, b, c.
	if m.Orient(a, d, c) != CounterClockwise || m.Orient(d, b, c) != CounterClockwise {
		return false
	}

	m.Edges[e].Origin = d // e becomes d -> c
	m.Edges[s].Origin = c // s becomes c -> d
	m.setTriangle(f, sd, e, ec) // a -> d -> c
	m.setTriangle(g, sb, eb, s) // d -> b -> c
	return true
}

// Validate checks the structural invariants: twin symmetry, three-edge face
// cycles, consistent face membership, and counter-clockwise orientation of
// every interior face. Used by tests; normal operation never needs it.
func (m *Mesh) Validate() error {
	for i := range m.Edges {
		e := EdgeID(i)
		t := m.Edges[e].Twin
		if t == NoEdge || m.Edges[t].Twin != e {
			return errors.Errorf("edge %s has asymmetric twin", dbg.Name(e))
		}
		if m.Edges[t].Origin == m.Edges[e].Origin {
			return errors.Errorf("edge %s and its twin share an origin", dbg.Name(e))
		}
		next := m.Edges[e].Next
		if next == NoEdge || m.Edges[next].Prev != e {
			return errors.Errorf("edge %s has inconsistent next/prev", dbg.Name(e))
		}
		if m.Edges[next].Origin != m.Dest(e) {
			return errors.Errorf("edge %s does not chain into its next", dbg.Name(e))
		}
	}

	boundary := 0
	for i := range m.Edges {
		if m.Edges[i].Face == NoFace {
			boundary++
		}
	}
	if boundary != 3 {
		return errors.Errorf("expected 3 boundary edges, found %d", boundary)
	}

	for i := range m.Faces {
		f := FaceID(i)
		e0 := m.Faces[f].Edge
		e1 := m.Edges[e0].Next
		e2 := m.Edges[e1].Next
		if m.Edges[e2].Next != e0 {
			return errors.Errorf("face %s cycle is not a triangle", dbg.Name(f))
		}
		for _, e := range []EdgeID{e0, e1, e2} {
			if m.Edges[e].Face != f {
				return errors.Errorf("face %s contains an edge that disowns it", dbg.Name(f))
			}
		}
		a, b, c := m.Edges[e0].Origin, m.Edges[e1].Origin, m.Edges[e2].Origin
		if m.Orient(a, b, c) != CounterClockwise {
			return errors.Errorf("face %s is not counter-clockwise", dbg.Name(f))
		}
	}
	return nil
}

// FaceName colors a face's debug name by how real it is: faces touching a
// far vertex are cyan, fully real faces green.
func (m *Mesh) FaceName(f FaceID) string {
	if f == NoFace {
		return dbg.Name(NoFace)
	}
	name := dbg.Name(f)
	e := m.Faces[f].Edge
	far := false
	for i, cur := 0, e; i < 3; i, cur = i+1, m.Edges[cur].Next {
		if m.isFar(m.Edges[cur].Origin) {
			far = true
		}
	}
	if far {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (m *Mesh) FaceString(f FaceID) string {
	e0 := m.Faces[f].Edge
	e1 := m.Edges[e0].Next
	e2 := m.Edges[e1].Next
	return fmt.Sprintf("Face %s {%s → %s → %s}",
		m.FaceName(f),
		m.vertexString(m.Edges[e0].Origin),
		m.vertexString(m.Edges[e1].Origin),
		m.vertexString(m.Edges[e2].Origin),
	)
}

func (m *Mesh) vertexString(v VertexID) string {
	vert := m.Verts[v]
	if vert.Site < 0 {
		return fmt.Sprintf("far%d", -vert.Site)
	}
	return fmt.Sprintf("#%d(%g, %g)", vert.Site, vert.Pos.X, vert.Pos.Y)
}
