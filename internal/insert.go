package internal

import "math"

// Triangulation owns the mesh and drives incremental insertion. One
// instance is built start to finish by one caller; there is no locking and
// no concurrency anywhere in the engine, since construction is a
// deterministic in-memory batch.
type Triangulation struct {
	mesh *Mesh
	// Number of real sites inserted so far; doubles as the next input index.
	sites int
	// Walk start hint: a face incident to the most recent insertion.
	lastFace FaceID
}

func NewTriangulation() *Triangulation {
	return &Triangulation{
		mesh:     NewMesh(),
		lastFace: 0,
	}
}

func (tr *Triangulation) Mesh() *Mesh {
	return tr.mesh
}

// InsertAll inserts the points in input order. Any failure aborts the whole
// batch by panicking with a wrapped error kind; the public API converts
// that to an error. There is no skip-and-continue: an oracle must never
// produce output for an input it could not faithfully triangulate.
func (tr *Triangulation) InsertAll(points []Point) {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			fatal(ErrDegenerateInput, "point %d has non-finite coordinates (%g, %g)", i, p.X, p.Y)
		}
		tr.Insert(p)
	}
}

// Insert adds one point. The structure is untouched on failure: location
// and duplicate detection do not mutate, and nothing is allocated until
// both have passed.
func (tr *Triangulation) Insert(p Point) {
	loc := tr.mesh.Locate(p, tr.lastFace)
	tr.rejectDuplicate(p, loc)

	v := tr.mesh.AddVertex(p, tr.sites)
	tr.sites++

	var suspect EdgeStack
	switch loc.kind {
	case insideFace:
		for _, e := range tr.mesh.SplitFace(loc.face, v) {
			suspect.Push(e)
		}
	case onEdge:
		for _, e := range tr.mesh.SplitEdge(loc.edge, v) {
			suspect.Push(e)
		}
	default:
		fatal(ErrNumericalInconsistency, "vertex hit survived duplicate rejection")
	}

	tr.legalize(v, &suspect)
	// The located face's slot was recycled by the split, so it is incident
	// to v (or was re-wired by a flip to something nearby); either way it is
	// a good hint for the next walk.
	tr.lastFace = loc.face
}

// rejectDuplicate fails the batch if p coincides with an existing vertex,
// exactly or within Tolerance. The tolerance check covers the located
// face's corners and the apexes across its edges: at Tolerance scale, a
// near-duplicate of any vertex locates into one of that vertex's incident
// faces, so the one-ring is the right neighborhood to scan.
func (tr *Triangulation) rejectDuplicate(p Point, loc location) {
	if loc.kind == onVertex {
		v := tr.mesh.Verts[loc.vertex]
		fatal(ErrDuplicatePoint, "(%g, %g) coincides with point %d", p.X, p.Y, v.Site)
	}

	check := func(v VertexID) {
		vert := tr.mesh.Verts[v]
		if vert.Site >= 0 && coincident(p, vert.Pos) {
			fatal(ErrDuplicatePoint, "(%g, %g) is within tolerance of point %d at (%g, %g)",
				p.X, p.Y, vert.Site, vert.Pos.X, vert.Pos.Y)
		}
	}

	m := tr.mesh
	e := m.Faces[loc.face].Edge
	for i := 0; i < 3; i++ {
		check(m.Edges[e].Origin)
		if across := m.Edges[m.Edges[e].Twin].Face; across != NoFace {
			check(m.Apex(m.Edges[e].Twin))
		}
		e = m.Edges[e].Next
	}
}
