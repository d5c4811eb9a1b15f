package internal

import "sort"

// Extract walks the finished mesh and returns the canonical triangle list:
// each face as its three input indices sorted ascending, the whole list
// sorted ascending lexicographically. Faces touching a bootstrap vertex
// exist only to keep insertion uniform and are excluded. The result is the
// oracle's contract: byte-for-byte reproducible regardless of insertion
// order or face iteration order.
func (tr *Triangulation) Extract() []Triangle {
	m := tr.mesh
	triangles := make([]Triangle, 0, len(m.Faces))
	for i := range m.Faces {
		e0 := m.Faces[FaceID(i)].Edge
		e1 := m.Edges[e0].Next
		e2 := m.Edges[e1].Next
		t := Triangle{
			m.Verts[m.Edges[e0].Origin].Site,
			m.Verts[m.Edges[e1].Origin].Site,
			m.Verts[m.Edges[e2].Origin].Site,
		}
		if t[0] < 0 || t[1] < 0 || t[2] < 0 {
			continue
		}
		triangles = append(triangles, canonical(t))
	}

	if len(triangles) == 0 {
		fatal(ErrDegenerateInput, "need at least 3 non-collinear points, got %d points", tr.sites)
	}
	return SortTriangles(triangles)
}

// canonical sorts the three indices of a single triangle ascending.
func canonical(t Triangle) Triangle {
	if t[0] > t[1] {
		t[0], t[1] = t[1], t[0]
	}
	if t[1] > t[2] {
		t[1], t[2] = t[2], t[1]
	}
	if t[0] > t[1] {
		t[0], t[1] = t[1], t[0]
	}
	return t
}

// SortTriangles sorts a triangle list into canonical order, in place, and
// returns it. Sorting an already-canonical list is a no-op.
func SortTriangles(triangles []Triangle) []Triangle {
	sort.Slice(triangles, func(i, j int) bool {
		return triangles[i].Less(triangles[j])
	})
	return triangles
}
