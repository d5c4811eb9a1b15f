package internal

// Legalization restores the Delaunay property around a newly inserted
// vertex by popping suspect edges off an explicit stack and flipping the
// illegal ones. The recursion in the textbook presentation is unbounded in
// the worst case, so it is unrolled into the stack: each flip pushes the
// two edges newly exposed opposite the vertex, and each pop either flips or
// discards, so the loop terminates once no suspect remains.

func (tr *Triangulation) legalize(v VertexID, suspect *EdgeStack) {
	m := tr.mesh
	for !suspect.Empty() {
		e := suspect.Pop()

		// Normalize so that v is the apex of e's face. Edges pushed by the
		// splits and flips satisfy this, but a later flip can hand an edge's
		// slot to the quad's other side.
		if m.Apex(e) != v {
			e = m.Edges[e].Twin
			if m.Edges[e].Face == NoFace || m.Apex(e) != v {
				continue
			}
		}
		s := m.Edges[e].Twin
		if m.Edges[s].Face == NoFace {
			// Boundary edges are never flipped.
			continue
		}

		a := m.Edges[e].Origin
		b := m.Dest(e)
		w := m.Apex(s)

		// (a, b, v) is CCW because it is the cycle of e's face. The edge is
		// illegal when the far apex falls strictly inside its circumcircle.
		switch m.CircleSide(a, b, v, w) {
		case OutsideCircle:
			continue
		case OnCircle:
			if !tr.preferDiagonal(v, w, a, b) {
				continue
			}
		}

		if !m.FlipEdge(e) {
			// An apex strictly (or symbolically) inside the circumcircle
			// guarantees a strictly convex quad.
			fatal(ErrNumericalInconsistency, "illegal edge refused to flip")
		}
		// After the flip the slot of e carries the new diagonal w -> v. The
		// edges opposite v in the two replacement faces, a -> w and w -> b,
		// are the new suspects, and each face records exactly that edge.
		suspect.Push(m.Faces[m.Edges[e].Face].Edge)
		suspect.Push(m.Faces[m.Edges[m.Edges[e].Twin].Face].Edge)
	}
}

// preferDiagonal breaks exact cocircular ties. All four points of the quad
// lie on one circle, so neither diagonal is geometrically better; an oracle
// still has to pick the same one no matter what order the points arrived
// in. The rule: the diagonal containing the lexicographically lowest of the
// four vertices wins. It depends only on coordinates, so every insertion
// order converges to the same mesh, and a tie flips each quad at most once,
// preserving termination.
func (tr *Triangulation) preferDiagonal(v, w, a, b VertexID) bool {
	m := tr.mesh
	// Far vertices are never exactly cocircular with three other vertices:
	// their leading symbolic coefficients cannot all cancel.
	low := m.Verts[v].Pos
	lowIsDiagonal := true
	for _, cand := range [3]struct {
		id       VertexID
		diagonal bool
	}{{w, true}, {a, false}, {b, false}} {
		if p := m.Verts[cand.id].Pos; p.Below(low) {
			low = p
			lowIsDiagonal = cand.diagonal
		}
	}
	return lowIsDiagonal
}
