package internal

import "github.com/golang/geo/r2"

// Point is an input site. Unlike the polygon-triangulation convention of
// passing points by pointer and leaning on pointer identity, the mesh here
// identifies vertices by arena handle, so points are plain values. The
// original coordinates are never modified or rounded; predicates that need
// more precision than float64 convert them exactly.
type Point r2.Point

// Triangle is one canonical output triangle: the input indices of its three
// corners, sorted ascending. A full triangulation is a slice of these,
// sorted ascending lexicographically, which makes the output independent of
// face iteration order and of which rotation of each face the mesh stored.
type Triangle [3]int

// Less orders triangles lexicographically by (first, second, third) index.
func (t Triangle) Less(other Triangle) bool {
	if t[0] != other[0] {
		return t[0] < other[0]
	}
	if t[1] != other[1] {
		return t[1] < other[1]
	}
	return t[2] < other[2]
}
