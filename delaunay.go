// An exact incremental Delaunay triangulation package for Go.
//
// This package converts an arbitrary set of distinct points in the plane
// into the set of triangles of their Delaunay triangulation, reported as
// sorted index triples into the input slice. Orientation and in-circle
// tests fall back to exact rational arithmetic, so degenerate inputs such
// as collinear runs and cocircular quadruples are handled without any
// perturbation of the input coordinates.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type Triangle = internal.Triangle

// Error kinds returned by Triangulate. Inspect with errors.Cause.
var (
	ErrDuplicatePoint         = internal.ErrDuplicatePoint
	ErrDegenerateInput        = internal.ErrDegenerateInput
	ErrNumericalInconsistency = internal.ErrNumericalInconsistency
)

// Take a set of points and convert them into Delaunay triangles.
//
// Each triangle is a triple of indices into the input slice, sorted
// ascending, and the result list is sorted lexicographically. The output
// depends only on the point set, not on the order the points are given in.
//
// Points must be distinct and finite, and at least three of them must not
// be collinear.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	tr := internal.NewTriangulation()
	tr.InsertAll(points)
	return tr.Extract(), nil
}

// Draw a triangulation to a PNG file. Mostly useful for eyeballing CLI
// output; see cmd/delaunay-oracle.
func RenderPNG(points []Point, triangles []Triangle, scale float64, path string) error {
	return internal.RenderPNG(points, triangles, scale, path)
}
