package internal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateGrid(t *testing.T) {
	// Every cell of a unit grid is exactly cocircular, so this exercises the
	// tie rule in every quad. The expected diagonals all pass through each
	// cell's bottom-left corner.
	points := GridPoints(3)
	triangles := triangulate(t, points)

	expected := []Triangle{
		{0, 1, 4},
		{0, 3, 4},
		{1, 2, 5},
		{1, 4, 5},
		{3, 4, 7},
		{3, 6, 7},
		{4, 5, 8},
		{4, 7, 8},
	}
	assert.Equal(t, expected, triangles)
}

func TestTriangulatePointSets(t *testing.T) {
	cases := []struct {
		name   string
		points []Point
	}{
		{"triangle", []Point{{0, 0}, {4, 0}, {2, 3}}},
		{"square", []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}},
		{"grid 4x4", GridPoints(4)},
		{"grid 7x7", GridPoints(7)},
		{"ring", RingPoints(8, 5)},
		{"ring with center", append(RingPoints(8, 5), Point{0, 0})},
		{"random 30", RandomPoints(30, 1)},
		{"random 100", RandomPoints(100, 2)},
		{"scatter fixture", LoadFixturePoints("scatter")},
		// These scales push the float in-circle determinant into underflow
		// and overflow, forcing every decision through the exact fallback.
		{"tiny scale", scalePoints(GridPoints(4), 1e-6)},
		{"huge scale", scalePoints(GridPoints(4), 1e100)},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			tr := NewTriangulation()
			tr.InsertAll(c.points)
			require.NoError(t, tr.Mesh().Validate())
			triangles := tr.Extract()

			assertDelaunay(t, c.points, triangles)
			assertEuler(t, len(c.points), triangles)
			assertHullCoverage(t, c.points, triangles)
			assertCanonical(t, triangles)
		})
	}
}

func TestTriangulateOrderIndependence(t *testing.T) {
	cases := []struct {
		name   string
		points []Point
	}{
		{"grid", GridPoints(4)},
		{"ring", RingPoints(10, 3)},
		{"random", RandomPoints(40, 5)},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			baseline := triangulate(t, c.points)

			rng := rand.New(rand.NewSource(99))
			for trial := 0; trial < 5; trial++ {
				perm := rng.Perm(len(c.points))
				shuffled := make([]Point, len(c.points))
				for j, src := range perm {
					shuffled[j] = c.points[src]
				}

				triangles := triangulate(t, shuffled)

				// Map shuffled indices back to the original ones
				for i, tri := range triangles {
					triangles[i] = canonical(Triangle{perm[tri[0]], perm[tri[1]], perm[tri[2]]})
				}
				SortTriangles(triangles)
				assert.Equal(t, baseline, triangles, "trial %d", trial)
			}
		})
	}
}

func TestTriangulateDuplicates(t *testing.T) {
	t.Run("exact duplicate", func(t *testing.T) {
		_, err := triangulateErr([]Point{{0, 0}, {1, 0}, {0, 1}, {1, 0}})
		require.Error(t, err)
		assert.Equal(t, ErrDuplicatePoint, errors.Cause(err))
	})

	t.Run("duplicate within tolerance", func(t *testing.T) {
		_, err := triangulateErr([]Point{{0, 0}, {1, 0}, {0, 1}, {1e-12, -1e-12}})
		require.Error(t, err)
		assert.Equal(t, ErrDuplicatePoint, errors.Cause(err))
	})

	t.Run("immediate duplicate", func(t *testing.T) {
		_, err := triangulateErr([]Point{{3, 3}, {3, 3}})
		require.Error(t, err)
		assert.Equal(t, ErrDuplicatePoint, errors.Cause(err))
	})

	t.Run("separated by more than tolerance is fine", func(t *testing.T) {
		_, err := triangulateErr([]Point{{0, 0}, {1, 0}, {0, 1}, {1e-3, 1e-3}})
		assert.NoError(t, err)
	})
}

func TestTriangulateDegenerate(t *testing.T) {
	degenerate := []struct {
		name   string
		points []Point
	}{
		{"empty", nil},
		{"single point", []Point{{1, 1}}},
		{"two points", []Point{{0, 0}, {1, 1}}},
		{"three collinear", []Point{{0, 0}, {1, 1}, {2, 2}}},
		{"many collinear", []Point{{0, 0}, {4, 0}, {1, 0}, {3, 0}, {2, 0}}},
	}
	for _, c := range degenerate {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := triangulateErr(c.points)
			require.Error(t, err)
			assert.Equal(t, ErrDegenerateInput, errors.Cause(err))
		})
	}

	t.Run("non-finite coordinates", func(t *testing.T) {
		for _, bad := range []Point{{math.NaN(), 0}, {0, math.NaN()}, {math.Inf(1), 0}, {0, math.Inf(-1)}} {
			_, err := triangulateErr([]Point{{0, 0}, {1, 0}, bad})
			require.Error(t, err)
			assert.Equal(t, ErrDegenerateInput, errors.Cause(err))
		}
	})
}

// Helpers

func triangulate(t *testing.T, points []Point) []Triangle {
	t.Helper()
	triangles, err := triangulateErr(points)
	require.NoError(t, err)
	return triangles
}

func triangulateErr(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	tr := NewTriangulation()
	tr.InsertAll(points)
	return tr.Extract(), nil
}

// assertDelaunay checks the defining property: no input point lies strictly
// inside any triangle's circumcircle. Cocircular points may sit exactly on
// one, which is fine.
func assertDelaunay(t *testing.T, points []Point, triangles []Triangle) {
	t.Helper()
	for _, tri := range triangles {
		a, b, c := points[tri[0]], points[tri[1]], points[tri[2]]
		if Orientation(a, b, c) != CounterClockwise {
			b, c = c, b
		}
		for q, p := range points {
			if q == tri[0] || q == tri[1] || q == tri[2] {
				continue
			}
			if InCircle(a, b, c, p) == InsideCircle {
				t.Fatalf("point %d is inside the circumcircle of %v", q, tri)
			}
		}
	}
}

// assertEuler checks the combinatorics of the triangle list: every interior
// edge is shared by exactly two triangles, the boundary edges form the hull,
// and the face count matches 2n - h - 2 for h hull points. Every input index
// must appear.
func assertEuler(t *testing.T, n int, triangles []Triangle) {
	t.Helper()
	edgeUses := map[[2]int]int{}
	seen := make([]bool, n)
	for _, tri := range triangles {
		for i := 0; i < 3; i++ {
			u, v := tri[i], tri[(i+1)%3]
			if u > v {
				u, v = v, u
			}
			edgeUses[[2]int{u, v}]++
			seen[tri[i]] = true
		}
	}

	boundary := 0
	for edge, uses := range edgeUses {
		require.LessOrEqual(t, uses, 2, "edge %v appears in %d triangles", edge, uses)
		if uses == 1 {
			boundary++
		}
	}

	assert.Equal(t, 2*n-boundary-2, len(triangles), "face count vs %d hull points", boundary)
	// V - E + F = 1 for a triangulated disc, not counting the outer face
	assert.Equal(t, 1, n-len(edgeUses)+len(triangles))

	for i, ok := range seen {
		assert.True(t, ok, "input point %d missing from output", i)
	}
}

// assertHullCoverage samples random convex combinations of input points,
// which are inside the hull by construction, and checks that each is
// covered by some triangle.
func assertHullCoverage(t *testing.T, points []Point, triangles []Triangle) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		p := points[rng.Intn(len(points))]
		q := points[rng.Intn(len(points))]
		lambda := rng.Float64()
		sample := Point{
			X: lambda*p.X + (1-lambda)*q.X,
			Y: lambda*p.Y + (1-lambda)*q.Y,
		}

		covered := false
		for _, tri := range triangles {
			if triangleContains(points[tri[0]], points[tri[1]], points[tri[2]], sample) {
				covered = true
				break
			}
		}
		if !covered {
			t.Fatalf("sample (%g, %g) between inputs is not covered by any triangle", sample.X, sample.Y)
		}
	}
}

func triangleContains(a, b, c, q Point) bool {
	if Orientation(a, b, c) != CounterClockwise {
		b, c = c, b
	}
	return Orientation(a, b, q) != Clockwise &&
		Orientation(b, c, q) != Clockwise &&
		Orientation(c, a, q) != Clockwise
}

// assertCanonical checks the output contract: indices sorted within each
// triangle, triangles sorted lexicographically, no duplicates.
func assertCanonical(t *testing.T, triangles []Triangle) {
	t.Helper()
	for i, tri := range triangles {
		assert.True(t, tri[0] < tri[1] && tri[1] < tri[2], "triangle %v is not sorted", tri)
		if i > 0 {
			assert.True(t, triangles[i-1].Less(tri),
				"triangles %v and %v out of order", triangles[i-1], tri)
		}
	}
}

func scalePoints(points []Point, factor float64) []Point {
	scaled := make([]Point, len(points))
	for i, p := range points {
		scaled[i] = Point{X: p.X * factor, Y: p.Y * factor}
	}
	return scaled
}

