package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the point set so hull edges don't hug the image border.
const drawPadding = 40

// RenderPNG draws a finished triangulation to a PNG file. Input is the
// canonical form (points plus index triples), so it works on the oracle
// output directly without access to the mesh.
func RenderPNG(points []Point, triangles []Triangle, scale float64, path string) error {
	if len(points) == 0 {
		return errors.New("nothing to render")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad and fit.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, t := range triangles {
		a, b, d := points[t[0]], points[t[1]], points[t[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.SetLineWidth(2)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Helper to draw and print the current state of a triangulation in the
// terminal (iTerm only) for debugging mid-insertion.
func (tr *Triangulation) dbgDraw(scale float64) {
	m := tr.mesh
	points := make([]Point, tr.sites)
	for _, vert := range m.Verts {
		if vert.Site >= 0 {
			points[vert.Site] = vert.Pos
		}
	}

	var triangles []Triangle
	for i := range m.Faces {
		e0 := m.Faces[FaceID(i)].Edge
		e1 := m.Edges[e0].Next
		e2 := m.Edges[e1].Next
		t := Triangle{
			m.Verts[m.Edges[e0].Origin].Site,
			m.Verts[m.Edges[e1].Origin].Site,
			m.Verts[m.Edges[e2].Origin].Site,
		}
		// Faces touching the far vertices extend to infinity; skip them
		// rather than invent coordinates.
		if t[0] < 0 || t[1] < 0 || t[2] < 0 {
			continue
		}
		triangles = append(triangles, t)
	}

	if err := RenderPNG(points, triangles, scale, "/tmp/delaunay.png"); err != nil {
		return
	}
	imgcat.CatFile("/tmp/delaunay.png", os.Stdout)
}
