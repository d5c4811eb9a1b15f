package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a
// full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon is, and returns its vertices as a point slice; the polygon
// winding is irrelevant since only the point set matters. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixturePoints(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

// GridPoints returns the n by n unit grid in row major order, so the point
// at (x, y) has index y*n + x.
func GridPoints(n int) []Point {
	points := make([]Point, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// RingPoints returns n points evenly spaced on a circle, so every four of
// them are cocircular.
func RingPoints(n int, radius float64) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// RandomPoints returns n points drawn uniformly from the unit square with a
// fixed seed, so a given (n, seed) pair always yields the same set.
func RandomPoints(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, Point{X: rng.Float64(), Y: rng.Float64()})
	}
	return points
}
