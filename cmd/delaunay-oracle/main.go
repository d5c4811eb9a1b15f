package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of Delaunay triangulation. By default triangulates an N by N unit
// grid and prints one sorted index triple per line, with indices assigned
// row major (index = y*N + x). With --stdin, points are read instead as
// newline separated "x y" pairs, indexed in input order.
var (
	gridSize  = kingpin.Flag("grid", "Triangulate an NxN unit grid.").Default("3").Int()
	fromStdin = kingpin.Flag("stdin", "Read points from stdin, one \"x y\" pair per line.").Bool()
	pngPath   = kingpin.Flag("png", "Also render the result to a PNG file.").String()
	pngScale  = kingpin.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
)

func main() {
	kingpin.Parse()

	var points []delaunay.Point
	if *fromStdin {
		points = readPoints(os.Stdin)
	} else {
		points = gridPoints(*gridSize)
	}

	triangles, err := delaunay.Triangulate(points)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, t := range triangles {
		fmt.Printf("[%d, %d, %d]\n", t[0], t[1], t[2])
	}

	if *pngPath != "" {
		if err := delaunay.RenderPNG(points, triangles, *pngScale, *pngPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func gridPoints(n int) []delaunay.Point {
	points := make([]delaunay.Point, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, delaunay.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

func readPoints(in *os.File) []delaunay.Point {
	points := []delaunay.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) delaunay.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "bad point line: %q\n", line)
		os.Exit(1)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return delaunay.Point{X: x, Y: y}
}
