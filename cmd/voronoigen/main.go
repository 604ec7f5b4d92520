// Command voronoigen is a minimal demo of package voronoi: it runs
// the sweep over a literal list of sites and prints a plain-text
// summary of the resulting DCEL. It does not parse site files, render
// anything, or offer a real CLI surface.
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/fortunesweep/voronoi/voronoi"
)

func main() {
	sites := []image.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 10},
		{X: 5, Y: 3},
	}

	logger := log.New(os.Stderr, "voronoigen: ", log.LstdFlags)
	d := voronoi.New(sites, voronoi.WithLogger(logger))
	d.Execute()

	g := d.DCEL()
	fmt.Printf("vertices: %d\n", g.VertexCount())
	fmt.Printf("edges:    %d\n", g.EdgeCount())
	fmt.Printf("faces:    %d\n", g.FaceCount())

	if min, max, ok := g.BoundingBox(); ok {
		fmt.Printf("bounds:   (%g, %g) - (%g, %g)\n", min.X, min.Y, max.X, max.Y)
	}
}
