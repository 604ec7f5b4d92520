package voronoi_test

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortunesweep/voronoi/dcel"
	"github.com/fortunesweep/voronoi/geom"
	"github.com/fortunesweep/voronoi/voronoi"
)

func TestScenario_SingleSite(t *testing.T) {
	d := voronoi.New([]image.Point{{X: 0, Y: 0}})
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 1, g.FaceCount())
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestScenario_TwoSites(t *testing.T) {
	d := voronoi.New([]image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 2, g.FaceCount())
	assert.Equal(t, 2, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount(), "one twin pair")

	e1 := g.Edge(0)
	e2 := g.Edge(1)
	assert.Equal(t, 1, int(e1.Twin))
	assert.Equal(t, 0, int(e2.Twin))
	assert.False(t, e1.HasOrigin)
	assert.False(t, e2.HasOrigin)
	assert.NotEqual(t, e1.Face, e2.Face, "the bisector separates the two faces")
}

func TestScenario_ThreeSitesGeneralPosition(t *testing.T) {
	d := voronoi.New([]image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}})
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 3, g.FaceCount())

	// Exactly one of the vertices is the non-site circumcentre; the
	// other three are the generator sites themselves. The circumcentre
	// of (0,0),(10,0),(5,10) is (5, 3.75): x = 5 from the bisector of
	// the first two points, and equidistance to the third then forces
	// y = 3.75.
	var voronoiVertices int
	for i := 0; i < g.VertexCount(); i++ {
		v := g.Vertex(dcel.VertexHandle(i))
		if v.IsSite {
			continue
		}
		voronoiVertices++
		assert.InDelta(t, 5.0, v.Point.X, 1e-9)
		assert.InDelta(t, 3.75, v.Point.Y, 1e-9)
	}
	assert.Equal(t, 1, voronoiVertices)

	// Three twin pairs, all tracing the circumcentre on one side.
	require.Equal(t, 6, g.EdgeCount())
	var boundedAtCentre int
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(dcel.EdgeHandle(i))
		if !e.HasOrigin {
			continue
		}
		origin := g.Vertex(e.Origin)
		if !origin.IsSite {
			boundedAtCentre++
		}
	}
	assert.Equal(t, 3, boundedAtCentre)
}

func TestScenario_FourCocircularSites(t *testing.T) {
	d := voronoi.New([]image.Point{{X: 0, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: -10}, {X: -10, Y: 0}})
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 4, g.FaceCount())

	for i := 0; i < g.VertexCount(); i++ {
		v := g.Vertex(dcel.VertexHandle(i))
		if v.IsSite {
			continue
		}
		assert.InDelta(t, 0, v.Point.X, 1e-6)
		assert.InDelta(t, 0, v.Point.Y, 1e-6)
	}
}

func TestScenario_HorizontalCollinearPairThenSiteAbove(t *testing.T) {
	// The queue pops the highest site first, so the sweep sees
	// (5, 10) before the horizontal pair at y = 0.
	d := voronoi.New([]image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}})
	require.True(t, d.Step(), "site (5, 10)")
	require.True(t, d.Step(), "site (0, 0)")
	require.True(t, d.Step(), "site (10, 0)")
	for d.Step() {
	}

	g := d.DCEL()
	assert.Equal(t, 3, g.FaceCount())
}

func TestHorizontalCollinearRow(t *testing.T) {
	// All three sites share one y, so after the first arc every
	// insertion lands flush against a degenerate arc and must split
	// to its left or right instead of intersecting it. The bisectors
	// are parallel vertical lines: no triple ever converges.
	d := voronoi.New([]image.Point{{X: 10, Y: 0}, {X: 0, Y: 0}, {X: 20, Y: 0}})
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 3, g.FaceCount())
	assert.Equal(t, 3, g.VertexCount(), "sites only, no Voronoi vertices")
	require.Equal(t, 4, g.EdgeCount(), "two twin pairs of unbounded bisectors")
	for i := 0; i < g.EdgeCount(); i++ {
		assert.False(t, g.Edge(dcel.EdgeHandle(i)).HasOrigin, "every edge is a full infinite line")
	}
}

func TestScenario_Grid3x3(t *testing.T) {
	var sites []image.Point
	for _, x := range []int{0, 5, 10} {
		for _, y := range []int{0, 5, 10} {
			sites = append(sites, image.Point{X: x, Y: y})
		}
	}

	d := voronoi.New(sites)
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 9, g.FaceCount())

	want := map[[2]float64]bool{
		{2.5, 2.5}: false,
		{7.5, 2.5}: false,
		{2.5, 7.5}: false,
		{7.5, 7.5}: false,
	}
	var finiteCount int
	for i := 0; i < g.VertexCount(); i++ {
		v := g.Vertex(dcel.VertexHandle(i))
		if v.IsSite {
			continue
		}
		finiteCount++
		for k := range want {
			if approxEq(v.Point.X, k[0]) && approxEq(v.Point.Y, k[1]) {
				want[k] = true
			}
		}
	}
	assert.Equal(t, 4, finiteCount)
	for k, found := range want {
		assert.True(t, found, "expected a Voronoi vertex near %v", k)
	}
}

func approxEq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func TestVoronoiVerticesAreEquidistantFromNearestSites(t *testing.T) {
	sites := []image.Point{
		{X: 3, Y: 1}, {X: 7, Y: 4}, {X: 1, Y: 8}, {X: 9, Y: 9}, {X: 5, Y: 5}, {X: 2, Y: 3},
	}
	d := voronoi.New(sites)
	d.Execute()

	g := d.DCEL()
	var checked int
	for i := 0; i < g.VertexCount(); i++ {
		v := g.Vertex(dcel.VertexHandle(i))
		if v.IsSite {
			continue
		}
		checked++

		// A Voronoi vertex is equidistant from the three (or more)
		// sites whose arcs collapsed there, and no site is closer.
		nearest := 0
		closest := -1.0
		for _, s := range sites {
			dist := geom.Distance(v.Point, geom.Pt(float64(s.X), float64(s.Y)))
			if closest < 0 || dist < closest {
				closest = dist
			}
		}
		for _, s := range sites {
			dist := geom.Distance(v.Point, geom.Pt(float64(s.X), float64(s.Y)))
			if dist-closest < 1e-9 {
				nearest++
			}
		}
		assert.GreaterOrEqual(t, nearest, 3, "vertex %v is not a meeting point of three cells", v.Point)
	}
	assert.Greater(t, checked, 0, "sanity: the sweep must have produced finite vertices")
}

func TestDuplicateSitesAreFoldedIntoOne(t *testing.T) {
	d := voronoi.New([]image.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}})
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 2, g.FaceCount(), "the duplicate coordinate collapses to a single site")
}

func TestEmptyInputIsANoOp(t *testing.T) {
	d := voronoi.New(nil)
	assert.False(t, d.Step())
	d.Execute()

	g := d.DCEL()
	assert.Equal(t, 0, g.FaceCount())
	assert.Equal(t, 0, g.VertexCount())
}

func TestTranslationInvariance(t *testing.T) {
	base := []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}, {X: 5, Y: 3}}
	const dx, dy = 100, -50
	shifted := make([]image.Point, len(base))
	for i, p := range base {
		shifted[i] = image.Point{X: p.X + dx, Y: p.Y + dy}
	}

	d1 := voronoi.New(base)
	d1.Execute()
	d2 := voronoi.New(shifted)
	d2.Execute()

	g1, g2 := d1.DCEL(), d2.DCEL()
	require.Equal(t, g1.VertexCount(), g2.VertexCount())

	var v1, v2 []float64
	for i := 0; i < g1.VertexCount(); i++ {
		p := g1.Vertex(dcel.VertexHandle(i)).Point
		v1 = append(v1, p.X+float64(dx), p.Y+float64(dy))
	}
	for i := 0; i < g2.VertexCount(); i++ {
		p := g2.Vertex(dcel.VertexHandle(i)).Point
		v2 = append(v2, p.X, p.Y)
	}
	require.Len(t, v2, len(v1))
	for i := range v1 {
		assert.InDelta(t, v1[i], v2[i], 1e-6)
	}
}

func TestPermutationInvarianceFaceCount(t *testing.T) {
	a := []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}, {X: 5, Y: 3}}
	b := []image.Point{{X: 5, Y: 3}, {X: 5, Y: 10}, {X: 0, Y: 0}, {X: 10, Y: 0}}

	d1 := voronoi.New(a)
	d1.Execute()
	d2 := voronoi.New(b)
	d2.Execute()

	assert.Equal(t, d1.DCEL().FaceCount(), d2.DCEL().FaceCount())
	assert.Equal(t, d1.DCEL().VertexCount(), d2.DCEL().VertexCount())

	// The face->site multiset is order-insensitive, so compare with
	// SortSlices instead of positional equality.
	sitePoints := func(d *voronoi.Diagram) []geom.Point {
		g := d.DCEL()
		var pts []geom.Point
		for i := 0; i < g.VertexCount(); i++ {
			if v := g.Vertex(dcel.VertexHandle(i)); v.IsSite {
				pts = append(pts, v.Point)
			}
		}
		return pts
	}
	less := func(p, q geom.Point) bool {
		if p.X != q.X {
			return p.X < q.X
		}
		return p.Y < q.Y
	}
	if diff := cmp.Diff(sitePoints(d1), sitePoints(d2), cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("site multiset differs under permutation (-a +b):\n%s", diff)
	}
}
