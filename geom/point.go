package geom

// Point is an immutable pair of double-precision coordinates.
// Equality is bit-exact; callers that need tolerance comparisons
// (e.g. for Voronoi vertices) do it themselves.
type Point struct {
	X, Y float64
}

// Pt is a short constructor, matching the corpus's convention of a
// small helper alongside the zero-value-friendly struct literal.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}
