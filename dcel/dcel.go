package dcel

import (
	"math/rand"

	"github.com/fortunesweep/voronoi/geom"
)

// VertexHandle, EdgeHandle and FaceHandle are dense indices assigned
// in allocation order. The zero value is a valid handle (index 0);
// "no handle" is spelled with a separate bool alongside the handle.
type (
	VertexHandle int
	EdgeHandle   int
	FaceHandle   int
)

// Vertex is a DCEL vertex: either a generator site or a Voronoi
// vertex materialised by a circle event.
type Vertex struct {
	Point        geom.Point
	IncidentEdge EdgeHandle
	HasIncident  bool
	IsSite       bool
}

// HalfEdge is one of a twin pair. Origin unset (HasOrigin == false)
// means the edge extends to infinity on that side. IsInf is reserved
// for later clipping and is never read by the core.
type HalfEdge struct {
	Origin            VertexHandle
	HasOrigin         bool
	Twin              EdgeHandle
	Next, Prev        EdgeHandle
	HasNext, HasPrev  bool
	Face              FaceHandle
	HasFace           bool
	IsInf             bool
}

// Face holds one generator site (Site/HasSite) and the half-edges
// that border it. Color is a cosmetic attribute sampled at creation;
// the core never reads it back.
type Face struct {
	Site           VertexHandle
	HasSite        bool
	InnerComponent []EdgeHandle
	OuterComponent []EdgeHandle
	Color          [3]float64
}

// DCEL is the arena. The zero value is an empty DCEL, the same value
// New returns.
type DCEL struct {
	vertices []Vertex
	edges    []HalfEdge
	faces    []Face

	boundMin, boundMax geom.Point
	hasBound           bool
}

// New returns an empty DCEL.
func New() *DCEL {
	return &DCEL{}
}

// NewVertex inserts point, deduplicating: if a vertex with the same
// point already exists its handle is returned instead of a new one.
func (d *DCEL) NewVertex(point geom.Point) VertexHandle {
	for i := range d.vertices {
		if d.vertices[i].Point == point {
			return VertexHandle(i)
		}
	}

	h := VertexHandle(len(d.vertices))
	d.vertices = append(d.vertices, Vertex{Point: point})
	d.updateBound(point)
	return h
}

// NewEdge appends a single half-edge with no twin/next/prev/face set.
func (d *DCEL) NewEdge() EdgeHandle {
	h := EdgeHandle(len(d.edges))
	d.edges = append(d.edges, HalfEdge{})
	return h
}

// NewFace appends a face with no generator site set.
func (d *DCEL) NewFace() FaceHandle {
	h := FaceHandle(len(d.faces))
	d.faces = append(d.faces, Face{Color: [3]float64{rand.Float64(), rand.Float64(), rand.Float64()}})
	return h
}

// NewDualEdges atomically creates a twin pair of half-edges and wires
// their Twin cross-references.
func (d *DCEL) NewDualEdges() (e1, e2 EdgeHandle) {
	e1 = d.NewEdge()
	e2 = d.NewEdge()
	d.edges[e1].Twin = e2
	d.edges[e2].Twin = e1
	return e1, e2
}

// Vertex returns a copy of the vertex at h.
func (d *DCEL) Vertex(h VertexHandle) Vertex { return d.vertices[h] }

// Edge returns a copy of the half-edge at h.
func (d *DCEL) Edge(h EdgeHandle) HalfEdge { return d.edges[h] }

// Face returns a copy of the face at h.
func (d *DCEL) Face(h FaceHandle) Face { return d.faces[h] }

// SetVertexIncidentEdge records one outgoing half-edge for a vertex.
func (d *DCEL) SetVertexIncidentEdge(v VertexHandle, e EdgeHandle) {
	d.vertices[v].IncidentEdge = e
	d.vertices[v].HasIncident = true
}

// MarkSite flags v as a generator site rather than a Voronoi vertex.
func (d *DCEL) MarkSite(v VertexHandle) {
	d.vertices[v].IsSite = true
}

// SetFaceSite records the generator vertex of a face.
func (d *DCEL) SetFaceSite(f FaceHandle, v VertexHandle) {
	d.faces[f].Site = v
	d.faces[f].HasSite = true
}

// AppendOuterComponent appends e to f's outer-component list.
func (d *DCEL) AppendOuterComponent(f FaceHandle, e EdgeHandle) {
	d.faces[f].OuterComponent = append(d.faces[f].OuterComponent, e)
}

// AppendInnerComponent appends e to f's inner-component list.
func (d *DCEL) AppendInnerComponent(f FaceHandle, e EdgeHandle) {
	d.faces[f].InnerComponent = append(d.faces[f].InnerComponent, e)
}

// SetEdgeFace sets the incident face of half-edge e.
func (d *DCEL) SetEdgeFace(e EdgeHandle, f FaceHandle) {
	d.edges[e].Face = f
	d.edges[e].HasFace = true
}

// SetEdgeOrigin sets the origin vertex of half-edge e.
func (d *DCEL) SetEdgeOrigin(e EdgeHandle, v VertexHandle) {
	d.edges[e].Origin = v
	d.edges[e].HasOrigin = true
}

// SetNext wires e.Next = next and, symmetrically, next.Prev = e, so
// an edge's next always points back at it through Prev.
func (d *DCEL) SetNext(e, next EdgeHandle) {
	d.edges[e].Next = next
	d.edges[e].HasNext = true
	d.edges[next].Prev = e
	d.edges[next].HasPrev = true
}

// VertexCount, EdgeCount and FaceCount report arena sizes.
func (d *DCEL) VertexCount() int { return len(d.vertices) }
func (d *DCEL) EdgeCount() int   { return len(d.edges) }
func (d *DCEL) FaceCount() int   { return len(d.faces) }

// BoundingBox returns the min/max corner of all vertices inserted so
// far. ok is false for an empty DCEL. The sweep driver never reads
// it; cmd/voronoigen prints it.
func (d *DCEL) BoundingBox() (min, max geom.Point, ok bool) {
	return d.boundMin, d.boundMax, d.hasBound
}

func (d *DCEL) updateBound(p geom.Point) {
	if !d.hasBound {
		d.boundMin, d.boundMax = p, p
		d.hasBound = true
		return
	}
	if p.X < d.boundMin.X {
		d.boundMin.X = p.X
	}
	if p.Y < d.boundMin.Y {
		d.boundMin.Y = p.Y
	}
	if p.X > d.boundMax.X {
		d.boundMax.X = p.X
	}
	if p.Y > d.boundMax.Y {
		d.boundMax.Y = p.Y
	}
}
