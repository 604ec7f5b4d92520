package voronoi

import (
	"image"
	"io"
	"log"

	"github.com/fortunesweep/voronoi/beachline"
	"github.com/fortunesweep/voronoi/dcel"
	"github.com/fortunesweep/voronoi/event"
	"github.com/fortunesweep/voronoi/geom"
)

// Diagram is the sweep driver: the beach line, the event queue, and
// the DCEL being accumulated. Not safe for concurrent use.
type Diagram struct {
	dcel   *dcel.DCEL
	tree   beachline.Tree
	queue  *event.Queue
	sweepY float64
	logger *log.Logger
	step   int
}

// Option configures a Diagram at construction, in the functional-
// options style.
type Option func(*Diagram)

// WithLogger routes the driver's per-event trace to l instead of
// discarding it. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(d *Diagram) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a Diagram seeded with one site event per distinct point
// in sites. Duplicate coordinates are folded into a single site.
func New(sites []image.Point, opts ...Option) *Diagram {
	d := &Diagram{
		dcel:   dcel.New(),
		queue:  event.NewQueue(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(d)
	}

	seen := make(map[geom.Point]bool, len(sites))
	for _, p := range sites {
		pt := geom.Pt(float64(p.X), float64(p.Y))
		if seen[pt] {
			continue
		}
		seen[pt] = true
		d.queue.PushSite(pt)
	}
	return d
}

// DCEL returns the diagram's geometry accumulator. Callers must treat
// it as read-only: mutating it invalidates the sweep's own invariants.
func (d *Diagram) DCEL() *dcel.DCEL {
	return d.dcel
}

// Step processes the single highest-priority event in the queue and
// reports whether one was found. A false return means the sweep is
// complete.
func (d *Diagram) Step() bool {
	ev, ok := d.queue.Pop()
	if !ok {
		return false
	}
	d.sweepY = ev.Y()

	switch ev.Kind {
	case event.Site:
		d.logger.Printf("step %d: site event at (%g, %g)", d.step, ev.Point.X, ev.Point.Y)
		d.processSite(ev.Point)
	case event.Circle:
		d.logger.Printf("step %d: circle event centre (%g, %g) radius %g", d.step, ev.Center.X, ev.Center.Y, ev.Radius)
		d.processCircle(ev)
	}
	d.step++
	return true
}

// Execute runs Step until the queue is exhausted.
func (d *Diagram) Execute() {
	for d.Step() {
	}
}

// processSite handles a site event: it creates the new site's vertex
// and face, classifies where the new arc lands relative to the arc
// currently above it, splices the beach line accordingly, and tests
// the new arc's left and right triples for convergence.
func (d *Diagram) processSite(site geom.Point) {
	vertex := d.dcel.NewVertex(site)
	d.dcel.MarkSite(vertex)
	face := d.dcel.NewFace()
	d.dcel.SetFaceSite(face, vertex)

	result := d.findArcAbove(site)

	var newRoot, newArc beachline.NodeHandle
	var replaced beachline.NodeHandle
	hasReplaced := false

	switch result.kind {
	case parabolaNone:
		newRoot = d.tree.NewLeaf(site, face)
		newArc = newRoot

	case parabolaToLeftOf:
		old := d.tree.Leaf(result.leaf)
		oldSite, oldFace := old.Site, old.Face
		d.invalidateCircleEvent(result.leaf)

		eOld, eNew := d.dcel.NewDualEdges()
		d.dcel.SetEdgeFace(eNew, face)
		d.dcel.SetEdgeFace(eOld, oldFace)
		d.dcel.AppendOuterComponent(face, eNew)
		d.dcel.AppendOuterComponent(oldFace, eOld)

		left := d.tree.NewLeaf(site, face)
		right := d.tree.NewLeaf(oldSite, oldFace)
		bp := d.tree.NewInternal(beachline.Breakpoint{LeftSite: site, RightSite: oldSite, HalfEdge: eNew}, left, right)
		d.tree.SetParent(left, bp)
		d.tree.SetParent(right, bp)

		newRoot, newArc = bp, left
		replaced, hasReplaced = result.leaf, true

	case parabolaToRightOf:
		old := d.tree.Leaf(result.leaf)
		oldSite, oldFace := old.Site, old.Face
		d.invalidateCircleEvent(result.leaf)

		eOld, eNew := d.dcel.NewDualEdges()
		d.dcel.SetEdgeFace(eNew, face)
		d.dcel.SetEdgeFace(eOld, oldFace)
		d.dcel.AppendOuterComponent(face, eNew)
		d.dcel.AppendOuterComponent(oldFace, eOld)

		left := d.tree.NewLeaf(oldSite, oldFace)
		right := d.tree.NewLeaf(site, face)
		bp := d.tree.NewInternal(beachline.Breakpoint{LeftSite: oldSite, RightSite: site, HalfEdge: eOld}, left, right)
		d.tree.SetParent(left, bp)
		d.tree.SetParent(right, bp)

		newRoot, newArc = bp, right
		replaced, hasReplaced = result.leaf, true

	case parabolaIntersecting:
		old := d.tree.Leaf(result.leaf)
		oldSite, oldFace := old.Site, old.Face
		d.invalidateCircleEvent(result.leaf)

		eNew, eOld := d.dcel.NewDualEdges()
		d.dcel.SetEdgeFace(eNew, face)
		d.dcel.SetEdgeFace(eOld, oldFace)
		d.dcel.AppendOuterComponent(face, eNew)
		d.dcel.AppendOuterComponent(oldFace, eOld)

		left := d.tree.NewLeaf(oldSite, oldFace)
		middle := d.tree.NewLeaf(site, face)
		right := d.tree.NewLeaf(oldSite, oldFace)

		lm := d.tree.NewInternal(beachline.Breakpoint{LeftSite: oldSite, RightSite: site, HalfEdge: eOld}, left, middle)
		ir := d.tree.NewInternal(beachline.Breakpoint{LeftSite: site, RightSite: oldSite, HalfEdge: eNew}, lm, right)

		d.tree.SetParent(left, lm)
		d.tree.SetParent(middle, lm)
		d.tree.SetParent(lm, ir)
		d.tree.SetParent(right, ir)

		newRoot, newArc = ir, middle
		replaced, hasReplaced = result.leaf, true
	}

	if hasReplaced {
		if parent, ok := d.tree.Parent(replaced); ok {
			if left, _ := d.tree.Left(parent); left == replaced {
				d.tree.SetLeft(parent, newRoot)
			} else {
				d.tree.SetRight(parent, newRoot)
			}
			d.tree.SetParent(newRoot, parent)
		} else {
			d.tree.SetRoot(newRoot)
		}
	} else {
		d.tree.SetRoot(newRoot)
	}

	if a, b, c, ok := d.tree.LeftTriple(newArc); ok && geom.IsClockwise(a, b, c) {
		if leftArc, ok := d.tree.LeftArc(newArc); ok {
			d.makeCircleEvent(leftArc, a, b, c)
		}
	}
	if a, b, c, ok := d.tree.RightTriple(newArc); ok && geom.IsClockwise(a, b, c) {
		if rightArc, ok := d.tree.RightArc(newArc); ok {
			d.makeCircleEvent(rightArc, a, b, c)
		}
	}
}

// processCircle handles a circle event: it removes the collapsing
// middle arc from the beach line, materialises the Voronoi vertex,
// rewires the three meeting half-edges, invalidates the former
// neighbours' pending circle events, and tests their new middle
// triples for convergence.
func (d *Diagram) processCircle(ev *event.Event) {
	middle := beachline.NodeHandle(ev.LeafHandle)

	// Captured before any tree surgery: once the surgery below
	// rewrites the grandparent's child slot, navigating from middle
	// through its ancestors would read a structure that no longer
	// reflects the pre-surgery shape.
	arcLeft, hasLeft := d.tree.LeftArc(middle)
	arcRight, hasRight := d.tree.RightArc(middle)
	if !hasLeft || !hasRight {
		panic("voronoi: circle event middle arc has no both-side neighbour")
	}

	pred, predOK := d.tree.Predecessor(middle)
	succ, succOK := d.tree.Successor(middle)
	if !predOK || !succOK {
		panic("voronoi: circle event middle arc is missing an adjacent breakpoint")
	}
	parent, parentOK := d.tree.Parent(middle)
	if !parentOK {
		panic("voronoi: circle event middle arc has no parent")
	}
	grandparent, grandparentOK := d.tree.Parent(parent)
	if !grandparentOK {
		panic("voronoi: circle event middle arc's parent has no parent")
	}

	var other beachline.NodeHandle
	if parent == pred {
		other = succ
	} else {
		other = pred
	}

	var sibling beachline.NodeHandle
	if r, _ := d.tree.Right(parent); r == middle {
		sibling, _ = d.tree.Left(parent)
	} else {
		sibling, _ = d.tree.Right(parent)
	}

	d.tree.SetParent(sibling, grandparent)
	if l, _ := d.tree.Left(grandparent); l == parent {
		d.tree.SetLeft(grandparent, sibling)
	} else {
		d.tree.SetRight(grandparent, sibling)
	}

	if other == pred {
		if s, ok := d.tree.Successor(other); ok {
			if site, ok := d.tree.Site(s); ok {
				d.tree.SetRightSite(other, site)
			}
		}
	} else {
		if p, ok := d.tree.Predecessor(other); ok {
			if site, ok := d.tree.Site(p); ok {
				d.tree.SetLeftSite(other, site)
			}
		}
	}

	d.invalidateCircleEvent(arcLeft)
	d.invalidateCircleEvent(arcRight)

	leftArc := d.tree.Leaf(arcLeft)
	rightArc := d.tree.Leaf(arcRight)

	t1, t2 := d.dcel.NewDualEdges()
	d.dcel.SetEdgeFace(t1, leftArc.Face)
	d.dcel.SetEdgeFace(t2, rightArc.Face)

	centreVertex := d.dcel.NewVertex(ev.Center)
	d.dcel.SetVertexIncidentEdge(centreVertex, t1)

	eParent := d.tree.Edge(parent)
	eOther := d.tree.Edge(other)
	ePred := d.tree.Edge(pred)
	eSucc := d.tree.Edge(succ)

	d.dcel.SetEdgeOrigin(eParent, centreVertex)
	d.dcel.SetEdgeOrigin(eOther, centreVertex)
	d.dcel.SetEdgeOrigin(t1, centreVertex)

	predTwin := d.dcel.Edge(ePred).Twin
	succTwin := d.dcel.Edge(eSucc).Twin

	d.dcel.SetNext(predTwin, eSucc)
	d.dcel.SetNext(succTwin, t1)
	d.dcel.SetNext(t2, ePred)

	d.tree.SetEdge(other, t2)

	if a, b, c, ok := d.tree.MiddleTriple(arcLeft); ok && geom.IsClockwise(a, b, c) {
		d.makeCircleEvent(arcLeft, a, b, c)
	}
	if a, b, c, ok := d.tree.MiddleTriple(arcRight); ok && geom.IsClockwise(a, b, c) {
		d.makeCircleEvent(arcRight, a, b, c)
	}
}

// makeCircleEvent computes the circumcentre of a,b,c and, if it
// exists, enqueues a circle event attached to arc and links it back
// from arc's Arc.CircleEvent. A collinear triple has no circumcentre
// and enqueues nothing; neither does a circle whose lowest point lies
// above the sweep line, since that collapse moment has already
// passed.
func (d *Diagram) makeCircleEvent(arc beachline.NodeHandle, a, b, c geom.Point) {
	centre, ok := geom.Circumcentre(a, b, c)
	if !ok {
		return
	}
	radius := geom.Distance(centre, a)
	if centre.Y-radius > d.sweepY {
		return
	}
	d.logger.Printf("enqueue circle event centre (%g, %g) radius %g", centre.X, centre.Y, radius)
	ev := d.queue.PushCircle(centre, radius, int(arc))
	d.tree.Leaf(arc).CircleEvent = ev
}

// invalidateCircleEvent cancels arc's pending circle event, if any.
func (d *Diagram) invalidateCircleEvent(arc beachline.NodeHandle) {
	leaf := d.tree.Leaf(arc)
	if leaf.CircleEvent != nil {
		leaf.CircleEvent.Invalidate()
		leaf.CircleEvent = nil
	}
}
