package event

import "github.com/fortunesweep/voronoi/geom"

// Kind tags an Event as a site arrival or a circle collapse.
type Kind int

const (
	Site Kind = iota
	Circle
)

// Event is a tagged union: a Site event carries only Point (the
// arriving site); a Circle event carries Center, Radius and the
// handle of the beach-line leaf (arc) it would collapse.
//
// The validity flag is a shared, mutable bit: the driver flips it
// through the Arc that owns this circle event, and checks it again
// when the event is popped, so an event can be cancelled without
// being removed from the heap.
type Event struct {
	Kind   Kind
	Point  geom.Point // set when Kind == Site
	Center geom.Point // set when Kind == Circle
	Radius float64    // set when Kind == Circle

	// LeafHandle identifies, as a plain integer, the beach-line leaf
	// this circle event would collapse. It is opaque here (package
	// event does not know about beach-line node types) and is cast
	// back to the concrete handle type by the sweep driver.
	LeafHandle int

	valid *bool
	seq   uint64
	index int // heap index, maintained by container/heap
}

// newSite returns a site event for p. seq breaks ties against other
// events at the same y by insertion order; assigned by the Queue.
func newSite(p geom.Point, seq uint64) *Event {
	return &Event{Kind: Site, Point: p, seq: seq, index: -1}
}

// newCircle returns a circle event for the circle centred at centre
// with the given radius, attached to leafHandle; assigned by the Queue.
func newCircle(centre geom.Point, radius float64, leafHandle int, seq uint64) *Event {
	valid := true
	return &Event{
		Kind:       Circle,
		Center:     centre,
		Radius:     radius,
		LeafHandle: leafHandle,
		valid:      &valid,
		seq:        seq,
		index:      -1,
	}
}

// Y returns the sweep-line position at which this event fires:
// Point.Y for a site event, Center.Y - Radius for a circle event,
// the lowest point of the circle, where the descending sweep line
// becomes tangent to it and the middle arc shrinks to zero width.
func (e *Event) Y() float64 {
	if e.Kind == Site {
		return e.Point.Y
	}
	return e.Center.Y - e.Radius
}

// Valid reports whether this circle event has not been cancelled.
// Always true for site events.
func (e *Event) Valid() bool {
	return e.Kind == Site || *e.valid
}

// Invalidate cancels this circle event. Calling it on a site event
// panics: site events are never cancellable, and a caller asking to
// cancel one indicates a driver bug.
func (e *Event) Invalidate() {
	if e.Kind != Circle {
		panic("event: Invalidate called on a non-circle event")
	}
	*e.valid = false
}

// less implements the queue's pop order: greater Y pops first; at
// equal y, Site beats Circle; remaining ties break deterministically
// by insertion order (earlier first).
func less(a, b *Event) bool {
	ay, by := a.Y(), b.Y()
	if ay != by {
		return ay > by // max-heap: greater y first
	}
	if a.Kind != b.Kind {
		return a.Kind == Site // Site before Circle
	}
	return a.seq < b.seq
}
