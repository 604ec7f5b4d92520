package event

import (
	"container/heap"

	"github.com/fortunesweep/voronoi/geom"
)

// Queue is a max-heap of events ordered by less, with lazy
// invalidation: a cancelled circle event stays in the underlying heap
// until it is popped, at which point Pop silently discards it and
// moves on to the next one.
type Queue struct {
	h   innerHeap
	seq uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PushSite enqueues a site event for p.
func (q *Queue) PushSite(p geom.Point) *Event {
	ev := newSite(p, q.nextSeq())
	heap.Push(&q.h, ev)
	return ev
}

// PushCircle enqueues a circle event for the circle centred at centre
// with the given radius, attached to leafHandle (an opaque integer
// identifying the beach-line leaf that would collapse). Returns the
// new event so the caller can link it back from the arc.
func (q *Queue) PushCircle(centre geom.Point, radius float64, leafHandle int) *Event {
	ev := newCircle(centre, radius, leafHandle, q.nextSeq())
	heap.Push(&q.h, ev)
	return ev
}

// Len reports the number of events still resident in the heap,
// including any already-invalidated circle events awaiting pop.
func (q *Queue) Len() int { return len(q.h) }

// Pop removes and returns the next live event in priority order,
// silently discarding any invalidated circle events it encounters
// along the way. ok is false once the queue is exhausted of live
// events.
func (q *Queue) Pop() (ev *Event, ok bool) {
	for len(q.h) > 0 {
		e := heap.Pop(&q.h).(*Event)
		if e.Valid() {
			return e, true
		}
	}
	return nil, false
}

func (q *Queue) nextSeq() uint64 {
	s := q.seq
	q.seq++
	return s
}

// innerHeap implements container/heap.Interface over *Event: a plain
// slice with the five required methods, Push/Pop operating on the
// slice's ends.
type innerHeap []*Event

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool { return less(h[i], h[j]) }

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x interface{}) {
	e := x.(*Event)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
