package beachline

import "github.com/fortunesweep/voronoi/geom"

// TreeMax returns the rightmost descendant of the subtree rooted at h.
func (t *Tree) TreeMax(h NodeHandle) NodeHandle {
	for {
		right, ok := t.Right(h)
		if !ok {
			return h
		}
		h = right
	}
}

// TreeMin returns the leftmost descendant of the subtree rooted at h.
func (t *Tree) TreeMin(h NodeHandle) NodeHandle {
	for {
		left, ok := t.Left(h)
		if !ok {
			return h
		}
		h = left
	}
}

// Successor returns h's in-order successor, or false if h is the
// tree's rightmost node.
func (t *Tree) Successor(h NodeHandle) (NodeHandle, bool) {
	if right, ok := t.Right(h); ok {
		return t.TreeMin(right), true
	}

	node := h
	parent, hasParent := t.Parent(h)
	for hasParent {
		if right, ok := t.Right(parent); !ok || right != node {
			break
		}
		node = parent
		parent, hasParent = t.Parent(parent)
	}
	return parent, hasParent
}

// Predecessor returns h's in-order predecessor, or false if h is the
// tree's leftmost node.
func (t *Tree) Predecessor(h NodeHandle) (NodeHandle, bool) {
	if left, ok := t.Left(h); ok {
		return t.TreeMax(left), true
	}

	node := h
	parent, hasParent := t.Parent(h)
	for hasParent {
		if left, ok := t.Left(parent); !ok || left != node {
			break
		}
		node = parent
		parent, hasParent = t.Parent(parent)
	}
	return parent, hasParent
}

// optSuccessor/optPredecessor thread an (NodeHandle, bool) pair
// through Successor/Predecessor, so chains of optional hops read as
// one lookup per line.
func (t *Tree) optSuccessor(h NodeHandle, ok bool) (NodeHandle, bool) {
	if !ok {
		return 0, false
	}
	return t.Successor(h)
}

func (t *Tree) optPredecessor(h NodeHandle, ok bool) (NodeHandle, bool) {
	if !ok {
		return 0, false
	}
	return t.Predecessor(h)
}

// LeftArc returns the next arc to the left of h, skipping the
// intervening breakpoint: pred(pred(h)).
func (t *Tree) LeftArc(h NodeHandle) (NodeHandle, bool) {
	p, ok := t.Predecessor(h)
	return t.optPredecessor(p, ok)
}

// RightArc returns the next arc to the right of h, skipping the
// intervening breakpoint: succ(succ(h)).
func (t *Tree) RightArc(h NodeHandle) (NodeHandle, bool) {
	s, ok := t.Successor(h)
	return t.optSuccessor(s, ok)
}

// optSite resolves the site of an optional node handle, or false if
// either the handle is absent or the node is internal.
func (t *Tree) optSite(h NodeHandle, ok bool) (geom.Point, bool) {
	if !ok {
		return geom.Point{}, false
	}
	return t.Site(h)
}

// LeftTriple returns the three consecutive sites (left-left, left, h)
// centred on h's left neighbour, for the convergence test run when h
// is the newly-inserted arc.
func (t *Tree) LeftTriple(h NodeHandle) (a, b, c geom.Point, ok bool) {
	left, leftOK := t.LeftArc(h)
	leftLeft, leftLeftOK := t.optPredecessor2(left, leftOK)

	thisSite, thisOK := t.Site(h)
	leftSite, lOK := t.optSite(left, leftOK)
	leftLeftSite, llOK := t.optSite(leftLeft, leftLeftOK)

	if !thisOK || !lOK || !llOK {
		return geom.Point{}, geom.Point{}, geom.Point{}, false
	}
	return leftLeftSite, leftSite, thisSite, true
}

// MiddleTriple returns the three consecutive sites (left, h, right)
// centred on h itself, the test run after a circle event for h's
// former neighbours.
func (t *Tree) MiddleTriple(h NodeHandle) (a, b, c geom.Point, ok bool) {
	left, leftOK := t.LeftArc(h)
	right, rightOK := t.RightArc(h)

	thisSite, thisOK := t.Site(h)
	leftSite, lOK := t.optSite(left, leftOK)
	rightSite, rOK := t.optSite(right, rightOK)

	if !thisOK || !lOK || !rOK {
		return geom.Point{}, geom.Point{}, geom.Point{}, false
	}
	return leftSite, thisSite, rightSite, true
}

// RightTriple returns the three consecutive sites (h, right,
// right-right) centred on h's right neighbour.
func (t *Tree) RightTriple(h NodeHandle) (a, b, c geom.Point, ok bool) {
	right, rightOK := t.RightArc(h)
	rightRight, rightRightOK := t.optSuccessor2(right, rightOK)

	thisSite, thisOK := t.Site(h)
	rightSite, rOK := t.optSite(right, rightOK)
	rightRightSite, rrOK := t.optSite(rightRight, rightRightOK)

	if !thisOK || !rOK || !rrOK {
		return geom.Point{}, geom.Point{}, geom.Point{}, false
	}
	return thisSite, rightSite, rightRightSite, true
}

// optPredecessor2/optSuccessor2 are LeftArc/RightArc threaded through
// an optional handle, used by {Left,Right}Triple to reach the arc two
// positions further out.
func (t *Tree) optPredecessor2(h NodeHandle, ok bool) (NodeHandle, bool) {
	if !ok {
		return 0, false
	}
	return t.LeftArc(h)
}

func (t *Tree) optSuccessor2(h NodeHandle, ok bool) (NodeHandle, bool) {
	if !ok {
		return 0, false
	}
	return t.RightArc(h)
}
