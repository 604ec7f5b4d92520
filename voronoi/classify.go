package voronoi

import (
	"github.com/fortunesweep/voronoi/beachline"
	"github.com/fortunesweep/voronoi/geom"
)

// parabolaKind classifies where a new site lands relative to the arc
// the descent finds above it.
type parabolaKind int

const (
	parabolaNone parabolaKind = iota
	parabolaToLeftOf
	parabolaToRightOf
	parabolaIntersecting
)

// descent direction taken into the leaf, used to break the tie when
// the new site is level with the arc above it.
type descentDir int

const (
	descentNone descentDir = iota
	descentLeft
	descentRight
)

type parabolaResult struct {
	kind parabolaKind
	leaf beachline.NodeHandle
}

// findArcAbove descends the beach line to the arc directly above site,
// classifying the landing as a clean split (Intersecting) or a flush
// touch against a horizontal neighbour (ToLeftOf/ToRightOf), the case
// that arises when two sites share a y-coordinate and the new site
// arrives exactly level with an arc that has already degenerated to a
// single point under the sweep line.
func (d *Diagram) findArcAbove(site geom.Point) parabolaResult {
	root, ok := d.tree.Root()
	if !ok {
		return parabolaResult{kind: parabolaNone}
	}

	lastDir := descentNone
	h := root
	for d.tree.Kind(h) == beachline.InternalKind {
		bp := d.tree.Internal(h)
		x := geom.BreakpointX(bp.LeftSite, bp.RightSite, site.Y)
		if site.X > x {
			h, _ = d.tree.Right(h)
			lastDir = descentRight
		} else {
			h, _ = d.tree.Left(h)
			lastDir = descentLeft
		}
	}

	arcSite, _ := d.tree.Site(h)
	if arcSite.Y != site.Y {
		return parabolaResult{kind: parabolaIntersecting, leaf: h}
	}

	// Flush against a degenerate (horizontal) arc: the side is
	// inherited from the last descent step, or, when the new site is
	// the very first horizontal sibling, taken from the sign of the
	// x difference against the lone arc found at the root.
	switch lastDir {
	case descentLeft:
		return parabolaResult{kind: parabolaToLeftOf, leaf: h}
	case descentRight:
		return parabolaResult{kind: parabolaToRightOf, leaf: h}
	}
	if arcSite.X < site.X {
		return parabolaResult{kind: parabolaToRightOf, leaf: h}
	}
	return parabolaResult{kind: parabolaToLeftOf, leaf: h}
}
