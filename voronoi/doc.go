// Package voronoi implements the sweep driver: Fortune's algorithm
// over package beachline (the status structure), package event (the
// priority queue) and package dcel (the geometry accumulator).
//
// # What
//
// Diagram consumes an ordered list of integer sites and, on Execute,
// runs the sweep to completion: every site event splits the arc
// above it and may create new circle events; every circle event
// removes the collapsing arc, emits a Voronoi vertex, and may create
// new circle events for its former neighbours. The result is read
// back through DCEL(), a read-only view of the finished geometry.
//
// # Why
//
// This is Fortune's planar Voronoi construction, O(n log n) with a
// balanced status structure: a sweepline status structure over
// parabolic arcs avoids the O(n^2) pairwise-bisector approach, at the
// cost of the tree-surgery and lazy-invalidation machinery documented
// on Diagram's unexported helpers. Here the beach-line tree is not
// self-balancing and DCEL vertex deduplication scans every existing
// vertex, so this implementation does not have an O(n log n)
// worst-case bound.
//
// # Non-goals
//
// No viewport clipping, no Delaunay dual extraction, no rendering, no
// site-file parsing, no concurrency. Diagram is not safe for
// concurrent use.
package voronoi
