// Package beachline implements the beach-line status structure: a
// binary search tree, not self-balancing, keyed by the horizontal
// order of parabolic arcs intersected by the sweep line. Leaves are
// arcs; internal nodes are breakpoints between two adjacent arcs.
//
// In-order traversal always yields the arcs in left-to-right x-order
// on the beach line; every internal node's recorded left/right site
// equals the site of the rightmost leaf in its left subtree and the
// leftmost leaf in its right subtree. The sweep driver (package
// voronoi) is responsible for maintaining both invariants across tree
// surgery; this package only provides the primitives.
package beachline
