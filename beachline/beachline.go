package beachline

import (
	"github.com/fortunesweep/voronoi/dcel"
	"github.com/fortunesweep/voronoi/event"
	"github.com/fortunesweep/voronoi/geom"
)

// NodeHandle addresses a node in the tree's arena. There is no zero
// value that means "no node"; use a (NodeHandle, bool) pair instead,
// matching the rest of this module's handle convention.
type NodeHandle int

// Kind discriminates a node's variant.
type Kind int

const (
	LeafKind Kind = iota
	InternalKind
)

// Arc is a leaf: the parabolic arc of Site currently on the beach
// line. CircleEvent links to this arc's pending circle event, if
// any; the shared mutable flag described in package event lets the
// driver cancel it through this pointer.
type Arc struct {
	Site        geom.Point
	Face        dcel.FaceHandle
	CircleEvent *event.Event
}

// Breakpoint is an internal node: the intersection of the arcs for
// LeftSite and RightSite. HalfEdge is the half-edge this breakpoint
// traces as the sweep advances.
type Breakpoint struct {
	LeftSite, RightSite geom.Point
	HalfEdge            dcel.EdgeHandle
}

type node struct {
	kind Kind
	arc  Arc
	bp   Breakpoint

	parent, left, right          NodeHandle
	hasParent, hasLeft, hasRight bool
}

// Tree is the beach-line status structure. The zero value is an empty
// tree (no root) and is ready to use.
type Tree struct {
	nodes   []node
	root    NodeHandle
	hasRoot bool
}

// IsEmpty reports whether the tree has no root yet.
func (t *Tree) IsEmpty() bool { return !t.hasRoot }

// Root returns the tree's root handle.
func (t *Tree) Root() (NodeHandle, bool) { return t.root, t.hasRoot }

// SetRoot replaces the root.
func (t *Tree) SetRoot(h NodeHandle) {
	t.root = h
	t.hasRoot = true
}

// NewLeaf creates and returns a new arc leaf for site, faced by face.
func (t *Tree) NewLeaf(site geom.Point, face dcel.FaceHandle) NodeHandle {
	h := NodeHandle(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind: LeafKind,
		arc:  Arc{Site: site, Face: face},
	})
	return h
}

// NewInternal creates and returns a new breakpoint node with the
// given children. It does not set the children's parent pointers;
// the caller wires those once the whole new subtree is built, since
// only the caller knows how many internal nodes it is stacking.
func (t *Tree) NewInternal(bp Breakpoint, left, right NodeHandle) NodeHandle {
	h := NodeHandle(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:     InternalKind,
		bp:       bp,
		left:     left,
		right:    right,
		hasLeft:  true,
		hasRight: true,
	})
	return h
}

// Kind reports whether h is a leaf or an internal node.
func (t *Tree) Kind(h NodeHandle) Kind { return t.nodes[h].kind }

// Leaf returns a pointer to h's arc data, for reading and mutating in
// place. Panics if h is not a leaf.
func (t *Tree) Leaf(h NodeHandle) *Arc {
	n := &t.nodes[h]
	if n.kind != LeafKind {
		panic("beachline: Leaf called on an internal node")
	}
	return &n.arc
}

// Internal returns a pointer to h's breakpoint data. Panics if h is a
// leaf.
func (t *Tree) Internal(h NodeHandle) *Breakpoint {
	n := &t.nodes[h]
	if n.kind != InternalKind {
		panic("beachline: Internal called on a leaf node")
	}
	return &n.bp
}

// Edge returns the half-edge traced by the breakpoint at h. Panics if
// h is a leaf: only breakpoints trace edges.
func (t *Tree) Edge(h NodeHandle) dcel.EdgeHandle {
	return t.Internal(h).HalfEdge
}

// SetEdge rewrites the half-edge traced by the breakpoint at h.
func (t *Tree) SetEdge(h NodeHandle, e dcel.EdgeHandle) {
	t.Internal(h).HalfEdge = e
}

// SetLeftSite rewrites a breakpoint's left site reference.
func (t *Tree) SetLeftSite(h NodeHandle, p geom.Point) {
	t.Internal(h).LeftSite = p
}

// SetRightSite rewrites a breakpoint's right site reference.
func (t *Tree) SetRightSite(h NodeHandle, p geom.Point) {
	t.Internal(h).RightSite = p
}

// Parent, Left and Right return h's tree-structural links.
func (t *Tree) Parent(h NodeHandle) (NodeHandle, bool) {
	n := &t.nodes[h]
	return n.parent, n.hasParent
}

func (t *Tree) Left(h NodeHandle) (NodeHandle, bool) {
	n := &t.nodes[h]
	return n.left, n.hasLeft
}

func (t *Tree) Right(h NodeHandle) (NodeHandle, bool) {
	n := &t.nodes[h]
	return n.right, n.hasRight
}

// SetParent, SetLeft and SetRight rewrite h's tree-structural links.
func (t *Tree) SetParent(h, p NodeHandle) {
	t.nodes[h].parent = p
	t.nodes[h].hasParent = true
}

func (t *Tree) ClearParent(h NodeHandle) {
	t.nodes[h].hasParent = false
}

func (t *Tree) SetLeft(h, l NodeHandle) {
	t.nodes[h].left = l
	t.nodes[h].hasLeft = true
}

func (t *Tree) SetRight(h, r NodeHandle) {
	t.nodes[h].right = r
	t.nodes[h].hasRight = true
}

// Site returns the site associated with h if it is a leaf, or false
// if h is internal (internal nodes have no single site of their own).
func (t *Tree) Site(h NodeHandle) (geom.Point, bool) {
	n := &t.nodes[h]
	if n.kind != LeafKind {
		return geom.Point{}, false
	}
	return n.arc.Site, true
}
