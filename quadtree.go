// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gisfromscratch/quadtree/geom"
)

// Index is the contract shared by spatial indices which store integer
// entry identifiers by bounding box.
type Index interface {
	// Insert tries to store id under shape's bounding box, returning
	// true if the entry was stored.
	Insert(id int, shape geom.Bounded) bool
	// Intersect returns a lazy sequence of candidate identifiers whose
	// bounding boxes may intersect the query shape's bounding box.
	Intersect(query geom.Bounded) *Iterator
}

// An entry is a single stored identifier together with the bounding box
// it was inserted with.
type entry struct {
	id  int
	box geom.Box
}

// A node covers a fixed rectangular domain of the plane. It holds up to
// the tree's capacity of entries directly and, once it has overflowed,
// exactly four children covering the quadrants of its domain.
//
// A node is a leaf while quads is nil and internal once quads is set.
// The transition happens at most once and is never reversed. Entries in
// an internal node's own bucket stay there; subdivision does not move
// them into children.
type node struct {
	// domain is the region this node is responsible for.
	domain geom.Box
	// extent is the union of the bounding boxes of every entry stored
	// in this node's subtree, or geom.EmptyBox if there are none. It
	// differs from domain when an entry's box extends past the domain
	// of the node that stores it.
	extent geom.Box
	// depth is the number of subdivisions between the root and this
	// node.
	depth int
	// entries is the node's bucket, in insertion order.
	entries []entry
	// quads holds the children in NorthWest, NorthEast, SouthEast,
	// SouthWest order, or nil if the node is a leaf.
	quads *[geom.NumQuadrants]node
}

func newNode(domain geom.Box, depth, capacity int) node {
	return node{
		domain:  domain,
		extent:  geom.EmptyBox,
		depth:   depth,
		entries: make([]entry, 0, capacity),
	}
}

func (n *node) leaf() bool {
	return n.quads == nil
}

// reaches reports whether a query box can match anything in the
// subtree of a non-root node.
func (n *node) reaches(b *geom.Box) bool {
	return n.domain.Intersects(b) || n.extent.Intersects(b)
}

// QuadTree is a bucketed region quadtree. Each node holds a fixed
// capacity of entries and subdivides into four quadrant children the
// first time an entry arrives while it is full.
//
// An entry whose bounding box spans several quadrants is stored in the
// first quadrant it touches, in NorthWest, NorthEast, SouthEast,
// SouthWest order.
type QuadTree struct {
	root     node
	capacity int
	opts     options
	// len is the number of stored entries.
	len int
	// nodes is the total node count, root included.
	nodes int
	// depth is the depth of the deepest node.
	depth int
	// rejected is the number of failed calls to Add or Insert.
	rejected int
}

// New creates an empty QuadTree covering domain, whose nodes each hold
// up to capacity entries before subdividing.
//
// A node subdivides on both axes at once, so a domain with zero width
// or zero height never subdivides. Such a tree holds at most capacity
// entries and rejects the rest with ErrMaxDepth.
//
// Panics if capacity is less than 1 or domain is not a valid box.
func New(domain geom.Box, capacity int, opts ...Option) *QuadTree {
	if capacity < 1 {
		fmtPanic("capacity must be at least 1, got %d", capacity)
	} else if !domain.Valid() {
		fmtPanic("invalid domain %s", domain)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &QuadTree{
		root:     newNode(domain, 0, capacity),
		capacity: capacity,
		opts:     o,
		nodes:    1,
	}
}

// Domain returns the region covered by the tree's root node.
func (t *QuadTree) Domain() geom.Box {
	return t.root.domain
}

// Capacity returns the number of entries each node holds before it
// subdivides.
func (t *QuadTree) Capacity() int {
	return t.capacity
}

// Len returns the number of entries stored in the tree.
func (t *QuadTree) Len() int {
	return t.len
}

// Insert stores id under shape's bounding box and reports whether the
// entry was stored. It is Add with the reason for failure discarded.
//
// Identifiers are opaque to the tree. Inserting the same identifier
// twice stores it twice.
func (t *QuadTree) Insert(id int, shape geom.Bounded) bool {
	return t.Add(id, shape) == nil
}

// Add stores id under shape's bounding box.
//
// Add returns ErrInvalidBox if the bounding box is not valid,
// ErrOutsideDomain if it does not intersect the tree's domain, and a
// *DepthError, which matches ErrMaxDepth, if the entry arrived at a
// full node which is not allowed to subdivide. In each case the tree's
// contents are unchanged.
func (t *QuadTree) Add(id int, shape geom.Bounded) error {
	if shape == nil {
		textPanic("nil shape")
	}
	b := shape.BoundingBox()
	err := t.add(id, &b)
	if err != nil {
		t.rejected++
		var de *DepthError
		if errors.As(err, &de) {
			t.opts.logger.Warn("entry rejected",
				slog.Int("id", id),
				slog.Int("depth", de.Depth),
				slog.String("reason", de.Reason))
		}
		return err
	}
	t.len++
	return nil
}

func (t *QuadTree) add(id int, b *geom.Box) error {
	if !b.Valid() {
		return ErrInvalidBox
	}
	return t.place(&t.root, id, b)
}

// place stores the entry in n's subtree. The returned error is
// ErrOutsideDomain if the box misses n's domain.
func (t *QuadTree) place(n *node, id int, b *geom.Box) error {
	if !n.domain.Intersects(b) {
		return ErrOutsideDomain
	}

	if len(n.entries) < t.capacity {
		n.entries = append(n.entries, entry{id: id, box: *b})
		n.extent.Expand(b)
		return nil
	}

	if n.leaf() {
		if err := t.subdivide(n, id); err != nil {
			return err
		}
	}

	// The quadrants tile the domain, so at least one of them intersects
	// b. Try them in order and keep the first reason for rejection
	// other than a miss.
	var rejected error
	for i := range n.quads {
		err := t.place(&n.quads[i], id, b)
		if err == nil {
			n.extent.Expand(b)
			return nil
		} else if rejected == nil && err != ErrOutsideDomain {
			rejected = err
		}
	}
	if rejected != nil {
		return rejected
	}
	return ErrOutsideDomain
}

// subdivide gives n its four children, or explains why it may not.
func (t *QuadTree) subdivide(n *node, id int) error {
	var reason string
	switch {
	case n.depth >= t.opts.maxDepth:
		reason = reasonMaxDepth
	case !n.domain.Divisible(0):
		reason = reasonCollapsed
	case !n.domain.Divisible(t.opts.minCellSize):
		reason = reasonMinCellSize
	}
	if reason != "" {
		return &DepthError{ID: id, Depth: n.depth, Domain: n.domain, Reason: reason}
	}

	domains := n.domain.Quadrants()
	quads := new([geom.NumQuadrants]node)
	for i := range domains {
		quads[i] = newNode(domains[i], n.depth+1, t.capacity)
	}
	n.quads = quads

	t.nodes += geom.NumQuadrants
	if n.depth+1 > t.depth {
		t.depth = n.depth + 1
	}
	if t.opts.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.opts.logger.Debug("subdivided node",
			slog.Int("depth", n.depth),
			slog.String("domain", n.domain.String()))
	}
	return nil
}

// Intersect returns a lazy, single-pass sequence of the identifiers of
// entries whose bounding boxes may intersect query's bounding box.
//
// Every entry whose box intersects the query box is included. Unless
// the tree was created WithExactFilter(true), the sequence also
// includes every other entry held by a node whose domain intersects the
// query box. Entries are produced depth first: a node's own entries in
// insertion order, then its NorthWest, NorthEast, SouthEast and
// SouthWest subtrees. Subtrees the query cannot reach are never
// visited.
//
// A query whose bounding box is not valid, or which misses the tree's
// domain, matches nothing.
//
// The tree must not be modified while the returned Iterator is in use.
func (t *QuadTree) Intersect(query geom.Bounded) *Iterator {
	if query == nil {
		textPanic("nil query")
	}
	return newIterator(&t.root, query.BoundingBox(), t.opts.exact)
}

// Stats summarizes the shape of a QuadTree.
type Stats struct {
	// Entries is the number of stored entries.
	Entries int
	// Nodes is the total number of nodes, root included.
	Nodes int
	// Leaves is the number of nodes without children.
	Leaves int
	// MaxDepth is the depth of the deepest node. A tree whose root has
	// never subdivided has MaxDepth 0.
	MaxDepth int
	// Rejected counts the calls to Add or Insert which failed.
	Rejected int
}

// Stats returns a summary of the tree's current shape.
func (t *QuadTree) Stats() Stats {
	internal := (t.nodes - 1) / geom.NumQuadrants
	return Stats{
		Entries:  t.len,
		Nodes:    t.nodes,
		Leaves:   t.nodes - internal,
		MaxDepth: t.depth,
		Rejected: t.rejected,
	}
}
