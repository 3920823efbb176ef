// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"iter"

	"github.com/gisfromscratch/quadtree/geom"
)

// lookahead is the state of an Iterator's one-element lookahead.
type lookahead int

const (
	// unknown means the next element has not been searched for.
	unknown lookahead = iota
	// ready means the next element has been found and is held in
	// Iterator.next.
	ready
	// exhausted means there are no more elements.
	exhausted
)

// An Iterator is a lazy, single-pass sequence of entry identifiers
// produced by QuadTree.Intersect. Nodes are visited only as elements
// are requested, so abandoning an Iterator part way through skips the
// remaining work.
//
// The usual way to consume an Iterator is:
//
//	it := tree.Intersect(query)
//	for it.Next() {
//		id := it.Value()
//		// ...
//	}
//
// An Iterator is not safe for concurrent use, but separate Iterators on
// the same unmodified tree are independent.
type Iterator struct {
	query geom.Box
	exact bool
	// stack holds the subtrees still to visit. The top of the stack is
	// the next subtree in visiting order.
	stack []*node
	// cur is the node whose bucket is being drained, and pos is the
	// index of the next entry in that bucket to consider.
	cur *node
	pos int
	// state and next hold the lookahead.
	state lookahead
	next  int
	// value is the current element, valid only if hasValue.
	value    int
	hasValue bool
}

// newIterator starts a traversal at root. A query missing the tree's
// domain visits nothing, even if stored boxes extend past the domain.
func newIterator(root *node, query geom.Box, exact bool) *Iterator {
	it := &Iterator{query: query, exact: exact}
	if query.Valid() && root.domain.Intersects(&query) {
		it.stack = append(make([]*node, 0, 16), root)
	}
	return it
}

// Next advances to the next identifier, which is then available from
// Value, and reports whether there was one.
func (it *Iterator) Next() bool {
	if !it.peek() {
		it.hasValue = false
		return false
	}
	it.value, it.hasValue, it.state = it.next, true, unknown
	return true
}

// Value returns the identifier the most recent call to Next advanced
// to. Panics if Next has not been called or returned false.
func (it *Iterator) Value() int {
	if !it.hasValue {
		textPanic("no current value")
	}
	return it.value
}

// HasNext reports whether another identifier is available, without
// consuming it.
func (it *Iterator) HasNext() bool {
	return it.peek()
}

// Take consumes and returns the next identifier. Panics if the
// iterator is exhausted, so callers must check HasNext first unless
// they know more identifiers remain.
func (it *Iterator) Take() int {
	if !it.Next() {
		textPanic("iterator exhausted")
	}
	return it.value
}

// All returns a range-over-func sequence of the remaining identifiers.
// Breaking out of the loop leaves the rest of the Iterator unconsumed.
func (it *Iterator) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for it.Next() {
			if !yield(it.value) {
				return
			}
		}
	}
}

// Collect consumes the Iterator and returns the remaining identifiers.
func (it *Iterator) Collect() []int {
	ids := make([]int, 0)
	for it.Next() {
		ids = append(ids, it.value)
	}
	return ids
}

func (it *Iterator) peek() bool {
	if it.state == unknown {
		if it.advance() {
			it.state = ready
		} else {
			it.state = exhausted
			it.stack, it.cur = nil, nil
		}
	}
	return it.state == ready
}

// advance finds the next identifier and stores it in it.next.
func (it *Iterator) advance() bool {
	for {
		// Drain the bucket of the node being visited.
		if it.cur != nil {
			for it.pos < len(it.cur.entries) {
				e := &it.cur.entries[it.pos]
				it.pos++
				if !it.exact || e.box.Intersects(&it.query) {
					it.next = e.id
					return true
				}
			}
			it.cur = nil
		}
		// Stop if there is no remaining work.
		if len(it.stack) == 0 {
			return false
		}
		// Visit the next subtree. Its children are pushed in reverse
		// so that NorthWest is popped first.
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.cur, it.pos = n, 0
		if !n.leaf() {
			for i := len(n.quads) - 1; i >= 0; i-- {
				if c := &n.quads[i]; c.reaches(&it.query) {
					it.stack = append(it.stack, c)
				}
			}
		}
	}
}
