// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "fmt"

// String returns a summary description of the tree.
func (t *QuadTree) String() string {
	return fmt.Sprintf("QuadTree{Domain:%s,Capacity:%d,Len:%d}", t.root.domain, t.capacity, t.len)
}

// String returns the statistics on one line.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{Entries:%d,Nodes:%d,Leaves:%d,MaxDepth:%d,Rejected:%d}",
		s.Entries, s.Nodes, s.Leaves, s.MaxDepth, s.Rejected)
}
