// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/gisfromscratch/quadtree/geom"
)

// CollectSet consumes an Iterator into a compressed bitmap, which
// removes duplicate identifiers and supports fast set algebra with
// candidate sets from other queries or indices.
//
// Identifiers must lie in [0, math.MaxUint32]. CollectSet stops at the
// first identifier outside that range and returns an error wrapping
// ErrIDRange.
func CollectSet(it *Iterator) (*roaring.Bitmap, error) {
	set := roaring.New()
	for it.Next() {
		id := it.Value()
		if id < 0 || uint64(id) > math.MaxUint32 {
			return nil, detailErr(ErrIDRange, "%d", id)
		}
		set.Add(uint32(id))
	}
	return set, nil
}

// Candidates returns the set of identifiers produced by Intersect.
func (t *QuadTree) Candidates(query geom.Bounded) (*roaring.Bitmap, error) {
	return CollectSet(t.Intersect(query))
}
