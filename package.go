// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a bucketed region quadtree which indexes
// integer entry identifiers by axis-aligned bounding box and answers
// approximate range queries.
//
// Query results are candidate sets: every entry whose bounding box
// overlaps the query box is returned, along with, by default, other
// entries stored in the same tree nodes. Callers who need exact answers
// post-filter the candidates with their own geometry tests, or enable
// WithExactFilter to drop candidates whose boxes miss the query.
//
// A QuadTree is not safe for concurrent mutation. Once a tree is fully
// built, any number of goroutines may query it concurrently.
package quadtree
