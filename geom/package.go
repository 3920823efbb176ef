// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geom provides the small set of planar geometry primitives
// consumed by the quadtree spatial index: the axis-aligned Box, the
// Bounded interface implemented by anything that can be indexed, and a
// few companion shapes.
//
// Geometry here is deliberately shallow. The index only ever looks at
// bounding boxes, so exact geometric predicates are left to callers.
package geom
