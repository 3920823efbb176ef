// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

// Bounded is implemented by anything that can be stored in, or used to
// query, a spatial index. BoundingBox must be a pure function of the
// receiver returning its smallest enclosing axis-aligned Box.
type Bounded interface {
	BoundingBox() Box
}

// A Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// BoundingBox returns the degenerate box at p.
func (p Point) BoundingBox() Box {
	return Box{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
}

// A Line is the straight segment between two end points.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
}

// BoundingBox returns the box spanned by the segment's end points.
func (l Line) BoundingBox() Box {
	b := EmptyBox
	b.ExpandXY(l.X1, l.Y1)
	b.ExpandXY(l.X2, l.Y2)
	return b
}

// A MultiPoint is an unordered collection of points.
type MultiPoint []Point

// BoundingBox returns the box around all points, or EmptyBox if there
// are none.
func (mp MultiPoint) BoundingBox() Box {
	b := EmptyBox
	for i := range mp {
		b.ExpandXY(mp[i].X, mp[i].Y)
	}
	return b
}
