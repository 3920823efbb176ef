// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "math"

// A Box is an axis-aligned rectangle in the plane, given by its minimum
// and maximum coordinates on each axis.
//
// A valid Box has XMin <= XMax and YMin <= YMax. Degenerate boxes,
// having zero width or height, are valid and represent points or
// axis-parallel segments.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the inverted, infinitely negative box. It intersects
// nothing, and expanding it by any box yields that box, which makes it
// the correct starting value when accumulating a bounding box.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// NumQuadrants is the number of boxes returned by Quadrants.
const NumQuadrants = 4

// Quadrant positions within the array returned by Quadrants.
const (
	NorthWest = iota
	NorthEast
	SouthEast
	SouthWest
)

// BoundingBox returns b itself, so that a Box can be indexed and used
// as a query shape directly.
func (b Box) BoundingBox() Box {
	return b
}

// Width returns the extent of the box on the X axis.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the extent of the box on the Y axis.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

// CenterX returns the X coordinate of the vertical midline.
func (b *Box) CenterX() float64 {
	return (b.XMin + b.XMax) / 2
}

// CenterY returns the Y coordinate of the horizontal midline.
func (b *Box) CenterY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Valid reports whether the box has no NaN coordinates and its minimum
// bounds do not exceed its maximum bounds. EmptyBox is not valid.
func (b *Box) Valid() bool {
	return b.XMin <= b.XMax && b.YMin <= b.YMax
}

// Expand grows b, if necessary, to include c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b, if necessary, to include the point (x, y).
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// Intersects reports whether b and o overlap. Both boxes are treated as
// closed, so boxes which only touch along an edge or at a corner
// intersect.
func (b *Box) Intersects(o *Box) bool {
	return b.XMin <= o.XMax &&
		o.XMin <= b.XMax &&
		b.YMin <= o.YMax &&
		o.YMin <= b.YMax
}

// Contains reports whether o lies entirely within b, boundary included.
func (b *Box) Contains(o *Box) bool {
	return b.XMin <= o.XMin &&
		o.XMax <= b.XMax &&
		b.YMin <= o.YMin &&
		o.YMax <= b.YMax
}

// Quadrants splits b at its horizontal and vertical midlines and
// returns the four resulting boxes in the order NorthWest, NorthEast,
// SouthEast, SouthWest. The quadrants tile b exactly: adjacent
// quadrants share an edge and nothing else.
func (b *Box) Quadrants() [NumQuadrants]Box {
	cx, cy := b.CenterX(), b.CenterY()
	return [NumQuadrants]Box{
		NorthWest: {XMin: b.XMin, YMin: cy, XMax: cx, YMax: b.YMax},
		NorthEast: {XMin: cx, YMin: cy, XMax: b.XMax, YMax: b.YMax},
		SouthEast: {XMin: cx, YMin: b.YMin, XMax: b.XMax, YMax: cy},
		SouthWest: {XMin: b.XMin, YMin: b.YMin, XMax: cx, YMax: cy},
	}
}

// Divisible reports whether Quadrants would produce four boxes each
// strictly smaller than b on both axes, each at least minSize wide and
// high.
//
// A box whose midpoint is indistinguishable from one of its bounds in
// floating point, including any box with zero width or height, is not
// divisible.
func (b *Box) Divisible(minSize float64) bool {
	cx, cy := b.CenterX(), b.CenterY()
	if !(b.XMin < cx && cx < b.XMax && b.YMin < cy && cy < b.YMax) {
		return false
	}
	return math.Min(cx-b.XMin, b.XMax-cx) >= minSize &&
		math.Min(cy-b.YMin, b.YMax-cy) >= minSize
}
