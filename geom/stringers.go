// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"strings"
)

// String returns the box as [XMin,YMin,XMax,YMax], rounding each
// coordinate to eight significant digits.
func (b Box) String() string {
	return fmt.Sprintf("[%.8g,%.8g,%.8g,%.8g]", b.XMin, b.YMin, b.XMax, b.YMax)
}

// String returns the point as (X Y).
func (p Point) String() string {
	return fmt.Sprintf("(%.8g %.8g)", p.X, p.Y)
}

// String returns the segment as (X1 Y1,X2 Y2).
func (l Line) String() string {
	return fmt.Sprintf("(%.8g %.8g,%.8g %.8g)", l.X1, l.Y1, l.X2, l.Y2)
}

// String returns the points as a comma-separated list in parentheses.
func (mp MultiPoint) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range mp {
		if i > 0 {
			b.WriteByte(',')
		}
		_, _ = fmt.Fprintf(&b, "%.8g %.8g", mp[i].X, mp[i].Y)
	}
	b.WriteByte(')')
	return b.String()
}
