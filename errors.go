// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"

	"github.com/gisfromscratch/quadtree/geom"
)

var (
	// ErrOutsideDomain is returned when adding an entry whose bounding
	// box does not intersect the tree's domain.
	ErrOutsideDomain = textErr("bounding box outside domain")
	// ErrInvalidBox is returned when adding an entry whose bounding box
	// has NaN coordinates or inverted bounds.
	ErrInvalidBox = textErr("invalid bounding box")
	// ErrMaxDepth is matched, via errors.Is, by every *DepthError.
	ErrMaxDepth = textErr("maximum depth exceeded")
	// ErrIDRange is returned when collecting an entry identifier which
	// cannot be represented in a candidate set.
	ErrIDRange = textErr("id out of candidate set range")
)

// A DepthError reports an entry which reached a full node that was not
// allowed to subdivide. The entry is not stored.
type DepthError struct {
	// ID is the rejected entry identifier.
	ID int
	// Depth is the depth of the full node, where the root is depth 0.
	Depth int
	// Domain is the full node's domain.
	Domain geom.Box
	// Reason says which limit stopped subdivision.
	Reason string
}

// Limits reported in DepthError.Reason.
const (
	reasonMaxDepth    = "max depth"
	reasonMinCellSize = "min cell size"
	reasonCollapsed   = "domain cannot be split"
)

func (e *DepthError) Error() string {
	return fmt.Sprintf("%sid %d: node at depth %d with domain %s is full: %s", packageName, e.ID, e.Depth, e.Domain, e.Reason)
}

// Is reports whether target is ErrMaxDepth.
func (e *DepthError) Is(target error) bool {
	return target == ErrMaxDepth
}

const packageName = "quadtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func detailErr(err error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{err}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
