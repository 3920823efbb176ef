// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"log/slog"
	"math"
)

// DefaultMaxDepth is the maximum node depth used when WithMaxDepth is
// not given. At depth 32 a node's domain is 2^-32 of the root's domain
// on each axis.
const DefaultMaxDepth = 32

type options struct {
	maxDepth    int
	minCellSize float64
	exact       bool
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures a QuadTree created by New.
type Option func(*options)

// WithMaxDepth limits how deep the tree may grow. The root is at depth
// 0, so a maximum depth of 0 means the root never subdivides. A full
// node at the maximum depth rejects further entries with ErrMaxDepth.
//
// Panics if d is negative.
func WithMaxDepth(d int) Option {
	if d < 0 {
		fmtPanic("max depth must not be negative, got %d", d)
	}
	return func(o *options) {
		o.maxDepth = d
	}
}

// WithMinCellSize stops subdivision once a child's width or height
// would fall below s. A full node which may not subdivide
// rejects further entries with ErrMaxDepth.
//
// Independently of s, a node never subdivides once its midpoint is
// indistinguishable from its bounds in floating point on either axis.
// In particular a node with zero width or zero height never subdivides.
//
// Panics if s is negative or NaN.
func WithMinCellSize(s float64) Option {
	if s < 0 || math.IsNaN(s) {
		fmtPanic("min cell size must be a non-negative number, got %g", s)
	}
	return func(o *options) {
		o.minCellSize = s
	}
}

// WithExactFilter controls whether queries test each stored entry's
// bounding box against the query box.
//
// By default (false) a query returns every entry held by each tree node
// whose domain intersects the query, whether or not the entry's own box
// does. With exact filtering on, only entries whose boxes intersect the
// query box are returned.
func WithExactFilter(exact bool) Option {
	return func(o *options) {
		o.exact = exact
	}
}

// WithLogger sets the logger used to report subdivision at debug level
// and depth limit rejections at warn level. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
