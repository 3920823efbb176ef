// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/dhconnelly/rtreego"
	"golang.org/x/sync/errgroup"

	"github.com/gisfromscratch/quadtree"
	"github.com/gisfromscratch/quadtree/geom"
)

// progressEvery is the number of insertions between progress logs.
const progressEvery = 100000

// errMissed is returned when the R-Tree finds an entry the quadtree
// did not return.
var errMissed = errors.New("quadtree missed entries found by the R-Tree")

// feature is an indexed point, widened to a tiny box because the
// R-Tree does not accept degenerate rectangles.
type feature struct {
	id  int
	box geom.Box
}

func (f *feature) BoundingBox() geom.Box {
	return f.box
}

func (f *feature) Bounds() rtreego.Rect {
	return rtreeRect(f.box)
}

func rtreeRect(b geom.Box) rtreego.Rect {
	rect, err := rtreego.NewRect(rtreego.Point{b.XMin, b.YMin}, []float64{b.Width(), b.Height()})
	if err != nil {
		panic(fmt.Sprintf("qtbench: box %s has no area: %v", b, err))
	}
	return rect
}

// widen returns b grown to at least eps wide and high. The result has
// strictly positive width and height even when eps is zero or too small
// to change the coordinates.
func widen(b geom.Box, eps float64) geom.Box {
	b.XMax = widenAxis(b.XMin, b.XMax, eps)
	b.YMax = widenAxis(b.YMin, b.YMax, eps)
	return b
}

func widenAxis(lo, hi, eps float64) float64 {
	if hi > lo && hi-lo >= eps {
		return hi
	}
	if w := lo + eps; w > lo {
		return w
	}
	return math.Nextafter(lo, math.Inf(1))
}

// A result is the outcome of one query.
type result struct {
	label      string
	candidates uint64
	hits       int
	missed     int
	elapsed    time.Duration
}

// run indexes cfg.Points random points, runs every configured query
// and writes a report to w.
func run(ctx context.Context, cfg *Config, logger *slog.Logger, w io.Writer) error {
	tree := quadtree.New(cfg.Domain, cfg.Capacity, cfg.options(logger)...)
	var oracle *rtreego.Rtree
	if cfg.Compare {
		oracle = rtreego.NewTree(2, 25, 50)
	}

	eps := math.Max(cfg.Domain.Width(), cfg.Domain.Height()) * 1e-9
	r := rand.New(rand.NewSource(cfg.Seed))
	start := time.Now()
	for i := 0; i < cfg.Points; i++ {
		if i%progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if i > 0 {
				logger.Info("indexing", slog.Int("inserted", i), slog.Int("total", cfg.Points))
			}
		}
		x := cfg.Domain.XMin + r.Float64()*cfg.Domain.Width()
		y := cfg.Domain.YMin + r.Float64()*cfg.Domain.Height()
		f := &feature{id: i, box: widen(geom.Box{XMin: x, YMin: y, XMax: x, YMax: y}, eps)}
		if !tree.Insert(f.id, f) {
			continue
		}
		if oracle != nil {
			oracle.Insert(f)
		}
	}
	logger.Info("indexed",
		slog.Int("entries", tree.Len()),
		slog.Duration("elapsed", time.Since(start)))

	results := make([]result, len(cfg.Queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runQuery(tree, oracle, cfg.Queries[i], eps)
			if err != nil {
				return err
			}
			results[i] = res
			logger.Debug("query done", slog.String("query", res.label), slog.Uint64("candidates", res.candidates))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var missed int
	for i := range results {
		res := &results[i]
		if oracle != nil {
			fmt.Fprintf(w, "%s\tcandidates=%d\trtree=%d\tmissed=%d\t%s\n", res.label, res.candidates, res.hits, res.missed, res.elapsed)
		} else {
			fmt.Fprintf(w, "%s\tcandidates=%d\t%s\n", res.label, res.candidates, res.elapsed)
		}
		missed += res.missed
	}
	fmt.Fprintln(w, tree.Stats())

	if missed > 0 {
		return fmt.Errorf("%w: %d", errMissed, missed)
	}
	return nil
}

func runQuery(tree *quadtree.QuadTree, oracle *rtreego.Rtree, q query, eps float64) (result, error) {
	box := widen(q.box, eps)
	start := time.Now()
	set, err := tree.Candidates(box)
	if err != nil {
		return result{}, err
	}
	res := result{
		label:      q.label,
		candidates: set.GetCardinality(),
		elapsed:    time.Since(start),
	}
	if oracle == nil {
		return res, nil
	}
	hits := oracle.SearchIntersect(rtreeRect(box))
	res.hits = len(hits)
	for _, hit := range hits {
		if !set.Contains(uint32(hit.(*feature).id)) {
			res.missed++
		}
	}
	return res, nil
}
