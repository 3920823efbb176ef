// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/mmcloughlin/geohash"
)

// MaxGeohashChars is the longest geohash accepted by GeohashBox and
// produced by Geohash.
const MaxGeohashChars = 12

// GeohashBox returns the cell of a geohash string as a Box whose X axis
// is longitude and Y axis is latitude, both in degrees.
func GeohashBox(hash string) (Box, error) {
	if hash == "" {
		return EmptyBox, textErr("empty geohash")
	} else if len(hash) > MaxGeohashChars {
		return EmptyBox, textErr("geohash longer than 12 characters")
	}
	if err := geohash.Validate(hash); err != nil {
		return EmptyBox, wrapErr("invalid geohash %q", err, hash)
	}
	cell := geohash.BoundingBox(hash)
	return Box{
		XMin: cell.MinLng,
		YMin: cell.MinLat,
		XMax: cell.MaxLng,
		YMax: cell.MaxLat,
	}, nil
}

// Geohash encodes p, taken as longitude X and latitude Y, to a geohash
// of the given length. Lengths outside [1, MaxGeohashChars] are clamped.
func Geohash(p Point, chars uint) string {
	if chars < 1 {
		chars = 1
	} else if chars > MaxGeohashChars {
		chars = MaxGeohashChars
	}
	return geohash.EncodeWithPrecision(p.Y, p.X, chars)
}
