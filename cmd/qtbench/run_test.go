// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gisfromscratch/quadtree/geom"
)

func testConfig(t *testing.T, args ...string) *Config {
	cfg, err := loadConfig(append([]string{"--points", "2000", "--capacity", "4"}, args...), &bytes.Buffer{})
	require.NoError(t, err)
	return cfg
}

func TestRun(t *testing.T) {
	t.Run("Compare", func(t *testing.T) {
		cfg := testConfig(t, "--query", "-10,-10,10,10", "--query", "100,40,120,60", "--geohash", "u4pru")
		var out, log bytes.Buffer

		err := run(context.Background(), cfg, cfg.newLogger(&log), &out)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "[-10,-10,10,10]\tcandidates="))
		assert.True(t, strings.HasPrefix(lines[1], "[100,40,120,60]\tcandidates="))
		assert.True(t, strings.HasPrefix(lines[2], "u4pru\tcandidates="))
		for _, line := range lines[:3] {
			assert.Contains(t, line, "\tmissed=0\t")
		}
		assert.True(t, strings.HasPrefix(lines[3], "Stats{Entries:2000,"))
		assert.Contains(t, log.String(), "msg=indexed")
	})

	t.Run("Exact", func(t *testing.T) {
		cfg := testConfig(t, "--exact", "--workers", "1")
		var out bytes.Buffer

		err := run(context.Background(), cfg, slog.New(slog.DiscardHandler), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "domain\tcandidates=2000\trtree=2000\tmissed=0\t")
	})

	t.Run("NoCompare", func(t *testing.T) {
		cfg := testConfig(t, "--compare=false")
		var out bytes.Buffer

		err := run(context.Background(), cfg, slog.New(slog.DiscardHandler), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "domain\tcandidates=2000\t")
		assert.NotContains(t, out.String(), "rtree=")
	})

	t.Run("Rejections", func(t *testing.T) {
		cfg := testConfig(t, "--max-depth", "0", "--compare=false")
		var out bytes.Buffer

		err := run(context.Background(), cfg, slog.New(slog.DiscardHandler), &out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Stats{Entries:4,Nodes:1,Leaves:1,MaxDepth:0,Rejected:1996}")
	})

	t.Run("DegenerateDomain", func(t *testing.T) {
		testCases := []struct {
			name   string
			domain string
		}{
			{"ZeroWidth", "0,0,0,10"},
			{"Point", "5,5,5,5"},
			{"LargeCoordinates", "1e12,0,1000000000001,1"},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				cfg := testConfig(t, "--domain", testCase.domain, "--points", "200")
				var out bytes.Buffer

				err := run(context.Background(), cfg, slog.New(slog.DiscardHandler), &out)

				require.NoError(t, err)
				assert.Contains(t, out.String(), "\tmissed=0\t")
			})
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		cfg := testConfig(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := run(ctx, cfg, slog.New(slog.DiscardHandler), &bytes.Buffer{})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWiden(t *testing.T) {
	testCases := []struct {
		name     string
		b        geom.Box
		eps      float64
		expected geom.Box
	}{
		{"Narrow", geom.Box{XMin: 1, YMin: 2, XMax: 1, YMax: 5}, 0.5, geom.Box{XMin: 1, YMin: 2, XMax: 1.5, YMax: 5}},
		{"Wide", geom.Box{XMin: 1, YMin: 2, XMax: 3, YMax: 5}, 0.5, geom.Box{XMin: 1, YMin: 2, XMax: 3, YMax: 5}},
		{"ZeroEps", geom.Box{XMin: 1, YMin: 2, XMax: 1, YMax: 5}, 0, geom.Box{XMin: 1, YMin: 2, XMax: math.Nextafter(1, 2), YMax: 5}},
		{"EpsBelowPrecision", geom.Box{XMin: 1e12, YMin: 0, XMax: 1e12, YMax: 0}, 1e-9, geom.Box{XMin: 1e12, YMin: 0, XMax: math.Nextafter(1e12, 2e12), YMax: 1e-9}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := widen(testCase.b, testCase.eps)

			assert.Equal(t, testCase.expected, b)
			assert.Greater(t, b.Width(), 0.0)
			assert.Greater(t, b.Height(), 0.0)
		})
	}
}
