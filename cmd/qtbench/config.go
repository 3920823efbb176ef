// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gisfromscratch/quadtree"
	"github.com/gisfromscratch/quadtree/geom"
)

// listKeys name the repeatable flags. They are not bound to viper,
// which would split their values on commas.
var listKeys = []string{"query", "geohash"}

// envPrefix prefixes the environment variables which override config
// keys, e.g. QTBENCH_MAX_DEPTH for max-depth.
const envPrefix = "QTBENCH"

// A query is a named query region.
type query struct {
	label string
	box   geom.Box
}

// Config holds a fully validated qtbench configuration.
type Config struct {
	Domain      geom.Box
	Capacity    int
	MaxDepth    int
	MinCellSize float64
	Exact       bool
	Points      int
	Seed        int64
	Queries     []query
	Workers     int
	Compare     bool
	LogLevel    slog.Level
	LogFormat   string
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("qtbench", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("domain", "-180,-90,180,90", "tree domain as xmin,ymin,xmax,ymax")
	fs.Int("capacity", 8, "entries per node before subdivision")
	fs.Int("max-depth", quadtree.DefaultMaxDepth, "maximum node depth")
	fs.Float64("min-cell-size", 0, "minimum width and height of a child cell")
	fs.Bool("exact", false, "filter bucket entries by bounding box")
	fs.Int("points", 100000, "number of random points to index")
	fs.Int64("seed", 1, "random seed")
	fs.StringArray("query", nil, "query box as xmin,ymin,xmax,ymax (repeatable)")
	fs.StringArray("geohash", nil, "query geohash cell (repeatable)")
	fs.Int("workers", 4, "number of concurrent query workers")
	fs.Bool("compare", true, "cross-check results against an R-Tree")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	return fs
}

// loadConfig builds a Config from command-line arguments, environment
// variables and an optional config file, in decreasing precedence.
func loadConfig(args []string, output io.Writer) (*Config, error) {
	fs := newFlagSet()
	fs.SetOutput(output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr == nil && !isListKey(f.Name) {
			bindErr = v.BindPFlag(f.Name, f)
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	// Explicit list flags replace, rather than extend, configured lists.
	for _, key := range listKeys {
		if fs.Changed(key) {
			vals, err := fs.GetStringArray(key)
			if err != nil {
				return nil, err
			}
			v.Set(key, vals)
		}
	}

	return decodeConfig(v)
}

func isListKey(name string) bool {
	for _, key := range listKeys {
		if key == name {
			return true
		}
	}
	return false
}

func decodeConfig(v *viper.Viper) (*Config, error) {
	domain, err := parseBox(v.GetString("domain"))
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}

	cfg := &Config{
		Domain:      domain,
		Capacity:    v.GetInt("capacity"),
		MaxDepth:    v.GetInt("max-depth"),
		MinCellSize: v.GetFloat64("min-cell-size"),
		Exact:       v.GetBool("exact"),
		Points:      v.GetInt("points"),
		Seed:        v.GetInt64("seed"),
		Workers:     v.GetInt("workers"),
		Compare:     v.GetBool("compare"),
		LogFormat:   v.GetString("log-format"),
	}

	switch {
	case cfg.Capacity < 1:
		return nil, fmt.Errorf("capacity must be at least 1, got %d", cfg.Capacity)
	case cfg.MaxDepth < 0:
		return nil, fmt.Errorf("max-depth must not be negative, got %d", cfg.MaxDepth)
	case !(cfg.MinCellSize >= 0):
		return nil, fmt.Errorf("min-cell-size must be a non-negative number, got %g", cfg.MinCellSize)
	case cfg.Points < 0:
		return nil, fmt.Errorf("points must not be negative, got %d", cfg.Points)
	case cfg.Workers < 1:
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	case cfg.LogFormat != "text" && cfg.LogFormat != "json":
		return nil, fmt.Errorf("log-format must be text or json, got %q", cfg.LogFormat)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}

	for _, s := range v.GetStringSlice("query") {
		b, err := parseBox(s)
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		cfg.Queries = append(cfg.Queries, query{label: b.String(), box: b})
	}
	for _, hash := range v.GetStringSlice("geohash") {
		b, err := geom.GeohashBox(hash)
		if err != nil {
			return nil, err
		}
		cfg.Queries = append(cfg.Queries, query{label: hash, box: b})
	}
	if len(cfg.Queries) == 0 {
		cfg.Queries = []query{{label: "domain", box: cfg.Domain}}
	}

	return cfg, nil
}

// parseBox parses a box given as "xmin,ymin,xmax,ymax".
func parseBox(s string) (geom.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.EmptyBox, fmt.Errorf("box %q must have 4 comma-separated coordinates", s)
	}
	var c [4]float64
	for i := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return geom.EmptyBox, fmt.Errorf("box %q: %w", s, err)
		}
		c[i] = f
	}
	b := geom.Box{XMin: c[0], YMin: c[1], XMax: c[2], YMax: c[3]}
	if !b.Valid() {
		return geom.EmptyBox, fmt.Errorf("box %q is not valid", s)
	}
	return b, nil
}

// options returns the tree options selected by the config.
func (cfg *Config) options(logger *slog.Logger) []quadtree.Option {
	return []quadtree.Option{
		quadtree.WithMaxDepth(cfg.MaxDepth),
		quadtree.WithMinCellSize(cfg.MinCellSize),
		quadtree.WithExactFilter(cfg.Exact),
		quadtree.WithLogger(logger),
	}
}

// newLogger returns the logger selected by the config, writing to w.
func (cfg *Config) newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
