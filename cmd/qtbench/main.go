// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command qtbench indexes random points in a quadtree, runs a batch of
// window queries against it and optionally checks every result against
// an R-Tree.
//
// Settings come from flags, QTBENCH_* environment variables and an
// optional YAML file named by --config, in that order of precedence.
// Run qtbench --help for the list of settings.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(2)
	}

	logger := cfg.newLogger(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Error("qtbench failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
