// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sequence/array"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type growthStep struct {
	index, size, capacity int
}

func fillArray(ctx context.Context, values any, _ []string) error {
	fv := values.(*arrayFlags)
	cfg := fv.config()
	ctx, logger, err := setup(ctx, "array", &fv.CommonFlags, &cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer logger.Close()
	return runArray(ctx, os.Stdout, cfg)
}

// runArray appends cfg.Count values to an array, shifting it right after
// each append if cfg.Shift is set, then promotes the element at cfg.Probe
// and prints the size and capacity recorded after every append.
func runArray(ctx context.Context, out io.Writer, cfg config) error {
	logger := ctxlog.Logger(ctx)
	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	l := array.New(array.WithCapacity[int](cfg.Capacity))
	steps := make([]growthStep, 0, cfg.Count)
	capacity := l.Cap()
	for i := range cfg.Count {
		l.PushBack(rnd.IntN(cfg.Max))
		if cfg.Shift {
			l.ShiftRight()
		}
		if l.Cap() != capacity {
			logger.Debug("grown", "size", l.Len(), "from", capacity, "to", l.Cap())
			capacity = l.Cap()
		}
		steps = append(steps, growthStep{index: i, size: l.Len(), capacity: l.Cap()})
	}

	errs := &errors.M{}
	if v, err := l.PromoteByProbe(cfg.Probe); err != nil {
		errs.Append(err)
	} else {
		logger.Info("promoted", "probe", cfg.Probe, "value", v)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "index | size | capacity\n")
	for _, s := range steps {
		p.Fprintf(out, "%d | %d | %d\n", s.index, s.size, s.capacity)
	}
	fmt.Fprintf(out, "values: %v\n", l)
	return errs.Err()
}
