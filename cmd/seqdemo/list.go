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
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sequence/list"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func fillList(ctx context.Context, values any, _ []string) error {
	fv := values.(*listFlags)
	cfg := fv.config()
	ctx, logger, err := setup(ctx, "list", &fv.CommonFlags, &cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer logger.Close()
	return runList(ctx, os.Stdout, cfg)
}

// runList appends cfg.Count values to a list and prints them in both
// directions before validating the list's links.
func runList(ctx context.Context, out io.Writer, cfg config) error {
	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	dl := list.NewDouble[int]()
	for range cfg.Count {
		dl.PushBack(rnd.IntN(cfg.Max))
	}
	ctxlog.Logger(ctx).Info("filled", "size", dl.Len())

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "size: %d\n", dl.Len())
	fmt.Fprintf(out, "forward: %v\n", dl)
	backward := slices.Collect(dl.Backward())
	fmt.Fprintf(out, "backward: %v\n", backward)

	errs := &errors.M{}
	errs.Append(dl.Validate())
	slices.Reverse(backward)
	if !slices.Equal(backward, dl.Values()) {
		errs.Append(fmt.Errorf("backward traversal is not the reverse of the forward traversal"))
	}
	return errs.Err()
}
