// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Config     string `subcmd:"config,,'YAML run configuration, values in the file override those given on the command line'"`
	Count      int    `subcmd:"count,20,number of values to insert"`
	Seed       int    `subcmd:"seed,1,seed for the pseudo-random values"`
	Max        int    `subcmd:"max,100,'values are drawn from [0, max)'"`
	ShowConfig bool   `subcmd:"show-config,false,print the effective configuration as YAML before running"`
}

type arrayFlags struct {
	CommonFlags
	Probe    int  `subcmd:"probe,4,index of the element to promote to the front"`
	Capacity int  `subcmd:"capacity,16,'initial capacity, raised to 16 if smaller'"`
	Shift    bool `subcmd:"shift,true,shift the array right after every append"`
}

type listFlags struct {
	CommonFlags
}

// config is the effective run configuration.
type config struct {
	Count    int    `yaml:"count"`
	Seed     uint64 `yaml:"seed"`
	Max      int    `yaml:"max"`
	Probe    int    `yaml:"probe"`
	Capacity int    `yaml:"capacity"`
	Shift    bool   `yaml:"shift"`
}

func (cf *CommonFlags) config() config {
	return config{
		Count: cf.Count,
		Seed:  uint64(cf.Seed),
		Max:   cf.Max,
	}
}

func (af *arrayFlags) config() config {
	cfg := af.CommonFlags.config()
	cfg.Probe = af.Probe
	cfg.Capacity = af.Capacity
	cfg.Shift = af.Shift
	return cfg
}

// load overrides cfg with any values specified in the YAML file.
func (cfg *config) load(ctx context.Context, file string) error {
	if len(file) == 0 {
		return nil
	}
	return cmdyaml.ParseConfigFile(ctx, file, cfg)
}

func (cfg config) validate() error {
	errs := &errors.M{}
	if cfg.Count < 0 {
		errs.Append(fmt.Errorf("count must be non-negative: %v", cfg.Count))
	}
	if cfg.Max <= 0 {
		errs.Append(fmt.Errorf("max must be positive: %v", cfg.Max))
	}
	if cfg.Capacity < 0 {
		errs.Append(fmt.Errorf("capacity must be non-negative: %v", cfg.Capacity))
	}
	return errs.Err()
}

func (cfg config) write(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// setup loads and validates the configuration and returns a context
// carrying the logger configured by the command line flags. The caller
// must close the returned logger.
func setup(ctx context.Context, name string, cf *CommonFlags, cfg *config, out io.Writer) (context.Context, *cmdutil.Logger, error) {
	if err := cfg.load(ctx, cf.Config); err != nil {
		return ctx, nil, err
	}
	if err := cfg.validate(); err != nil {
		return ctx, nil, err
	}
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	ctx = ctxlog.WithAttributes(ctxlog.WithLogger(ctx, logger.Logger), "command", name)
	ctxlog.Logger(ctx).Debug("configuration", "count", cfg.Count, "seed", cfg.Seed, "max", cfg.Max)
	if cf.ShowConfig {
		if err := cfg.write(out); err != nil {
			logger.Close()
			return ctx, nil, err
		}
	}
	return ctx, logger, nil
}
