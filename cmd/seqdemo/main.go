// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command seqdemo exercises the array and list sequences: it fills them with
// pseudo-random values and reports their size, capacity and contents.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	arrayFlagSet := subcmd.NewFlagSet()
	arrayFlagSet.MustRegisterFlagStruct(&arrayFlags{}, nil, nil)
	listFlagSet := subcmd.NewFlagSet()
	listFlagSet.MustRegisterFlagStruct(&listFlags{}, nil, nil)

	arrayCmd := subcmd.NewCommand("array", arrayFlagSet, fillArray, subcmd.WithoutArguments())
	arrayCmd.Document("fill a growable array, optionally shifting it right after every append, promote the probed element to the front and print its growth")

	listCmd := subcmd.NewCommand("list", listFlagSet, fillList, subcmd.WithoutArguments())
	listCmd.Document("fill a doubly linked list, print it in both directions and validate its links")

	cmdSet = subcmd.NewCommandSet(arrayCmd, listCmd)
	cmdSet.Document(`exercise the array and list sequence containers.

Values are pseudo-random and reproducible for a given --seed. A YAML file
supplied via --config overrides any of count, seed, max, probe, capacity
and shift.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
