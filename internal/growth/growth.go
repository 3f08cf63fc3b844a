// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package growth provides the capacity growth policy shared by the
// sequence containers.
package growth

import (
	"fmt"
	"math"

	"cloudeng.io/errors"
	"cloudeng.io/sequence"
)

// MinCapacity is the smallest capacity that a container will allocate.
const MinCapacity = 16

// MaxCapacity is the largest capacity that Next will return, it is
// bounded only by the size of int.
const MaxCapacity = math.MaxInt

// Initial returns the capacity to use for a requested initial capacity,
// raising it to MinCapacity if needed.
func Initial(requested int) int {
	if requested < MinCapacity {
		return MinCapacity
	}
	return requested
}

// Next returns the capacity that follows current, ie. floor(current*3/2)+1.
// An error wrapping sequence.ErrAllocation is returned if the new capacity
// would exceed MaxCapacity.
func Next(current int) (int, error) {
	if current < 0 || current > MaxCapacity-1-current/2 {
		return 0, errors.Annotate(
			fmt.Sprintf("growth: capacity %v cannot be grown", current),
			sequence.ErrAllocation)
	}
	return current + current/2 + 1, nil
}

// MustNext is like Next but panics on error. Containers call it before
// mutating any state so that a failure leaves them unchanged.
func MustNext(current int) int {
	n, err := Next(current)
	if err != nil {
		panic(err)
	}
	return n
}
