// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sequence

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmpty is returned by operations that require a non-empty container.
	ErrEmpty = errors.New("empty container")

	// ErrOutOfBounds is returned when an index does not refer to a live
	// element.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrAllocation indicates that a container could not grow. It is
	// unrecoverable and is surfaced via panic.
	ErrAllocation = errors.New("allocation failure")
)

// EmptyError returns an error, annotated with op, that matches ErrEmpty.
func EmptyError(op string) error {
	return errors.Annotate(op, ErrEmpty)
}

// BoundsError returns an error, annotated with op, index and length, that
// matches ErrOutOfBounds.
func BoundsError(op string, index, length int) error {
	return errors.Annotate(
		fmt.Sprintf("%v: index %v, length %v", op, index, length),
		ErrOutOfBounds)
}
