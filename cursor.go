// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sequence

import "iter"

// Cursor is the traversal capability common to the read-only and mutable
// cursors of all containers. C is the concrete cursor type, and cursors
// are compared with ==. Value panics if the cursor is positioned at a
// sentinel.
type Cursor[T any, C any] interface {
	comparable
	Value() T
	Next() C
	Prev() C
}

// MutableCursor is a Cursor that can also modify the element it refers to.
type MutableCursor[T any, C any] interface {
	Cursor[T, C]
	Set(T)
	Ptr() *T
}

// Forward returns an iterator over the elements in [begin, end).
func Forward[T any, C Cursor[T, C]](begin, end C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; it != end; it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in [begin, end) starting
// with the one immediately before end.
func Backward[T any, C Cursor[T, C]](begin, end C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := end; it != begin; {
			it = it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Advance returns the cursor n steps after it, or -n steps before it if
// n is negative.
func Advance[T any, C Cursor[T, C]](it C, n int) C {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance returns the number of steps required to reach end from begin.
// end must be reachable from begin.
func Distance[T any, C Cursor[T, C]](begin, end C) int {
	n := 0
	for it := begin; it != end; it = it.Next() {
		n++
	}
	return n
}

// Find returns the first cursor in [begin, end) whose value equals v, or
// end if there is none.
func Find[T comparable, C Cursor[T, C]](begin, end C, v T) C {
	for it := begin; it != end; it = it.Next() {
		if it.Value() == v {
			return it
		}
	}
	return end
}

// Transform replaces every element in [begin, end) with fn applied to it.
func Transform[T any, C MutableCursor[T, C]](begin, end C, fn func(T) T) {
	for it := begin; it != end; it = it.Next() {
		it.Set(fn(it.Value()))
	}
}
