// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sequence

import "iter"

// Interface represents the operations common to array.List and
// list.Double.
type Interface[T any] interface {
	Len() int
	IsEmpty() bool
	PushBack(v T)
	PushFront(v T)
	PopBack() error
	PopFront() error
	Front() (T, error)
	Back() (T, error)
	Clear()
	All() iter.Seq[T]
	Backward() iter.Seq[T]
	Values() []T
}

// Equal returns true if a and b contain the same elements in the same
// order.
func Equal[T comparable](a, b Interface[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for v := range a.All() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	return true
}
