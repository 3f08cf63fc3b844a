// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package array

import "fmt"

// ConstIterator is a read-only cursor into a List. It refers to an index
// rather than to the underlying buffer and hence remains safe to use
// across growth, however any operation that shifts elements (PushFront,
// PopFront, ShiftRight, Promote) changes the element it refers to.
type ConstIterator[T comparable] struct {
	l *List[T]
	i int
}

// Iterator is a cursor into a List that can also modify the element it
// refers to. It may be used wherever a ConstIterator is accepted via its
// embedded ConstIterator.
type Iterator[T comparable] struct {
	ConstIterator[T]
}

// Begin returns a cursor for the first element, it is equal to End if
// the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{l: l, i: 0}}
}

// End returns a cursor positioned one past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{ConstIterator[T]{l: l, i: l.n}}
}

// CBegin is like Begin but returns a read-only cursor.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().ConstIterator
}

// CEnd is like End but returns a read-only cursor.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().ConstIterator
}

func (it ConstIterator[T]) check() {
	if it.l == nil || it.i < 0 || it.i >= it.l.n {
		n := 0
		if it.l != nil {
			n = it.l.n
		}
		panic(fmt.Sprintf("array: cursor at index %v is not dereferenceable, list length %v", it.i, n))
	}
}

// Index returns the index the cursor refers to.
func (it ConstIterator[T]) Index() int {
	return it.i
}

// Valid returns true if the cursor refers to a live element.
func (it ConstIterator[T]) Valid() bool {
	return it.l != nil && it.i >= 0 && it.i < it.l.n
}

// Value returns the element the cursor refers to.
func (it ConstIterator[T]) Value() T {
	it.check()
	return it.l.buf[it.i]
}

// Next returns a cursor for the following position. It panics if the
// cursor is positioned at End.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.l == nil || it.i >= it.l.n {
		panic("array: cannot advance beyond the end of the list")
	}
	it.i++
	return it
}

// Prev returns a cursor for the preceding position, the cursor preceding
// Begin is positioned at index -1. It panics if the cursor is already
// positioned before Begin.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	if it.l == nil || it.i < 0 {
		panic("array: cannot retreat before the start of the list")
	}
	it.i--
	return it
}

// Next returns a cursor for the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{it.ConstIterator.Next()}
}

// Prev returns a cursor for the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{it.ConstIterator.Prev()}
}

// Set replaces the element the cursor refers to.
func (it Iterator[T]) Set(v T) {
	it.check()
	it.l.buf[it.i] = v
}

// Ptr returns a pointer to the element the cursor refers to. The pointer
// is invalidated when the list grows.
func (it Iterator[T]) Ptr() *T {
	it.check()
	return &it.l.buf[it.i]
}

// Const returns the read-only cursor for the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}
