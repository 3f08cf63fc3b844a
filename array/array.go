// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package array provides a growable, contiguous sequence container that
// supports promoting elements to the front of the sequence.
package array

import (
	"fmt"
	"iter"

	"cloudeng.io/sequence"
	"cloudeng.io/sequence/internal/growth"
)

// DefaultProbe is the probe index conventionally used with PromoteByProbe.
const DefaultProbe = 4

// List is a sequence stored in a contiguous buffer. The buffer grows to
// floor(cap*3/2)+1 elements whenever an insertion would exceed its
// capacity. Slots beyond Len are unspecified and may hold stale values.
type List[T comparable] struct {
	buf []T // len(buf) is the capacity.
	n   int
}

type options[T comparable] struct {
	capacity int
	values   []T
}

// Option represents an option to New.
type Option[T comparable] func(*options[T])

// WithCapacity sets the initial capacity, it will be raised to the
// minimum capacity of 16 if smaller than that.
func WithCapacity[T comparable](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithValues sets the initial contents of the list.
func WithValues[T comparable](vals ...T) Option[T] {
	return func(o *options[T]) {
		o.values = vals
	}
}

// New returns a new, empty, List.
func New[T comparable](opts ...Option[T]) *List[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	c := growth.Initial(max(o.capacity, len(o.values)))
	l := &List[T]{buf: make([]T, c)}
	l.n = copy(l.buf, o.values)
	return l
}

func (l *List[T]) reset() {
	l.buf = make([]T, growth.MinCapacity)
	l.n = 0
}

// reserve ensures that there is room for at least one more element.
func (l *List[T]) reserve() {
	if l.buf == nil {
		l.reset()
		return
	}
	if l.n < len(l.buf) {
		return
	}
	nb := make([]T, growth.MustNext(len(l.buf)))
	copy(nb, l.buf[:l.n])
	l.buf = nb
}

func (l *List[T]) Len() int {
	return l.n
}

// Cap returns the number of elements the list can hold before it must grow.
func (l *List[T]) Cap() int {
	return len(l.buf)
}

func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// PushBack appends v. It is amortized O(1).
func (l *List[T]) PushBack(v T) {
	l.reserve()
	l.buf[l.n] = v
	l.n++
}

// PushFront inserts v at index 0, moving every existing element up by one.
// It is O(n).
func (l *List[T]) PushFront(v T) {
	l.ShiftRight()
	l.buf[0] = v
	l.n++
}

// ShiftRight moves every element from index i to i+1, growing the buffer
// first if it is full. The length is unchanged and index 0 retains a stale
// value which the caller is expected to overwrite.
func (l *List[T]) ShiftRight() {
	l.reserve()
	// Decreasing order, so that no element is overwritten before it is read.
	for i := l.n - 1; i >= 0; i-- {
		l.buf[i+1] = l.buf[i]
	}
}

// PopBack removes the last element. The vacated slot is not modified.
func (l *List[T]) PopBack() error {
	if l.n == 0 {
		return sequence.EmptyError("array.PopBack")
	}
	l.n--
	return nil
}

// PopFront removes the first element, moving every remaining element
// down by one. It is O(n).
func (l *List[T]) PopFront() error {
	if l.n == 0 {
		return sequence.EmptyError("array.PopFront")
	}
	copy(l.buf, l.buf[1:l.n])
	l.n--
	return nil
}

func (l *List[T]) Back() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, sequence.EmptyError("array.Back")
	}
	return l.buf[l.n-1], nil
}

func (l *List[T]) Front() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, sequence.EmptyError("array.Front")
	}
	return l.buf[0], nil
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.n {
		var zero T
		return zero, sequence.BoundsError("array.At", i, l.n)
	}
	return l.buf[i], nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= l.n {
		return sequence.BoundsError("array.Set", i, l.n)
	}
	l.buf[i] = v
	return nil
}

// Index returns the index of the first element equal to v, or -1.
func (l *List[T]) Index(v T) int {
	for i, e := range l.buf[:l.n] {
		if e == v {
			return i
		}
	}
	return -1
}

// Contains returns true if any element is equal to v.
func (l *List[T]) Contains(v T) bool {
	return l.Index(v) >= 0
}

// Promote moves the first element equal to v to index 0. The elements
// that preceded it move up by one and the relative order of all other
// elements is unchanged. It returns false, leaving the list untouched,
// if no element is equal to v.
func (l *List[T]) Promote(v T) bool {
	idx := l.Index(v)
	if idx < 0 {
		return false
	}
	found := l.buf[idx]
	for i := idx; i > 0; i-- {
		l.buf[i] = l.buf[i-1]
	}
	l.buf[0] = found
	return true
}

// PromoteByProbe reads the element at index probe and promotes the first
// element equal to it, see Promote. It returns the probed value, or an
// error matching sequence.ErrOutOfBounds if probe is not a valid index.
func (l *List[T]) PromoteByProbe(probe int) (T, error) {
	if probe < 0 || probe >= l.n {
		var zero T
		return zero, sequence.BoundsError("array.PromoteByProbe", probe, l.n)
	}
	v := l.buf[probe]
	l.Promote(v)
	return v, nil
}

// Clear removes all elements, retaining the current capacity.
func (l *List[T]) Clear() {
	clear(l.buf[:l.n])
	l.n = 0
}

// Compact reduces the capacity to the larger of the current length and
// the minimum capacity, releasing any stale values held beyond Len.
func (l *List[T]) Compact() {
	nb := make([]T, growth.Initial(l.n))
	copy(nb, l.buf[:l.n])
	l.buf = nb
}

// Clone returns a deep copy of the list with the same capacity.
func (l *List[T]) Clone() *List[T] {
	nl := &List[T]{}
	nl.Assign(l)
	return nl
}

// Assign replaces the contents of l with a copy of those of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.buf = make([]T, growth.Initial(len(src.buf)))
	l.n = copy(l.buf, src.buf[:src.n])
}

// Move returns a new list that owns the buffer previously owned by l,
// l is left empty with a newly allocated buffer.
func (l *List[T]) Move() *List[T] {
	nl := &List[T]{}
	nl.MoveFrom(l)
	return nl
}

// MoveFrom transfers the buffer owned by src to l, src is left empty with
// a newly allocated buffer.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.buf, l.n = src.buf, src.n
	if l.buf == nil {
		l.reset()
	}
	src.reset()
}

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	out := make([]T, l.n)
	copy(out, l.buf[:l.n])
	return out
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(l.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.n - 1; i >= 0; i-- {
			if !yield(l.buf[i]) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.buf[:l.n])
}
