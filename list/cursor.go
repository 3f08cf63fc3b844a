// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "fmt"

// Position is implemented by both ConstIterator and Iterator and is
// accepted by Insert and Erase.
type Position[T any] interface {
	position() ConstIterator[T]
}

// ConstIterator is a read-only cursor into a Double. It refers to a node
// slot and the generation of that slot when the cursor was created; using
// a cursor whose node has since been erased panics.
type ConstIterator[T any] struct {
	dl  *Double[T]
	idx int
	gen uint32
}

// Iterator is a cursor that can also modify the element it refers to.
type Iterator[T any] struct {
	ConstIterator[T]
}

func (dl *Double[T]) cursor(idx int) ConstIterator[T] {
	return ConstIterator[T]{dl: dl, idx: idx, gen: dl.nodes[idx].gen}
}

// resolve returns the cursor for pos after verifying that it belongs to dl
// and still refers to a live node or sentinel.
func (dl *Double[T]) resolve(pos Position[T]) ConstIterator[T] {
	it := pos.position()
	if it.dl != dl {
		panic("list: cursor does not belong to this list")
	}
	it.check()
	return it
}

// Begin returns a cursor for the first element, it is equal to End if
// the list is empty.
func (dl *Double[T]) Begin() Iterator[T] {
	dl.lazyInit()
	return Iterator[T]{dl.cursor(dl.nodes[head].next)}
}

// End returns a cursor for the tail sentinel.
func (dl *Double[T]) End() Iterator[T] {
	dl.lazyInit()
	return Iterator[T]{dl.cursor(tail)}
}

// CBegin is like Begin but returns a read-only cursor.
func (dl *Double[T]) CBegin() ConstIterator[T] {
	return dl.Begin().ConstIterator
}

// CEnd is like End but returns a read-only cursor.
func (dl *Double[T]) CEnd() ConstIterator[T] {
	return dl.End().ConstIterator
}

func (it ConstIterator[T]) position() ConstIterator[T] {
	return it
}

func (it ConstIterator[T]) check() {
	if it.dl == nil {
		panic("list: use of a zero value cursor")
	}
	if it.idx < 0 || it.idx >= len(it.dl.nodes) || it.dl.nodes[it.idx].gen != it.gen {
		panic(fmt.Sprintf("list: use of a stale cursor for node %v", it.idx))
	}
}

func (it ConstIterator[T]) node() *node[T] {
	it.check()
	if it.idx == head || it.idx == tail {
		panic("list: cannot dereference a sentinel")
	}
	return &it.dl.nodes[it.idx]
}

// Valid returns true if the cursor refers to a live element, ie. not a
// sentinel or an erased element.
func (it ConstIterator[T]) Valid() bool {
	return it.dl != nil && it.idx > tail && it.idx < len(it.dl.nodes) &&
		it.dl.nodes[it.idx].gen == it.gen && it.dl.nodes[it.idx].next != none
}

// Value returns the element the cursor refers to. It panics if the
// cursor is positioned at a sentinel.
func (it ConstIterator[T]) Value() T {
	return it.node().T
}

// Next returns a cursor for the following position. It panics if the
// cursor is positioned at End.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.check()
	if it.idx == tail {
		panic("list: cannot advance beyond the tail sentinel")
	}
	return it.dl.cursor(it.dl.nodes[it.idx].next)
}

// Prev returns a cursor for the preceding position, the cursor preceding
// Begin is positioned at the head sentinel. It panics if the cursor is
// positioned at the head sentinel.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	it.check()
	if it.idx == head {
		panic("list: cannot retreat beyond the head sentinel")
	}
	return it.dl.cursor(it.dl.nodes[it.idx].prev)
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
	it.node().T = v
}

// Ptr returns a pointer to the element the cursor refers to. The pointer
// is only valid until the next insertion into the list.
func (it Iterator[T]) Ptr() *T {
	return &it.node().T
}

// Const returns the read-only cursor for the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}
