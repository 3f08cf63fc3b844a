// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a doubly linked list bracketed by permanent head
// and tail sentinel nodes.
package list

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
	"cloudeng.io/sequence"
	"cloudeng.io/sequence/internal/growth"
	"cloudeng.io/sequence/internal/ring"
)

const (
	head = 0  // index of the head sentinel.
	tail = 1  // index of the tail sentinel.
	none = -1 // head.prev, tail.next and the links of free slots.
)

// Double provides a doubly linked list. Nodes are stored in an arena and
// linked by index, slots 0 and 1 hold the head and tail sentinels which
// never hold a user value. The slot of a removed node is recycled, and
// its generation incremented so that cursors that refer to it are
// detected as stale. The zero value is an empty list.
type Double[T any] struct {
	nodes []node[T]
	free  ring.Queue[int]
	len   int
}

type node[T any] struct {
	prev, next int
	gen        uint32
	T          T
}

func NewDouble[T any]() *Double[T] {
	dl := &Double[T]{}
	dl.Reset()
	return dl
}

// Reset discards all elements and the arena that held them.
func (dl *Double[T]) Reset() {
	dl.len = 0
	dl.free.Reset()
	dl.nodes = make([]node[T], 2, growth.MinCapacity)
	dl.nodes[head] = node[T]{prev: none, next: tail}
	dl.nodes[tail] = node[T]{prev: head, next: none}
}

func (dl *Double[T]) lazyInit() {
	if dl.nodes == nil {
		dl.Reset()
	}
}

func (dl *Double[T]) Len() int {
	return dl.len
}

func (dl *Double[T]) IsEmpty() bool {
	return dl.len == 0
}

func (dl *Double[T]) alloc(val T) int {
	if idx, ok := dl.free.Pop(); ok {
		dl.nodes[idx].T = val
		return idx
	}
	if len(dl.nodes) == cap(dl.nodes) {
		nodes := make([]node[T], len(dl.nodes), growth.MustNext(cap(dl.nodes)))
		copy(nodes, dl.nodes)
		dl.nodes = nodes
	}
	dl.nodes = append(dl.nodes, node[T]{T: val})
	return len(dl.nodes) - 1
}

func (dl *Double[T]) release(idx int) {
	dl.nodes[idx] = node[T]{prev: none, next: none, gen: dl.nodes[idx].gen + 1}
	dl.free.Push(idx)
}

// insertBefore links a new node holding val in front of the node at pos.
func (dl *Double[T]) insertBefore(val T, pos int) int {
	idx := dl.alloc(val)
	prev := dl.nodes[pos].prev
	dl.nodes[idx].prev = prev
	dl.nodes[idx].next = pos
	dl.nodes[prev].next = idx
	dl.nodes[pos].prev = idx
	dl.len++
	return idx
}

// removeItem unlinks and releases the node at idx, returning the index of
// its former predecessor.
func (dl *Double[T]) removeItem(idx int) int {
	prev, next := dl.nodes[idx].prev, dl.nodes[idx].next
	dl.nodes[prev].next = next
	dl.nodes[next].prev = prev
	dl.release(idx)
	dl.len--
	return prev
}

// Insert inserts val immediately before pos and returns a cursor for the
// new element. Inserting before End appends and inserting before Begin
// prepends. No existing cursor is invalidated.
func (dl *Double[T]) Insert(pos Position[T], val T) Iterator[T] {
	it := dl.resolve(pos)
	if it.idx == head {
		panic("list: cannot insert before the head sentinel")
	}
	return Iterator[T]{dl.cursor(dl.insertBefore(val, it.idx))}
}

// Erase removes the element at pos and returns a cursor for the element
// that preceded it. If the first element is erased, the returned cursor
// is positioned at the head sentinel, ie. its Next is Begin. Only cursors
// for the erased element are invalidated. Erasing a sentinel panics.
func (dl *Double[T]) Erase(pos Position[T]) Iterator[T] {
	it := dl.resolve(pos)
	if it.idx == head || it.idx == tail {
		panic("list: cannot erase a sentinel")
	}
	return Iterator[T]{dl.cursor(dl.removeItem(it.idx))}
}

// Front returns the first element.
func (dl *Double[T]) Front() (T, error) {
	if dl.len == 0 {
		var zero T
		return zero, sequence.EmptyError("list.Front")
	}
	return dl.nodes[dl.nodes[head].next].T, nil
}

// Back returns the last element.
func (dl *Double[T]) Back() (T, error) {
	if dl.len == 0 {
		var zero T
		return zero, sequence.EmptyError("list.Back")
	}
	return dl.nodes[dl.nodes[tail].prev].T, nil
}

func (dl *Double[T]) PushFront(val T) {
	dl.Insert(dl.Begin(), val)
}

func (dl *Double[T]) PushBack(val T) {
	dl.Insert(dl.End(), val)
}

// PopFront removes the first element.
func (dl *Double[T]) PopFront() error {
	if dl.len == 0 {
		return sequence.EmptyError("list.PopFront")
	}
	dl.Erase(dl.Begin())
	return nil
}

// PopBack removes the last element.
func (dl *Double[T]) PopBack() error {
	if dl.len == 0 {
		return sequence.EmptyError("list.PopBack")
	}
	dl.Erase(dl.End().Prev())
	return nil
}

// Clear removes every element, one at a time, from the front.
func (dl *Double[T]) Clear() {
	for !dl.IsEmpty() {
		_ = dl.PopFront()
	}
}

// Remove removes the first element, searching from the front, for which
// cmp returns true. It returns false if there is no such element.
func (dl *Double[T]) Remove(val T, cmp func(a, b T) bool) bool {
	dl.lazyInit()
	for n := dl.nodes[head].next; n != tail; n = dl.nodes[n].next {
		if cmp(dl.nodes[n].T, val) {
			dl.removeItem(n)
			return true
		}
	}
	return false
}

// RemoveReverse is like Remove but searches from the back.
func (dl *Double[T]) RemoveReverse(val T, cmp func(a, b T) bool) bool {
	dl.lazyInit()
	for n := dl.nodes[tail].prev; n != head; n = dl.nodes[n].prev {
		if cmp(dl.nodes[n].T, val) {
			dl.removeItem(n)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the list.
func (dl *Double[T]) Clone() *Double[T] {
	nl := NewDouble[T]()
	for v := range dl.All() {
		nl.PushBack(v)
	}
	return nl
}

// Assign replaces the contents of dl with a copy of those of src.
func (dl *Double[T]) Assign(src *Double[T]) {
	if dl == src {
		return
	}
	dl.MoveFrom(src.Clone())
}

// Move returns a new list that owns the nodes previously owned by dl, dl
// is left as an empty list with new sentinels.
func (dl *Double[T]) Move() *Double[T] {
	nl := &Double[T]{}
	nl.MoveFrom(dl)
	return nl
}

// MoveFrom transfers the nodes owned by src to dl, src is left as an
// empty list with new sentinels. Cursors obtained from src are invalid.
func (dl *Double[T]) MoveFrom(src *Double[T]) {
	if dl == src {
		return
	}
	src.lazyInit()
	dl.nodes, dl.free, dl.len = src.nodes, src.free, src.len
	src.Reset()
}

// All returns an iterator over the elements from front to back.
func (dl *Double[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if dl.nodes == nil {
			return
		}
		for n := dl.nodes[head].next; n != tail; n = dl.nodes[n].next {
			if !yield(dl.nodes[n].T) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (dl *Double[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if dl.nodes == nil {
			return
		}
		for n := dl.nodes[tail].prev; n != head; n = dl.nodes[n].prev {
			if !yield(dl.nodes[n].T) {
				return
			}
		}
	}
}

// Values returns the elements from front to back.
func (dl *Double[T]) Values() []T {
	out := make([]T, 0, dl.len)
	for v := range dl.All() {
		out = append(out, v)
	}
	return out
}

func (dl *Double[T]) String() string {
	return fmt.Sprintf("%v", dl.Values())
}

// Validate checks the structural invariants of the list: the sentinels
// bracket the chain, every node's neighbours link back to it and the
// number of nodes reachable in either direction equals Len.
func (dl *Double[T]) Validate() error {
	dl.lazyInit()
	errs := &errors.M{}
	if p := dl.nodes[head].prev; p != none {
		errs.Append(fmt.Errorf("head sentinel has a predecessor: %v", p))
	}
	if n := dl.nodes[tail].next; n != none {
		errs.Append(fmt.Errorf("tail sentinel has a successor: %v", n))
	}
	walk := func(dir string, from, to int, step func(int) int, back func(int) int) {
		count := 0
		for n := from; n != to; {
			nx := step(n)
			if nx < 0 || nx >= len(dl.nodes) || count > dl.len {
				errs.Append(fmt.Errorf("%v: chain broken after %v nodes", dir, count))
				return
			}
			if back(nx) != n {
				errs.Append(fmt.Errorf("%v: node %v is not linked back from %v", dir, n, nx))
			}
			if n != from {
				count++
			}
			n = nx
		}
		if count != dl.len {
			errs.Append(fmt.Errorf("%v: found %v nodes, length is %v", dir, count, dl.len))
		}
	}
	next := func(n int) int { return dl.nodes[n].next }
	prev := func(n int) int { return dl.nodes[n].prev }
	walk("forward", head, tail, next, prev)
	walk("backward", tail, head, prev, next)
	return errs.Err()
}
