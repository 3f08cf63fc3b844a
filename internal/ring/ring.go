// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ring provides a growable FIFO queue stored in a circular buffer.
package ring

import "cloudeng.io/sequence/internal/growth"

// Queue is a FIFO queue that grows, using the same policy as the
// sequence containers, when full. The zero value is an empty queue.
type Queue[T any] struct {
	storage []T
	// NOTE, head==tail when the queue is either empty or full, used
	// distinguishes the two.
	used int
	head int // index of the first element.
	tail int // index at which the next element will be stored.
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.used
}

// Cap returns the number of elements that can be queued without growing.
func (q *Queue[T]) Cap() int {
	return len(q.storage)
}

func (q *Queue[T]) grow() {
	size := growth.MinCapacity
	if len(q.storage) > 0 {
		size = growth.MustNext(len(q.storage))
	}
	n := make([]T, size)
	if q.used > 0 {
		c := copy(n, q.storage[q.head:])
		if c < q.used {
			copy(n[c:], q.storage[:q.tail])
		}
	}
	q.head = 0
	q.tail = q.used
	q.storage = n
}

// Push appends v to the queue.
func (q *Queue[T]) Push(v T) {
	if q.used == len(q.storage) {
		q.grow()
	}
	q.storage[q.tail] = v
	q.tail = (q.tail + 1) % len(q.storage)
	q.used++
}

// Pop removes and returns the oldest element, it returns false if the
// queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.used == 0 {
		return zero, false
	}
	v := q.storage[q.head]
	q.storage[q.head] = zero
	q.head = (q.head + 1) % len(q.storage)
	q.used--
	return v, true
}

// Reset empties the queue and releases its storage.
func (q *Queue[T]) Reset() {
	*q = Queue[T]{}
}
