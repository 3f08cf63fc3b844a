// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sequence defines the error taxonomy, cursor protocol and common
// interface shared by the sequence containers in the array and list
// sub-packages.
//
// Two containers are provided:
//
//   - array.List, a contiguous buffer that grows by floor(cap*3/2)+1 and
//     supports promoting an element to the front (a self-adjusting list).
//   - list.Double, a doubly linked list bracketed by two permanent
//     sentinel nodes whose nodes are held in an arena and referenced by
//     index rather than by pointer.
//
// Both containers provide read-only and mutable cursors. A cursor is a
// small comparable value; Next and Prev return a new cursor rather than
// modifying the receiver, so that the C++ style pre and post increment
// idioms become:
//
//	it = it.Next()           // pre-increment
//	old, it := it, it.Next() // post-increment
//
// Dereferencing a cursor positioned at a sentinel (end or before-begin)
// is a contract violation and panics. Operations that can fail because
// the container is empty, or because an index is out of range, return
// errors that match ErrEmpty and ErrOutOfBounds respectively.
//
// None of the containers are safe for concurrent use.
package sequence
