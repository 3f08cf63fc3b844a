// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package array

import (
	"errors"
	"runtime"
	"slices"
	"testing"

	"cloudeng.io/sequence"
)

func arange(s, n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = s + i
	}
	return r
}

func contents[T comparable](t *testing.T, l *List[T], want []T) {
	_, _, line, _ := runtime.Caller(1)
	if got := l.Values(); !slices.Equal(got, want) {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
	if got, want := l.Len(), len(want); got != want {
		t.Errorf("line %v: len: got %v, want %v", line, got, want)
	}
	if got, want := l.IsEmpty(), len(want) == 0; got != want {
		t.Errorf("line %v: empty: got %v, want %v", line, got, want)
	}
	if l.Len() > l.Cap() {
		t.Errorf("line %v: len %v exceeds cap %v", line, l.Len(), l.Cap())
	}
	rev := slices.Collect(l.Backward())
	slices.Reverse(rev)
	if !slices.Equal(rev, want) {
		t.Errorf("line %v: reverse: got %v, want %v", line, rev, want)
	}
}

func expectPanic(t *testing.T, fn func()) {
	_, _, line, _ := runtime.Caller(1)
	defer func() {
		if recover() == nil {
			t.Errorf("line %v: expected a panic", line)
		}
	}()
	fn()
}

func TestNew(t *testing.T) {
	l := New[int]()
	if got, want := l.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	contents(t, l, []int{})

	l = New(WithCapacity[int](3))
	if got, want := l.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	l = New(WithCapacity[int](40))
	if got, want := l.Cap(), 40; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	l = New(WithValues(arange(0, 20)...))
	contents(t, l, arange(0, 20))
	if got, want := l.Cap(), 20; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	var zero List[string]
	zero.PushBack("a")
	zero.PushFront("b")
	contents(t, &zero, []string{"b", "a"})
	if got, want := zero.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPushBackGrowth(t *testing.T) {
	l := New[int]()
	for i := 0; i < 16; i++ {
		l.PushBack(i)
	}
	if got, want := l.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	l.PushBack(16)
	if got, want := l.Cap(), 25; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	contents(t, l, arange(0, 17))

	prev := l.Cap()
	for i := 17; i < 1000; i++ {
		full := l.Len() == l.Cap()
		l.PushBack(i)
		switch {
		case full:
			if got, want := l.Cap(), prev*3/2+1; got != want {
				t.Fatalf("%v: got %v, want %v", i, got, want)
			}
		default:
			if got, want := l.Cap(), prev; got != want {
				t.Fatalf("%v: got %v, want %v", i, got, want)
			}
		}
		prev = l.Cap()
	}
	contents(t, l, arange(0, 1000))
}

func TestShiftRight(t *testing.T) {
	l := New(WithValues(1, 2, 3))
	l.ShiftRight()
	if got, want := l.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Index 0 is stale, the previous contents now occupy 1..3.
	if got, want := l.buf[:4], []int{1, 1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// ShiftRight on a full list must grow first.
	l = New(WithValues(arange(0, 16)...))
	l.ShiftRight()
	if got, want := l.Cap(), 25; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := l.buf[1:17], arange(0, 16); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Nothing to move.
	l = New[int]()
	l.ShiftRight()
	contents(t, l, []int{})
}

func TestPushFront(t *testing.T) {
	l := New[int]()
	for i := 0; i < 40; i++ {
		l.PushFront(i)
		if got, want := l.Len(), i+1; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		if got, _ := l.Front(); got != i {
			t.Fatalf("got %v, want %v", got, i)
		}
	}
	want := arange(0, 40)
	slices.Reverse(want)
	contents(t, l, want)

	l = New(WithValues(7, 8, 9))
	l.PushFront(6)
	contents(t, l, []int{6, 7, 8, 9})
}

func TestPopAndBack(t *testing.T) {
	l := New(WithValues(10))
	b, err := l.Back()
	if err != nil || b != 10 {
		t.Errorf("got %v, %v", b, err)
	}
	if err := l.PopBack(); err != nil {
		t.Fatal(err)
	}
	contents(t, l, []int{})
	// The vacated slot is not modified.
	if got, want := l.buf[0], 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := l.PopBack(); !errors.Is(err, sequence.ErrEmpty) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := l.Back(); !errors.Is(err, sequence.ErrEmpty) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := l.Front(); !errors.Is(err, sequence.ErrEmpty) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := l.PopFront(); !errors.Is(err, sequence.ErrEmpty) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	l = New(WithValues(arange(0, 5)...))
	if err := l.PopFront(); err != nil {
		t.Fatal(err)
	}
	contents(t, l, []int{1, 2, 3, 4})
	if err := l.PopBack(); err != nil {
		t.Fatal(err)
	}
	contents(t, l, []int{1, 2, 3})
}

func TestAtSet(t *testing.T) {
	l := New(WithValues(arange(0, 5)...))
	for i := range 5 {
		v, err := l.At(i)
		if err != nil || v != i {
			t.Errorf("%v: got %v, %v", i, v, err)
		}
		if err := l.Set(i, v*10); err != nil {
			t.Error(err)
		}
	}
	contents(t, l, []int{0, 10, 20, 30, 40})
	for _, i := range []int{-1, 5, 100} {
		if _, err := l.At(i); !errors.Is(err, sequence.ErrOutOfBounds) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
		if err := l.Set(i, 0); !errors.Is(err, sequence.ErrOutOfBounds) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
	}
	if got, want := l.Index(30), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if l.Contains(31) {
		t.Errorf("unexpected element")
	}
}

func TestPromote(t *testing.T) {
	l := New(WithValues(5, 3, 9, 3, 7))
	if !l.Promote(9) {
		t.Errorf("9 not found")
	}
	contents(t, l, []int{9, 5, 3, 3, 7})
	if !l.Promote(3) {
		t.Errorf("3 not found")
	}
	contents(t, l, []int{3, 9, 5, 3, 7})
	if !l.Promote(7) {
		t.Errorf("7 not found")
	}
	contents(t, l, []int{7, 3, 9, 5, 3})
	if !l.Promote(7) {
		t.Errorf("7 not found")
	}
	contents(t, l, []int{7, 3, 9, 5, 3})
	if l.Promote(42) {
		t.Errorf("42 should not be found")
	}
	contents(t, l, []int{7, 3, 9, 5, 3})
}

func TestPromoteByProbe(t *testing.T) {
	l := New(WithValues(11, 12, 13, 14, 15, 16))
	v, err := l.PromoteByProbe(DefaultProbe)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v, 15; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	contents(t, l, []int{15, 11, 12, 13, 14, 16})

	// The first equal element is moved, which may precede the probe.
	l = New(WithValues(1, 2, 3, 2, 2))
	v, err = l.PromoteByProbe(4)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	contents(t, l, []int{2, 1, 3, 2, 2})

	l = New(WithValues(1, 2, 3))
	for _, probe := range []int{-1, 3, DefaultProbe} {
		if _, err := l.PromoteByProbe(probe); !errors.Is(err, sequence.ErrOutOfBounds) {
			t.Errorf("%v: unexpected or missing error: %v", probe, err)
		}
	}
	contents(t, l, []int{1, 2, 3})
}

func TestCopyAndMove(t *testing.T) {
	l := New(WithValues(arange(0, 20)...))
	c := l.Clone()
	c.PushBack(100)
	if err := c.Set(0, -1); err != nil {
		t.Fatal(err)
	}
	contents(t, l, arange(0, 20))
	contents(t, c, append(append([]int{-1}, arange(1, 19)...), 100))

	var a List[int]
	a.Assign(l)
	l.PushFront(-5)
	contents(t, &a, arange(0, 20))
	a.Assign(&a)
	contents(t, &a, arange(0, 20))

	capacity := a.Cap()
	m := a.Move()
	contents(t, m, arange(0, 20))
	if got, want := m.Cap(), capacity; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	contents(t, &a, []int{})
	if got, want := a.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	a.PushBack(3)
	contents(t, &a, []int{3})
	contents(t, m, arange(0, 20))

	var b List[int]
	b.MoveFrom(m)
	contents(t, &b, arange(0, 20))
	contents(t, m, []int{})
}

func TestClearCompact(t *testing.T) {
	l := New(WithValues(arange(0, 100)...))
	for range 90 {
		if err := l.PopBack(); err != nil {
			t.Fatal(err)
		}
	}
	l.Compact()
	if got, want := l.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	contents(t, l, arange(0, 10))
	l.Clear()
	contents(t, l, []int{})
	if got, want := l.Cap(), 16; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := l.String(), "[]"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCursors(t *testing.T) {
	l := New(WithValues(1, 2, 3, 4))
	if got, want := slices.Collect(sequence.Forward[int](l.Begin(), l.End())), []int{1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := slices.Collect(sequence.Backward[int](l.CBegin(), l.CEnd())), []int{4, 3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	sequence.Transform[int](l.Begin(), l.End(), func(v int) int { return v * v })
	contents(t, l, []int{1, 4, 9, 16})

	it := sequence.Find[int](l.Begin(), l.End(), 9)
	if got, want := it.Index(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	*it.Ptr() = 8
	it.Prev().Set(3)
	contents(t, l, []int{1, 3, 8, 16})
	if got, want := sequence.Distance[int](l.Begin(), l.End()), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sequence.Advance[int](l.End(), -4), l.Begin(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// post-increment.
	old, next := it, it.Next()
	if old.Value() != 8 || next.Value() != 16 {
		t.Errorf("got %v %v", old.Value(), next.Value())
	}
	if it.Const() != l.CBegin().Next().Next() {
		t.Errorf("mutable and read-only cursors differ")
	}

	if l.End().Valid() || l.Begin().Prev().Valid() || !l.Begin().Valid() {
		t.Errorf("incorrect validity")
	}
	expectPanic(t, func() { l.End().Value() })
	expectPanic(t, func() { l.Begin().Prev().Value() })
	expectPanic(t, func() { l.End().Set(1) })
	expectPanic(t, func() { ConstIterator[int]{}.Value() })
	expectPanic(t, func() { l.End().Next() })
	expectPanic(t, func() { l.CEnd().Next() })
	expectPanic(t, func() { l.Begin().Prev().Prev() })
	expectPanic(t, func() { l.CBegin().Prev().Prev() })
	expectPanic(t, func() { ConstIterator[int]{}.Next() })
	if got, want := l.Begin().Prev().Next(), l.Begin(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	empty := New[int]()
	if empty.Begin() != empty.End() {
		t.Errorf("begin and end differ for an empty list")
	}
	expectPanic(t, func() { empty.Begin().Next() })
}

func TestCursorsAcrossGrowth(t *testing.T) {
	l := New(WithValues(7, 8))
	first, last := l.Begin(), l.End().Prev()
	capacity := l.Cap()
	for i := range 3 * capacity {
		l.PushBack(i)
	}
	if l.Cap() <= capacity {
		t.Fatalf("list did not grow: cap %v", l.Cap())
	}
	if got, want := first.Value(), 7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := last.Value(), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	first.Set(70)
	if got, want := l.Values()[:2], []int{70, 8}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sequence.Distance[int](first, l.End()), l.Len(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
