// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"fmt"
	"iter"
	"strings"
)

// Sequence implements a double-linked list with index-based access. It offers
// similar functionality as container/list but uses generics and permits
// addressing elements by position.
//
// The chain is bounded by two permanent boundary elements: [head] has no
// predecessor and [tail] has no successor. Every element in between always
// has two neighbours, so insertion and removal never special-case the ends.
//
// Negative indices count from the end (-1 is the last element). Indexed
// access walks from whichever boundary is closer, so reaching the first or
// last element is O(1) and the middle is O(n/2).
//
// The zero value is an empty sequence ready to use. A Sequence must not be
// copied after first use.
//
// Sequence does not perform any synchronization and is not safe to use
// concurrently without external locking.
type Sequence[T any] struct {
	head element[T]
	tail element[T]
	size int
}

type element[T any] struct {
	prev *element[T]
	next *element[T]
	list *Sequence[T] // nil once the element is unlinked

	value T
}

// New returns an empty sequence.
func New[T any]() *Sequence[T] {
	s := &Sequence[T]{}
	s.init()
	return s
}

// FromSlice returns a sequence holding a copy of [values], in order.
func FromSlice[T any](values []T) *Sequence[T] {
	s := New[T]()
	s.Extend(values...)
	return s
}

// Of returns a sequence holding [values], in order.
func Of[T any](values ...T) *Sequence[T] {
	return FromSlice(values)
}

// FromSequence returns a sequence holding a copy of the values of [other],
// traversed from its first to its last element.
func FromSequence[T any](other *Sequence[T]) *Sequence[T] {
	s := New[T]()
	s.ExtendFrom(other)
	return s
}

func (s *Sequence[T]) init() {
	s.head = element[T]{}
	s.tail = element[T]{}
	s.head.next = &s.tail
	s.tail.prev = &s.head
	s.size = 0
}

// lazyInit wires the boundaries of a zero-value Sequence.
func (s *Sequence[T]) lazyInit() {
	if s.head.next == nil {
		s.init()
	}
}

// Len returns the number of elements in s.
func (s *Sequence[T]) Len() int {
	return s.size
}

// Get returns the value at index [i].
func (s *Sequence[T]) Get(i int) (T, error) {
	e, err := s.elementAt(i)
	if err != nil {
		var empty T
		return empty, err
	}
	return e.value, nil
}

// First returns the first value in s.
func (s *Sequence[T]) First() (T, error) {
	return s.Get(0)
}

// Last returns the last value in s.
func (s *Sequence[T]) Last() (T, error) {
	return s.Get(-1)
}

// Set replaces the value at index [i]. It never adds an element.
func (s *Sequence[T]) Set(i int, v T) error {
	e, err := s.elementAt(i)
	if err != nil {
		return err
	}
	e.value = v
	return nil
}

// Append adds [v] as a single element to the end of s.
func (s *Sequence[T]) Append(v T) {
	s.lazyInit()
	s.insertBefore(&s.tail, v)
}

// Prepend adds [v] as a single element to the front of s.
func (s *Sequence[T]) Prepend(v T) {
	s.lazyInit()
	s.insertBefore(s.head.next, v)
}

// Extend adds every value in [values] to the end of s, keeping their order.
func (s *Sequence[T]) Extend(values ...T) {
	s.lazyInit()
	s.insertBefore(&s.tail, values...)
}

// ExtendSeq adds every value yielded by [values] to the end of s.
//
// If [values] iterates over s itself, the values are collected before any
// are added.
func (s *Sequence[T]) ExtendSeq(values iter.Seq[T]) {
	s.lazyInit()
	var buf []T
	for v := range values {
		buf = append(buf, v)
	}
	s.insertBefore(&s.tail, buf...)
}

// ExtendFrom adds a copy of every value of [other] to the end of s.
func (s *Sequence[T]) ExtendFrom(other *Sequence[T]) {
	if other == nil {
		return
	}
	if other == s {
		s.Extend(s.Values()...)
		return
	}
	s.ExtendSeq(other.All())
}

// Insert adds [values] so that the first of them ends up at index [i].
// Index Len() appends.
//
// Bounds are checked against Len()+1, but negative indices are resolved
// against Len(), so Insert(-1, v) places v before the current last element
// and Insert(-Len()-1, v) is out of range. The index is resolved once: a
// normalized index that is still negative is rejected, not resolved again.
func (s *Sequence[T]) Insert(i int, values ...T) error {
	s.lazyInit()
	if err := checkBounds(i, s.size+1); err != nil {
		return err
	}
	pos := normalize(i, s.size)
	if pos < 0 {
		return fmt.Errorf("%w: insert index %d for length %d", ErrOutOfRange, i, s.size)
	}
	s.insertBefore(s.nodeAt(pos), values...)
	return nil
}

// Delete removes the element at index [i] and returns its value.
func (s *Sequence[T]) Delete(i int) (T, error) {
	e, err := s.elementAt(i)
	if err != nil {
		var empty T
		return empty, err
	}
	s.remove(e)
	return e.value, nil
}

// Clear removes every element from s. Cursors of s must not be used
// afterwards.
func (s *Sequence[T]) Clear() {
	s.lazyInit()
	for e := s.head.next; e != &s.tail; e = e.next {
		e.list = nil
	}
	s.init()
}

// All returns an iterator over the values of s from front to back.
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.head.next == nil {
			return
		}
		for e := s.head.next; e != &s.tail; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of s from back to front.
func (s *Sequence[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.tail.prev == nil {
			return
		}
		for e := s.tail.prev; e != &s.head; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Values returns the values of s from front to back.
func (s *Sequence[T]) Values() []T {
	values := make([]T, 0, s.size)
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

func (s *Sequence[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// elementAt returns the element at the raw index [i].
func (s *Sequence[T]) elementAt(i int) (*element[T], error) {
	if err := checkBounds(i, s.size); err != nil {
		return nil, err
	}
	return s.nodeAt(normalize(i, s.size)), nil
}

// nodeAt returns the element at effective index [i], which must be in
// [0, size]. Index [size] resolves to the tail boundary.
func (s *Sequence[T]) nodeAt(i int) *element[T] {
	if 2*i < s.size {
		e := &s.head
		for range i + 1 {
			e = e.next
		}
		return e
	}
	e := &s.tail
	for range s.size - i {
		e = e.prev
	}
	return e
}

// insertBefore splices [values] between [at] and its predecessor, in order.
func (s *Sequence[T]) insertBefore(at *element[T], values ...T) *element[T] {
	left := at.prev
	for _, v := range values {
		left = s.insertAfter(left, v)
	}
	return left
}

// insertAfter links a new element holding [v] right after [at].
func (s *Sequence[T]) insertAfter(at *element[T], v T) *element[T] {
	e := &element[T]{
		prev:  at,
		next:  at.next,
		list:  s,
		value: v,
	}
	at.next.prev = e
	at.next = e
	s.size++
	return e
}

// remove unlinks [e]. The element keeps its own prev and next so a cursor
// parked on it can still step to its former neighbours.
func (s *Sequence[T]) remove(e *element[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.list = nil
	s.size--
}
