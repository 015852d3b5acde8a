// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

// Cursor is a live position inside a [Sequence]. It can move in both
// directions and insert or delete at its position, updating the owning
// sequence in place.
//
// A cursor created by [Sequence.Cursor] starts before the first element, so
// the first call to [Cursor.Next] returns element 0.
//
// Mutations made through one cursor (or directly on the sequence) are not
// reported to other cursors of the same sequence. Callers must not keep using
// a cursor whose element was removed by someone else.
type Cursor[T any] struct {
	list *Sequence[T]
	node *element[T]
}

// Cursor returns a cursor positioned before the first element of s.
func (s *Sequence[T]) Cursor() *Cursor[T] {
	s.lazyInit()
	return &Cursor[T]{list: s, node: &s.head}
}

// CursorAt returns a cursor positioned on the element at index [i]. [Next]
// and [Prev] move away from that element.
func (s *Sequence[T]) CursorAt(i int) (*Cursor[T], error) {
	e, err := s.elementAt(i)
	if err != nil {
		return nil, err
	}
	return &Cursor[T]{list: s, node: e}, nil
}

// Sequence returns the sequence c moves over.
func (c *Cursor[T]) Sequence() *Sequence[T] {
	return c.list
}

// HasNext reports whether [Next] would return an element. The tail boundary
// is the only element without a successor, so this checks the node after the
// next one.
func (c *Cursor[T]) HasNext() bool {
	next := c.node.next
	return next != nil && next.next != nil
}

// HasPrev reports whether [Prev] would return an element.
func (c *Cursor[T]) HasPrev() bool {
	prev := c.node.prev
	return prev != nil && prev.prev != nil
}

// Next moves c to the following element and returns its value.
func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var empty T
		return empty, ErrEndOfSequence
	}
	c.node = c.node.next
	return c.node.value, nil
}

// Prev moves c to the preceding element and returns its value.
func (c *Cursor[T]) Prev() (T, error) {
	if !c.HasPrev() {
		var empty T
		return empty, ErrEndOfSequence
	}
	c.node = c.node.prev
	return c.node.value, nil
}

// Value returns the value under c without moving it.
//
// It fails with [ErrNoElement] before the first element and right after
// [Cursor.Delete]; move the cursor before reading again.
func (c *Cursor[T]) Value() (T, error) {
	if !c.onElement() {
		var empty T
		return empty, ErrNoElement
	}
	return c.node.value, nil
}

// InsertAfter adds [v] right after the current position and moves c onto
// it. After [Cursor.Delete], [v] takes the place of the removed element.
func (c *Cursor[T]) InsertAfter(v T) {
	at := c.node
	if at.next == nil {
		// parked on the tail boundary
		at = at.prev
	}
	// After a delete, step back to the closest element still linked. Other
	// cursors may have removed the predecessors too; detached elements keep
	// their prev links, so the walk ends at head at the latest.
	for at != &c.list.head && at.list != c.list {
		at = at.prev
	}
	c.node = c.list.insertAfter(at, v)
}

// Delete removes the element under c and returns its value.
//
// c keeps referring to the removed element, whose links are left untouched,
// so [Next] and [Prev] still reach its former neighbours. [Value] fails until
// c moves.
func (c *Cursor[T]) Delete() (T, error) {
	if !c.onElement() {
		var empty T
		return empty, ErrNoElement
	}
	c.list.remove(c.node)
	return c.node.value, nil
}

// onElement reports whether c is on an element that is still linked into
// its sequence.
func (c *Cursor[T]) onElement() bool {
	return c.node.list == c.list
}
