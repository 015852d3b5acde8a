// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorForward(t *testing.T) {
	require := require.New(t)

	values := []int{1, 2, 3, 4, 5}
	s := FromSlice(values)
	c := s.Cursor()
	require.Same(s, c.Sequence())

	_, err := c.Value()
	require.ErrorIs(err, ErrNoElement)
	require.False(c.HasPrev())

	var got []int
	for c.HasNext() {
		v, err := c.Next()
		require.NoError(err)
		got = append(got, v)
	}
	require.Equal(values, got)

	_, err = c.Next()
	require.ErrorIs(err, ErrEndOfSequence)

	v, err := c.Value()
	require.NoError(err)
	require.Equal(5, v)
}

func TestCursorEmpty(t *testing.T) {
	require := require.New(t)

	c := New[string]().Cursor()
	require.False(c.HasNext())
	require.False(c.HasPrev())
	_, err := c.Next()
	require.ErrorIs(err, ErrEndOfSequence)
	_, err = c.Prev()
	require.ErrorIs(err, ErrEndOfSequence)
	_, err = c.Delete()
	require.ErrorIs(err, ErrNoElement)

	_, err = New[string]().CursorAt(0)
	require.ErrorIs(err, ErrEmptySequence)
}

func TestCursorAtForward(t *testing.T) {
	require := require.New(t)

	values := []int{1, 2, 3, 4, 5}
	c, err := FromSlice(values).CursorAt(0)
	require.NoError(err)

	v, err := c.Value()
	require.NoError(err)
	require.Equal(values[0], v)
	require.False(c.HasPrev())

	for _, want := range values[1:] {
		v, err := c.Next()
		require.NoError(err)
		require.Equal(want, v)
	}
	require.False(c.HasNext())
}

func TestCursorAtReverse(t *testing.T) {
	require := require.New(t)

	values := []int{1, 2, 3, 4, 5}
	c, err := FromSlice(values).CursorAt(-1)
	require.NoError(err)

	v, err := c.Value()
	require.NoError(err)
	require.Equal(5, v)
	require.False(c.HasNext())

	for i := len(values) - 2; i >= 0; i-- {
		v, err := c.Prev()
		require.NoError(err)
		require.Equal(values[i], v)
	}
	require.False(c.HasPrev())
	_, err = c.Prev()
	require.ErrorIs(err, ErrEndOfSequence)

	_, err = FromSlice(values).CursorAt(5)
	require.ErrorIs(err, ErrOutOfRange)
}

func TestCursorMutation(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2, 3, 4, 5)
	c := s.Cursor()

	_, err := c.Next()
	require.NoError(err)
	v, err := c.Next()
	require.NoError(err)
	require.Equal(2, v)

	c.InsertAfter(99)
	c.InsertAfter(100)
	v, err = c.Value()
	require.NoError(err)
	require.Equal(100, v)

	v, err = c.Next()
	require.NoError(err)
	require.Equal(3, v)

	c.InsertAfter(101)
	v, err = c.Next()
	require.NoError(err)
	require.Equal(4, v)

	v, err = c.Delete()
	require.NoError(err)
	require.Equal(4, v)

	require.Equal([]int{1, 2, 99, 100, 3, 101, 5}, s.Values())
	require.Equal(7, s.Len())
	checkLinks(t, s)
}

func TestCursorDeleteThenMove(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2, 3)
	c, err := s.CursorAt(1)
	require.NoError(err)

	v, err := c.Delete()
	require.NoError(err)
	require.Equal(2, v)
	require.Equal([]int{1, 3}, s.Values())

	_, err = c.Value()
	require.ErrorIs(err, ErrNoElement)
	_, err = c.Delete()
	require.ErrorIs(err, ErrNoElement)
	require.Equal(2, s.Len())

	require.True(c.HasNext())
	v, err = c.Next()
	require.NoError(err)
	require.Equal(3, v)

	c, err = s.CursorAt(1)
	require.NoError(err)
	_, err = c.Delete()
	require.NoError(err)
	v, err = c.Prev()
	require.NoError(err)
	require.Equal(1, v)
	require.False(c.HasPrev())
}

func TestCursorDeleteEverything(t *testing.T) {
	require := require.New(t)

	s := Of("a", "b", "c")
	c := s.Cursor()
	var removed []string
	for c.HasNext() {
		_, err := c.Next()
		require.NoError(err)
		v, err := c.Delete()
		require.NoError(err)
		removed = append(removed, v)
	}
	require.Equal([]string{"a", "b", "c"}, removed)
	require.Zero(s.Len())
	checkLinks(t, s)
}

func TestCursorInsertAfterDelete(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2, 3)
	c, err := s.CursorAt(1)
	require.NoError(err)
	_, err = c.Delete()
	require.NoError(err)

	c.InsertAfter(20)
	v, err := c.Value()
	require.NoError(err)
	require.Equal(20, v)
	require.Equal([]int{1, 20, 3}, s.Values())
	checkLinks(t, s)
}

func TestCursorInsertAfterNeighbourDeleted(t *testing.T) {
	require := require.New(t)

	s := Of("a", "b", "c")
	a, err := s.CursorAt(1)
	require.NoError(err)
	b, err := s.CursorAt(0)
	require.NoError(err)

	_, err = a.Delete()
	require.NoError(err)
	_, err = b.Delete()
	require.NoError(err)

	a.InsertAfter("v")
	v, err := a.Value()
	require.NoError(err)
	require.Equal("v", v)
	require.Equal(2, s.Len())
	require.Equal([]string{"v", "c"}, s.Values())
	checkLinks(t, s)

	v, err = a.Next()
	require.NoError(err)
	require.Equal("c", v)
}

func TestCursorInsertFromStart(t *testing.T) {
	require := require.New(t)

	s := New[int]()
	c := s.Cursor()
	c.InsertAfter(1)
	c.InsertAfter(2)
	require.Equal([]int{1, 2}, s.Values())
	require.False(c.HasNext())
	require.True(c.HasPrev())

	v, err := c.Prev()
	require.NoError(err)
	require.Equal(1, v)
	checkLinks(t, s)
}

func TestCursorsShareSequence(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2, 3)
	a := s.Cursor()
	b := s.Cursor()

	_, err := a.Next()
	require.NoError(err)
	a.InsertAfter(10)

	var got []int
	for b.HasNext() {
		v, err := b.Next()
		require.NoError(err)
		got = append(got, v)
	}
	require.Equal([]int{1, 10, 2, 3}, got)
}
