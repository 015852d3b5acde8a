// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list_test

import (
	"fmt"

	"github.com/ava-labs/seqlist/list"
)

func ExampleSequence() {
	s := list.Of(2, 3)
	s.Prepend(1)
	s.Extend(4, 5)

	last, _ := s.Get(-1)
	fmt.Println(s, s.Len(), last)

	removed, _ := s.Delete(0)
	fmt.Println(removed, s)
	// Output:
	// [1 2 3 4 5] 5 5
	// 1 [2 3 4 5]
}

func ExampleCursor() {
	s := list.Of("a", "b", "d")
	c := s.Cursor()
	for c.HasNext() {
		v, _ := c.Next()
		if v == "b" {
			c.InsertAfter("c")
		}
	}
	fmt.Println(s)
	// Output:
	// [a b c d]
}
