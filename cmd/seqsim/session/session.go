// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package session runs named operations against one sequence and at most
// one cursor over it.
package session

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/seqlist/list"
)

type Op string

const (
	OpNew           Op = "new"
	OpLen           Op = "len"
	OpGet           Op = "get"
	OpFirst         Op = "first"
	OpLast          Op = "last"
	OpSet           Op = "set"
	OpAppend        Op = "append"
	OpPrepend       Op = "prepend"
	OpExtend        Op = "extend"
	OpInsert        Op = "insert"
	OpDelete        Op = "delete"
	OpClear         Op = "clear"
	OpValues        Op = "values"
	OpReverse       Op = "reverse"
	OpCursor        Op = "cursor"
	OpHasNext       Op = "has_next"
	OpHasPrev       Op = "has_prev"
	OpNext          Op = "next"
	OpPrev          Op = "prev"
	OpValue         Op = "value"
	OpInsertAfter   Op = "insert_after"
	OpDeleteCurrent Op = "delete_current"
)

const variadic = -1

type opSpec struct {
	usage   string
	minArgs int
	maxArgs int
	run     func(s *Session, args []any) (any, error)
}

var ops = map[Op]opSpec{
	OpNew: {
		usage:   "new [value...]: replace the sequence",
		maxArgs: variadic,
		run: func(s *Session, args []any) (any, error) {
			s.seq = list.FromSlice(args)
			s.cursor = nil
			return s.seq.Len(), nil
		},
	},
	OpLen: {
		usage: "len",
		run: func(s *Session, _ []any) (any, error) {
			return s.seq.Len(), nil
		},
	},
	OpGet: {
		usage:   "get [index]: element at index, last element by default",
		maxArgs: 1,
		run: func(s *Session, args []any) (any, error) {
			if len(args) == 0 {
				return s.seq.Last()
			}
			i, err := list.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			return s.seq.Get(i)
		},
	},
	OpFirst: {
		usage: "first",
		run: func(s *Session, _ []any) (any, error) {
			return s.seq.First()
		},
	},
	OpLast: {
		usage: "last",
		run: func(s *Session, _ []any) (any, error) {
			return s.seq.Last()
		},
	},
	OpSet: {
		usage:   "set index value",
		minArgs: 2,
		maxArgs: 2,
		run: func(s *Session, args []any) (any, error) {
			i, err := list.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			return nil, s.seq.Set(i, args[1])
		},
	},
	OpAppend: {
		usage:   "append value",
		minArgs: 1,
		maxArgs: 1,
		run: func(s *Session, args []any) (any, error) {
			s.seq.Append(args[0])
			return s.seq.Len(), nil
		},
	},
	OpPrepend: {
		usage:   "prepend value",
		minArgs: 1,
		maxArgs: 1,
		run: func(s *Session, args []any) (any, error) {
			s.seq.Prepend(args[0])
			return s.seq.Len(), nil
		},
	},
	OpExtend: {
		usage:   "extend value...",
		maxArgs: variadic,
		run: func(s *Session, args []any) (any, error) {
			s.seq.Extend(args...)
			return s.seq.Len(), nil
		},
	},
	OpInsert: {
		usage:   "insert index value...",
		minArgs: 1,
		maxArgs: variadic,
		run: func(s *Session, args []any) (any, error) {
			i, err := list.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			if err := s.seq.Insert(i, args[1:]...); err != nil {
				return nil, err
			}
			return s.seq.Len(), nil
		},
	},
	OpDelete: {
		usage:   "delete index",
		minArgs: 1,
		maxArgs: 1,
		run: func(s *Session, args []any) (any, error) {
			i, err := list.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			return s.seq.Delete(i)
		},
	},
	OpClear: {
		usage: "clear",
		run: func(s *Session, _ []any) (any, error) {
			s.seq.Clear()
			s.cursor = nil
			return 0, nil
		},
	},
	OpValues: {
		usage: "values",
		run: func(s *Session, _ []any) (any, error) {
			return s.seq.Values(), nil
		},
	},
	OpReverse: {
		usage: "reverse: values from last to first",
		run: func(s *Session, _ []any) (any, error) {
			values := make([]any, 0, s.seq.Len())
			for v := range s.seq.Backward() {
				values = append(values, v)
			}
			return values, nil
		},
	},
	OpCursor: {
		usage:   "cursor [index]: open a cursor before the first element or on index",
		maxArgs: 1,
		run: func(s *Session, args []any) (any, error) {
			if len(args) == 0 {
				s.cursor = s.seq.Cursor()
				return nil, nil
			}
			i, err := list.ParseIndex(args[0])
			if err != nil {
				return nil, err
			}
			c, err := s.seq.CursorAt(i)
			if err != nil {
				return nil, err
			}
			s.cursor = c
			return c.Value()
		},
	},
	OpHasNext: {
		usage: "has_next",
		run: withCursor(func(c *list.Cursor[any], _ []any) (any, error) {
			return c.HasNext(), nil
		}),
	},
	OpHasPrev: {
		usage: "has_prev",
		run: withCursor(func(c *list.Cursor[any], _ []any) (any, error) {
			return c.HasPrev(), nil
		}),
	},
	OpNext: {
		usage: "next",
		run: withCursor(func(c *list.Cursor[any], _ []any) (any, error) {
			return c.Next()
		}),
	},
	OpPrev: {
		usage: "prev",
		run: withCursor(func(c *list.Cursor[any], _ []any) (any, error) {
			return c.Prev()
		}),
	},
	OpValue: {
		usage: "value",
		run: withCursor(func(c *list.Cursor[any], _ []any) (any, error) {
			return c.Value()
		}),
	},
	OpInsertAfter: {
		usage:   "insert_after value: insert after the cursor and move onto it",
		minArgs: 1,
		maxArgs: 1,
		run: withCursor(func(c *list.Cursor[any], args []any) (any, error) {
			c.InsertAfter(args[0])
			return c.Sequence().Len(), nil
		}),
	},
	OpDeleteCurrent: {
		usage: "delete_current",
		run: withCursor(func(c *list.Cursor[any], _ []any) (any, error) {
			return c.Delete()
		}),
	},
}

func withCursor(f func(*list.Cursor[any], []any) (any, error)) func(*Session, []any) (any, error) {
	return func(s *Session, args []any) (any, error) {
		if s.cursor == nil {
			return nil, ErrNoCursor
		}
		return f(s.cursor, args)
	}
}

// Session is not safe for concurrent use.
type Session struct {
	seq    *list.Sequence[any]
	cursor *list.Cursor[any]
}

// New returns a session over a sequence holding [values].
func New(values ...any) *Session {
	return &Session{seq: list.FromSlice(values)}
}

func (s *Session) Sequence() *list.Sequence[any] {
	return s.seq
}

// Do runs [op] with [args] and returns its result.
func (s *Session) Do(op Op, args []any) (any, error) {
	o, ok := ops[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	if len(args) < o.minArgs || (o.maxArgs != variadic && len(args) > o.maxArgs) {
		return nil, fmt.Errorf("%w: usage: %s", ErrInvalidArgs, o.usage)
	}
	return o.run(s, args)
}

// IsOp reports whether [name] is a known operation.
func IsOp(name string) bool {
	_, ok := ops[Op(name)]
	return ok
}

// Ops returns every operation name, sorted.
func Ops() []Op {
	names := maps.Keys(ops)
	slices.Sort(names)
	return names
}

// Usage describes every operation, one per line.
func Usage() string {
	var b strings.Builder
	for _, op := range Ops() {
		b.WriteString(ops[op].usage)
		b.WriteByte('\n')
	}
	return b.String()
}
