// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"errors"

	"github.com/ava-labs/seqlist/list"
)

var (
	ErrUnknownOp     = errors.New("unknown operation")
	ErrInvalidArgs   = errors.New("invalid number of arguments")
	ErrNoCursor      = errors.New("no cursor is open")
	ErrInvalidRecord = errors.New("invalid record")
)

// Error kinds reported next to failed operations.
const (
	KindEmptySequence = "empty_sequence"
	KindOutOfRange    = "out_of_range"
	KindInvalidIndex  = "invalid_index"
	KindEndOfSequence = "end_of_sequence"
	KindNoElement     = "no_element"
	KindUsage         = "usage"
)

var kinds = []struct {
	err  error
	kind string
}{
	{list.ErrEmptySequence, KindEmptySequence},
	{list.ErrOutOfRange, KindOutOfRange},
	{list.ErrInvalidIndex, KindInvalidIndex},
	{list.ErrEndOfSequence, KindEndOfSequence},
	{list.ErrNoElement, KindNoElement},
	{ErrUnknownOp, KindUsage},
	{ErrInvalidArgs, KindUsage},
	{ErrNoCursor, KindUsage},
}

// ErrorKind names the class of [err], or returns "" if it is not one a
// session produces.
func ErrorKind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
