// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import "errors"

var (
	ErrEmptySequence = errors.New("sequence is empty")
	ErrOutOfRange    = errors.New("index out of range")
	ErrInvalidIndex  = errors.New("index is not an integer")
	ErrEndOfSequence = errors.New("end of sequence")
	ErrNoElement     = errors.New("cursor is not on an element")
)
