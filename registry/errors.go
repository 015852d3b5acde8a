// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import "errors"

var (
	ErrInvalidName      = errors.New("invalid sequence name")
	ErrSequenceExists   = errors.New("sequence already exists")
	ErrSequenceNotFound = errors.New("sequence not found")
	ErrCursorNotFound   = errors.New("cursor not found")
	ErrTooManySequences = errors.New("too many sequences")
	ErrTooManyCursors   = errors.New("too many cursors")
	ErrInvalidConfig    = errors.New("invalid registry config")
)
