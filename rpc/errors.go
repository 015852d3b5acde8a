// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/seqlist/list"
	"github.com/ava-labs/seqlist/registry"
)

var ErrMissingIndex = errors.New("missing index")

// remoteErrors are the errors a client can recognize in a server response.
// Registry errors come first because their messages may embed a sequence
// name.
var remoteErrors = []error{
	registry.ErrInvalidName,
	registry.ErrSequenceExists,
	registry.ErrSequenceNotFound,
	registry.ErrCursorNotFound,
	registry.ErrTooManySequences,
	registry.ErrTooManyCursors,
	list.ErrEmptySequence,
	list.ErrOutOfRange,
	list.ErrInvalidIndex,
	list.ErrEndOfSequence,
	list.ErrNoElement,
	ErrMissingIndex,
}

// parseError maps the message of an error returned by the server back onto
// the sentinel it was created from, so callers can use [errors.Is].
func parseError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, known := range remoteErrors {
		if strings.Contains(msg, known.Error()) {
			return fmt.Errorf("%w: %s", known, msg)
		}
	}
	return err
}
