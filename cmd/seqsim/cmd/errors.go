// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrAssertionFailed     = errors.New("assertion failed")
	ErrNoCommand           = errors.New("no command given")
)
