// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "errors"

var (
	ErrInvalidFormat = errors.New("config is neither JSON nor YAML")
	ErrInvalidPort   = errors.New("invalid port")
	ErrInvalidConfig = errors.New("invalid config")
)
