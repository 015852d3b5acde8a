// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import "errors"

var ErrDuplicateRoute = errors.New("duplicate route")
