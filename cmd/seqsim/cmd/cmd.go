// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/utils/logging"
)

type Cmd interface {
	New(parser *argparse.Parser)
	Run(ctx context.Context, log logging.Logger) error
	Happened() bool
}
