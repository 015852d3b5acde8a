// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"os"

	"github.com/ava-labs/seqlist/cmd/seqsim/cmd"
	"github.com/ava-labs/seqlist/utils"
)

func main() {
	s := &cmd.Simulator{}
	if err := s.Execute(context.Background(), os.Args); err != nil {
		utils.Outf("{{red}}error: {{/}}%+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
