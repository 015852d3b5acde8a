// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/seqlist/cmd/seqsim/session"

	ilogging "github.com/ava-labs/seqlist/internal/logging"
)

func runInterpreter(t *testing.T, input string) *bytes.Buffer {
	interactive := false
	out := &bytes.Buffer{}
	c := &interpreterCmd{
		interactive: &interactive,
		in:          strings.NewReader(input),
		out:         out,
	}
	require.NoError(t, c.Run(context.Background(), &ilogging.Noop{}))
	return out
}

func TestInterpreter(t *testing.T) {
	require := require.New(t)

	input := strings.Join([]string{
		"# build",
		"append 1",
		`extend 2 "three" '{"k":[1]}'`,
		"get -1",
		"",
		"values",
		"next",
		"bogus",
		"exit",
		"append 5",
	}, "\n")
	responses := readResponses(t, runInterpreter(t, input))
	require.Len(responses, 6)

	require.Equal(1, responses[0].ID)
	require.Equal("append", responses[0].Op)
	require.InDelta(1, responses[0].Result, 0)

	require.InDelta(4, responses[1].Result, 0)
	require.Equal(map[string]any{"k": []any{float64(1)}}, responses[2].Result)
	require.Equal(
		[]any{float64(1), float64(2), "three", map[string]any{"k": []any{float64(1)}}},
		responses[3].Result,
	)

	require.Equal(6, responses[4].ID)
	require.Equal(session.KindUsage, responses[4].ErrorKind)
	require.Equal("bogus", responses[5].Op)
	require.Equal(session.KindUsage, responses[5].ErrorKind)
}

func TestInterpreterInvalidInput(t *testing.T) {
	require := require.New(t)

	responses := readResponses(t, runInterpreter(t, "append 'open\nextend {bad\n"))
	require.Len(responses, 2)
	require.NotEmpty(responses[0].Error)
	require.NotEmpty(responses[1].Error)
	require.Equal("extend", responses[1].Op)
}

func TestInterpreterQuotedString(t *testing.T) {
	require := require.New(t)

	responses := readResponses(t, runInterpreter(t, "append 3\nappend '\"3\"'\nvalues\n"))
	require.Len(responses, 3)
	require.Equal([]any{float64(3), "3"}, responses[2].Result)
}

func TestInterpreterHelp(t *testing.T) {
	out := runInterpreter(t, "help\n")
	require.Equal(t, session.Usage(), out.String())
}

func TestValidateLine(t *testing.T) {
	require := require.New(t)

	require.NoError(validateLine(""))
	require.NoError(validateLine("help"))
	require.NoError(validateLine("insert_after 'a b'"))
	require.ErrorIs(validateLine("bogus 1"), session.ErrUnknownOp)
	require.Error(validateLine("append 'open"))
}
