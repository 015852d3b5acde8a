// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	ilogging "github.com/ava-labs/seqlist/internal/logging"
)

func newTestRunCmd(plans []string, stdin string) (*runCmd, *bytes.Buffer) {
	parallel := 2
	metricsFile := ""
	out := &bytes.Buffer{}
	return &runCmd{
		plans:       &plans,
		parallel:    &parallel,
		metricsFile: &metricsFile,
		stdin:       strings.NewReader(stdin),
		stdout:      out,
	}, out
}

func readResponses(t *testing.T, out *bytes.Buffer) []Response {
	var responses []Response
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var r Response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		responses = append(responses, r)
	}
	require.NoError(t, scanner.Err())
	return responses
}

func TestRunExamplePlans(t *testing.T) {
	require := require.New(t)

	plans, err := filepath.Glob("../plans/*")
	require.NoError(err)
	require.Len(plans, 3)

	c, out := newTestRunCmd(plans, "")
	metricsFile := filepath.Join(t.TempDir(), "seqsim.prom")
	c.metricsFile = &metricsFile
	require.NoError(c.Run(context.Background(), &ilogging.Noop{}))

	responses := readResponses(t, out)
	require.Len(responses, 36)
	for _, r := range responses {
		require.Empty(r.Failures, "%s step %d", r.Plan, r.ID)
	}

	b, err := os.ReadFile(metricsFile)
	require.NoError(err)
	require.Contains(string(b), "seqsim_plans 3")
	require.Contains(string(b), "seqsim_assertion_failures 0")
	require.Contains(string(b), `seqsim_step_errors{kind="end_of_sequence"} 2`)
}

func TestRunFailedRequirement(t *testing.T) {
	require := require.New(t)

	plan := `
name: wrong
values: [1, 2]
steps:
  - op: get
    args: [0]
    require:
      result: 2
  - op: len
    require:
      result: 2
`
	c, out := newTestRunCmd([]string{"-"}, plan)
	require.ErrorIs(c.Run(context.Background(), &ilogging.Noop{}), ErrAssertionFailed)

	responses := readResponses(t, out)
	require.Len(responses, 2)
	require.Equal("wrong", responses[0].Plan)
	require.Equal("get", responses[0].Op)
	require.InDelta(1, responses[0].Result, 0)
	require.Len(responses[0].Failures, 1)
	require.Empty(responses[1].Failures)
}

func TestRunInvalidPlan(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(os.WriteFile(path, []byte(`{"name": "bad", "steps": [{"op": "push"}]}`), 0o600))

	c, out := newTestRunCmd([]string{path}, "")
	require.ErrorIs(c.Run(context.Background(), &ilogging.Noop{}), ErrInvalidStep)
	require.Zero(out.Len())
}

func TestRunReportsErrorKinds(t *testing.T) {
	require := require.New(t)

	plan := `{"steps": [{"op": "first"}, {"op": "next"}, {"op": "get", "args": ["x"]}]}`
	c, out := newTestRunCmd([]string{"-"}, plan)
	require.NoError(c.Run(context.Background(), &ilogging.Noop{}))

	responses := readResponses(t, out)
	require.Len(responses, 3)
	require.Equal("-", responses[0].Plan)
	require.Equal("empty_sequence", responses[0].ErrorKind)
	require.Equal("usage", responses[1].ErrorKind)
	require.Equal("invalid_index", responses[2].ErrorKind)
}
