// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/ava-labs/seqlist/cmd/seqsim/session"
)

type Plan struct {
	// The name of the plan.
	Name string `json:"name" yaml:"name"`
	// A description of the plan.
	Description string `json:"description" yaml:"description"`
	// Values the sequence holds before the first step.
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`
	// Steps to perform during simulation.
	Steps []Step `json:"steps" yaml:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// The operation to run. (required)
	Op string `json:"op" yaml:"op"`
	// Arguments passed to the operation.
	Args []any `json:"args,omitempty" yaml:"args,omitempty"`
	// Define required assertions against this step.
	Require *Require `json:"require,omitempty" yaml:"require,omitempty"`
}

type Require struct {
	// The result the step must produce.
	Result any `json:"result,omitempty" yaml:"result,omitempty"`
	// The step must produce a nil result, e.g. reading an element that
	// holds nil.
	ResultNil bool `json:"resultNil,omitempty" yaml:"resultNil,omitempty"`
	// The values the sequence must hold after the step.
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`
	// The length of the sequence after the step.
	Len *int `json:"len,omitempty" yaml:"len,omitempty"`
	// The error kind the step must fail with. If empty the step must succeed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func unmarshalPlan(b []byte) (*Plan, error) {
	var p Plan
	switch {
	case isJSON(b):
		if err := json.Unmarshal(b, &p); err != nil {
			return nil, err
		}
	case isYAML(b):
		if err := yaml.Unmarshal(b, &p); err != nil {
			return nil, err
		}
	default:
		return nil, ErrInvalidConfigFormat
	}
	p.normalize()
	return &p, nil
}

// normalize rewrites YAML maps into JSON encodable ones.
func (p *Plan) normalize() {
	for i, v := range p.Values {
		p.Values[i] = session.Normalize(v)
	}
	for i := range p.Steps {
		step := &p.Steps[i]
		for j, v := range step.Args {
			step.Args[j] = session.Normalize(v)
		}
		if step.Require == nil {
			continue
		}
		step.Require.Result = session.Normalize(step.Require.Result)
		for j, v := range step.Require.Values {
			step.Require.Values[j] = session.Normalize(v)
		}
	}
}

func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %s: no steps found", ErrInvalidPlan, p.Name)
	}
	for i, step := range p.Steps {
		if !session.IsOp(step.Op) {
			return fmt.Errorf("%w %d: unknown op %q", ErrInvalidStep, i, step.Op)
		}
	}
	return nil
}

// check returns a description of every way [result], [err] and the sequence
// contents [values] break the requirements of [r].
func (r *Require) check(result any, err error, values []any) []string {
	var failures []string
	kind := session.ErrorKind(err)
	switch {
	case len(r.Error) > 0 && kind != r.Error:
		failures = append(failures, fmt.Sprintf("expected error %q, got %q (%v)", r.Error, kind, err))
	case len(r.Error) == 0 && err != nil:
		failures = append(failures, fmt.Sprintf("unexpected error: %v", err))
	}
	if r.Result != nil && !equalJSON(r.Result, result) {
		failures = append(failures, fmt.Sprintf("expected result %v, got %v", r.Result, result))
	}
	if r.ResultNil && result != nil {
		failures = append(failures, fmt.Sprintf("expected nil result, got %v", result))
	}
	if r.Values != nil && !equalJSON(r.Values, values) {
		failures = append(failures, fmt.Sprintf("expected values %v, got %v", r.Values, values))
	}
	if r.Len != nil && *r.Len != len(values) {
		failures = append(failures, fmt.Sprintf("expected len %d, got %d", *r.Len, len(values)))
	}
	return failures
}

// equalJSON compares values by their JSON encoding, so 3 and 3.0 are equal.
func equalJSON(expected any, actual any) bool {
	e, err := json.Marshal(expected)
	if err != nil {
		return false
	}
	a, err := json.Marshal(actual)
	if err != nil {
		return false
	}
	return bytes.Equal(e, a)
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}
