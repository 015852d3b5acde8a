// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ava-labs/seqlist/cmd/seqsim/session"
)

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The plan the step belongs to.
	Plan string `json:"plan,omitempty"`
	// The operation that ran.
	Op string `json:"op"`
	// The result of the operation.
	Result any `json:"result,omitempty"`
	// The error message if available.
	Error string `json:"error,omitempty"`
	// The kind of the error, if it is a known one.
	ErrorKind string `json:"errorKind,omitempty"`
	// Unmet requirements of the step.
	Failures []string `json:"failures,omitempty"`
}

func newResponse(id int, plan string, op string) *Response {
	return &Response{
		ID:   id,
		Plan: plan,
		Op:   op,
	}
}

func (r *Response) setResult(result any, err error) {
	if err != nil {
		r.Error = err.Error()
		r.ErrorKind = session.ErrorKind(err)
		return
	}
	r.Result = result
}

// Print writes r as one line of JSON.
func (r *Response) Print(w io.Writer) error {
	b, err := json.Marshal(r)
	if err != nil {
		_, err = fmt.Fprintln(w, `{"error": "failed to marshal response"}`)
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
