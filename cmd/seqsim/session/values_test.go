// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		token string
		value any
		err   error
	}{
		{"nil", nil, nil},
		{"null", nil, nil},
		{"true", true, nil},
		{"false", false, nil},
		{"42", 42, nil},
		{"-7", -7, nil},
		{"2.5", 2.5, nil},
		{`{"a":1}`, map[string]any{"a": float64(1)}, nil},
		{`[1,"b"]`, []any{float64(1), "b"}, nil},
		{`{"a"`, nil, ErrInvalidRecord},
		{`"3"`, "3", nil},
		{`"true"`, "true", nil},
		{`"a b"`, "a b", nil},
		{`"open`, nil, ErrInvalidRecord},
		{"hello", "hello", nil},
		{"", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			require := require.New(t)
			v, err := ParseValue(tt.token)
			require.ErrorIs(err, tt.err)
			if tt.err == nil {
				require.Equal(tt.value, v)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	require := require.New(t)

	values, err := ParseValues([]string{"1", "a", "true"})
	require.NoError(err)
	require.Equal([]any{1, "a", true}, values)

	_, err = ParseValues([]string{"1", "[2"})
	require.ErrorIs(err, ErrInvalidRecord)
}

func TestNormalize(t *testing.T) {
	require := require.New(t)

	in := []any{
		map[interface{}]interface{}{
			"a": map[interface{}]interface{}{1: "one"},
			"b": []any{map[interface{}]interface{}{"c": true}},
		},
		3,
	}
	require.Equal([]any{
		map[string]any{
			"a": map[string]any{"1": "one"},
			"b": []any{map[string]any{"c": true}},
		},
		3,
	}, Normalize(in))
}
