// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a token typed by a user into a value: nil, a bool, an
// int, a float64, a JSON string, record or array, or the token itself.
//
// A JSON string keeps its text as is, so '"3"' stores the string "3".
func ParseValue(token string) (any, error) {
	switch token {
	case "nil", "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if i, err := strconv.Atoi(token); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f, nil
	}
	if strings.HasPrefix(token, `"`) || strings.HasPrefix(token, "{") || strings.HasPrefix(token, "[") {
		var v any
		if err := json.Unmarshal([]byte(token), &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
		return v, nil
	}
	return token, nil
}

// ParseValues converts every token with [ParseValue].
func ParseValues(tokens []string) ([]any, error) {
	values := make([]any, 0, len(tokens))
	for _, token := range tokens {
		v, err := ParseValue(token)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Normalize rewrites the maps produced by YAML decoding so that values can be
// encoded as JSON.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = Normalize(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = Normalize(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = Normalize(e)
		}
		return s
	default:
		return v
	}
}
