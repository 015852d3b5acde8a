// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name  string
		index int
		size  int
		err   error
	}{
		{"EmptyZero", 0, 0, ErrEmptySequence},
		{"EmptyNegative", -1, 0, ErrEmptySequence},
		{"EmptyLarge", 10, 0, ErrEmptySequence},
		{"First", 0, 3, nil},
		{"Last", 2, 3, nil},
		{"PastEnd", 3, 3, ErrOutOfRange},
		{"NegativeLast", -1, 3, nil},
		{"NegativeFirst", -3, 3, nil},
		{"NegativePastFront", -4, 3, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, checkBounds(tt.index, tt.size), tt.err)
		})
	}
}

func TestNormalize(t *testing.T) {
	require := require.New(t)

	require.Equal(0, normalize(0, 5))
	require.Equal(4, normalize(4, 5))
	require.Equal(4, normalize(-1, 5))
	require.Equal(0, normalize(-5, 5))
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
		err   error
	}{
		{"Int", 3, 3, nil},
		{"NegativeInt", -2, -2, nil},
		{"Int64", int64(7), 7, nil},
		{"Uint8", uint8(9), 9, nil},
		{"IntegralFloat", 4.0, 4, nil},
		{"NegativeIntegralFloat", -1.0, -1, nil},
		{"FractionalFloat", 1.5, 0, ErrInvalidIndex},
		{"NaN", math.NaN(), 0, ErrInvalidIndex},
		{"Inf", math.Inf(1), 0, ErrInvalidIndex},
		{"String", "12", 12, nil},
		{"PaddedString", " -3 ", -3, nil},
		{"WordString", "abc", 0, ErrInvalidIndex},
		{"FloatString", "1.0", 0, ErrInvalidIndex},
		{"Bool", true, 0, ErrInvalidIndex},
		{"Nil", nil, 0, ErrInvalidIndex},
		{"Uint64Overflow", uint64(math.MaxUint64), 0, ErrInvalidIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			got, err := ParseIndex(tt.value)
			require.ErrorIs(err, tt.err)
			require.Equal(tt.want, got)
		})
	}
}
