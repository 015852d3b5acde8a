// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package list

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// checkBounds validates the raw index [i] against [size] before any negative
// index is resolved.
func checkBounds(i int, size int) error {
	switch {
	case size == 0:
		return fmt.Errorf("%w: index %d", ErrEmptySequence, i)
	case i >= 0 && i >= size:
		return fmt.Errorf("%w: index %d for length %d", ErrOutOfRange, i, size)
	case i < 0 && -i > size:
		return fmt.Errorf("%w: negative index %d for length %d", ErrOutOfRange, i, size)
	}
	return nil
}

// normalize converts a negative index into its position counted from the
// front.
func normalize(i int, size int) int {
	if i < 0 {
		return size + i
	}
	return i
}

// ParseIndex converts an untyped index (as decoded from JSON, YAML or a
// command line) into an int.
//
// Integral floats are accepted because JSON numbers decode to float64.
func ParseIndex(v any) (int, error) {
	switch i := v.(type) {
	case int:
		return i, nil
	case int8:
		return int(i), nil
	case int16:
		return int(i), nil
	case int32:
		return int(i), nil
	case int64:
		return intFromInt64(i)
	case uint:
		return intFromUint64(uint64(i))
	case uint8:
		return int(i), nil
	case uint16:
		return int(i), nil
	case uint32:
		return intFromUint64(uint64(i))
	case uint64:
		return intFromUint64(i)
	case float32:
		return intFromFloat(float64(i))
	case float64:
		return intFromFloat(i)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(i), 10, 0)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, i)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %v (%T)", ErrInvalidIndex, v, v)
	}
}

func intFromInt64(i int64) (int, error) {
	if int64(int(i)) != i {
		return 0, fmt.Errorf("%w: %d overflows int", ErrInvalidIndex, i)
	}
	return int(i), nil
}

func intFromUint64(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, fmt.Errorf("%w: %d overflows int", ErrInvalidIndex, u)
	}
	return int(u), nil
}

func intFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Floor(f) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIndex, f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v overflows int", ErrInvalidIndex, f)
	}
	return intFromInt64(int64(f))
}
