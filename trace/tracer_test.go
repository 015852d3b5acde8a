// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{Enabled: false, AppName: "seqlist"})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Registry.Append")
	require.False(span.IsRecording())
	span.End()
	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	_, err := New(&Config{Enabled: true, TraceSampleRate: 2})
	require.ErrorIs(err, ErrInvalidSampleRate)

	tracer, err := New(&Config{Enabled: true, TraceSampleRate: 1, AppName: "seqlist"})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Registry.Append")
	require.True(span.IsRecording())
	span.End()
}
