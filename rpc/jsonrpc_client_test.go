// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/seqlist/list"
	"github.com/ava-labs/seqlist/registry"
	"github.com/ava-labs/seqlist/trace"
)

func newTestClient(t *testing.T) *JSONRPCClient {
	r, err := registry.New(
		registry.DefaultConfig(),
		trace.Noop("rpc"),
		nil,
		nil,
		prometheus.NewRegistry(),
	)
	require.NoError(t, err)

	handler, err := NewJSONRPCHandler(Name, NewJSONRPCServer(r, nil))
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.Handle(JSONRPCEndpoint, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewJSONRPCClient(srv.URL + "/")
}

func TestClientSequence(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t)

	ok, err := cli.Ping(ctx)
	require.NoError(err)
	require.True(ok)

	require.NoError(cli.Create(ctx, "s", []any{1, 2, 3}))
	require.ErrorIs(cli.Create(ctx, "s", nil), registry.ErrSequenceExists)

	names, err := cli.Names(ctx)
	require.NoError(err)
	require.Equal([]string{"s"}, names)

	n, err := cli.Append(ctx, "s", "four")
	require.NoError(err)
	require.Equal(4, n)
	n, err = cli.Prepend(ctx, "s", 0)
	require.NoError(err)
	require.Equal(5, n)
	n, err = cli.Extend(ctx, "s", []any{true, nil})
	require.NoError(err)
	require.Equal(7, n)
	n, err = cli.Insert(ctx, "s", 1, []any{map[string]any{"k": "v"}})
	require.NoError(err)
	require.Equal(8, n)

	values, err := cli.Values(ctx, "s")
	require.NoError(err)
	require.Equal([]any{
		float64(0),
		map[string]any{"k": "v"},
		float64(1),
		float64(2),
		float64(3),
		"four",
		true,
		nil,
	}, values)

	v, err := cli.Last(ctx, "s")
	require.NoError(err)
	require.Nil(v)

	v, err = cli.Get(ctx, "s", -3)
	require.NoError(err)
	require.Equal("four", v)

	require.NoError(cli.Set(ctx, "s", 0, "zero"))
	v, err = cli.Delete(ctx, "s", 0)
	require.NoError(err)
	require.Equal("zero", v)

	n, err = cli.Len(ctx, "s")
	require.NoError(err)
	require.Equal(7, n)

	require.NoError(cli.Drop(ctx, "s"))
	_, err = cli.Len(ctx, "s")
	require.ErrorIs(err, registry.ErrSequenceNotFound)
}

func TestClientErrors(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t)

	require.NoError(cli.Create(ctx, "empty", nil))
	require.NoError(cli.Create(ctx, "s", []any{1}))

	_, err := cli.Last(ctx, "empty")
	require.ErrorIs(err, list.ErrEmptySequence)
	_, err = cli.Get(ctx, "s", 1)
	require.ErrorIs(err, list.ErrOutOfRange)
	_, err = cli.Insert(ctx, "s", -3, []any{0})
	require.ErrorIs(err, list.ErrOutOfRange)
	require.ErrorIs(cli.Create(ctx, "", nil), registry.ErrInvalidName)
	_, err = cli.Next(ctx, ids.GenerateTestID())
	require.ErrorIs(err, registry.ErrCursorNotFound)
}

func TestClientCursor(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	cli := newTestClient(t)

	require.NoError(cli.Create(ctx, "s", []any{1, 2, 3, 4, 5}))

	index := 2
	id, err := cli.OpenCursor(ctx, "s", &index)
	require.NoError(err)
	v, err := cli.Value(ctx, id)
	require.NoError(err)
	require.Equal(float64(3), v)

	n, err := cli.InsertAfter(ctx, id, 99)
	require.NoError(err)
	require.Equal(6, n)

	v, err = cli.Next(ctx, id)
	require.NoError(err)
	require.Equal(float64(4), v)

	v, err = cli.DeleteCurrent(ctx, id)
	require.NoError(err)
	require.Equal(float64(4), v)
	_, err = cli.Value(ctx, id)
	require.ErrorIs(err, list.ErrNoElement)

	v, err = cli.Next(ctx, id)
	require.NoError(err)
	require.Equal(float64(5), v)

	ok, err := cli.HasNext(ctx, id)
	require.NoError(err)
	require.False(ok)
	_, err = cli.Next(ctx, id)
	require.ErrorIs(err, list.ErrEndOfSequence)

	ok, err = cli.HasPrev(ctx, id)
	require.NoError(err)
	require.True(ok)
	v, err = cli.Prev(ctx, id)
	require.NoError(err)
	require.Equal(float64(99), v)

	values, err := cli.Values(ctx, "s")
	require.NoError(err)
	require.Equal([]any{float64(1), float64(2), float64(3), float64(99), float64(5)}, values)

	require.NoError(cli.CloseCursor(ctx, id))
	require.ErrorIs(cli.CloseCursor(ctx, id), registry.ErrCursorNotFound)

	first, err := cli.OpenCursor(ctx, "s", nil)
	require.NoError(err)
	v, err = cli.Next(ctx, first)
	require.NoError(err)
	require.Equal(float64(1), v)
}
