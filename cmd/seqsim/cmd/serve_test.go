// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/seqlist/config"
	"github.com/ava-labs/seqlist/rpc"
)

func TestServe(t *testing.T) {
	require := require.New(t)

	cfg := config.NewDefault()
	cfg.HTTPPort = 0
	cfg.LogLevel = "off"
	cfg.LogDisplayLevel = "off"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrs := make(chan net.Addr, 1)
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, func(addr net.Addr) {
			addrs <- addr
		})
	}()

	var addr net.Addr
	select {
	case addr = <-addrs:
	case err := <-done:
		require.FailNow("server stopped", err)
	}
	uri := fmt.Sprintf("http://%s%s", addr, cfg.BaseURL)

	cli := rpc.NewJSONRPCClient(uri + "/" + seqBase)
	ok, err := cli.Ping(ctx)
	require.NoError(err)
	require.True(ok)

	require.NoError(cli.Create(ctx, "s", []any{"a"}))
	n, err := cli.Append(ctx, "s", "b")
	require.NoError(err)
	require.Equal(2, n)
	values, err := cli.Values(ctx, "s")
	require.NoError(err)
	require.Equal([]any{"a", "b"}, values)

	resp, err := http.Get(uri + "/" + metricsBase)
	require.NoError(err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(resp.Body.Close())
	require.NoError(err)
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Contains(string(b), "registry_sequences 1")

	cancel()
	require.NoError(<-done)
}
