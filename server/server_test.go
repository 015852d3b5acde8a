// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/seqlist/internal/logging"
)

func newTestServer(t *testing.T, allowedHosts []string) Server {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s, err := New(
		"/ext",
		&logging.Noop{},
		listener,
		DefaultHTTPConfig(),
		[]string{"https://allowed.example"},
		allowedHosts,
		time.Second,
		NewRequestLogger(&logging.Noop{}),
	)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- s.Dispatch()
	}()
	t.Cleanup(func() {
		require.NoError(t, s.Shutdown())
		require.NoError(t, <-done)
	})
	return s
}

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func TestAddRoute(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t, []string{"*"})

	require.NoError(s.AddRoute(okHandler("seq"), "seq", "/seqapi"))
	require.ErrorIs(s.AddRoute(okHandler("again"), "seq", "/seqapi"), ErrDuplicateRoute)

	resp, err := http.Get("http://" + s.Addr().String() + "/ext/seq/seqapi")
	require.NoError(err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Equal("seq", string(body))

	resp, err = http.Get("http://" + s.Addr().String() + "/ext/missing")
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	require := require.New(t)
	s := newTestServer(t, []string{"*"})
	require.NoError(s.AddRoute(okHandler("ok"), "seq", ""))

	req, err := http.NewRequest(http.MethodGet, "http://"+s.Addr().String()+"/ext/seq", nil)
	require.NoError(err)
	req.Header.Set("Origin", "https://allowed.example")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal("https://allowed.example", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://other.example")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Empty(resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestFilterInvalidHosts(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		host    string
		code    int
	}{
		{
			name:    "wildcard",
			allowed: []string{"*"},
			host:    "anything.example",
			code:    http.StatusOK,
		},
		{
			name:    "allowed host with port",
			allowed: []string{"localhost"},
			host:    "LOCALHOST:9650",
			code:    http.StatusOK,
		},
		{
			name:    "ip",
			allowed: []string{"localhost"},
			host:    "127.0.0.1:9650",
			code:    http.StatusOK,
		},
		{
			name:    "unknown host",
			allowed: []string{"localhost"},
			host:    "evil.example",
			code:    http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			handler := filterInvalidHosts(okHandler("ok"), tt.allowed)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tt.host
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			require.Equal(tt.code, w.Code)
		})
	}
}

func TestMetricsHandler(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "counter",
	})
	require.NoError(reg.Register(counter))
	counter.Add(3)

	w := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(http.StatusOK, w.Code)
	require.Contains(w.Body.String(), "test_counter 3")
}
