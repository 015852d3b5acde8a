// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/seqlist/config"
	"github.com/ava-labs/seqlist/registry"
	"github.com/ava-labs/seqlist/rpc"
	"github.com/ava-labs/seqlist/server"
	"github.com/ava-labs/seqlist/trace"
	"github.com/ava-labs/seqlist/utils"

	ilogging "github.com/ava-labs/seqlist/internal/logging"
)

const (
	seqBase     = "seq"
	metricsBase = "metrics"
)

var _ Cmd = (*serveCmd)(nil)

type serveCmd struct {
	cmd *argparse.Command

	configPath *string
}

func (c *serveCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand("serve", "Serve named sequences over JSON-RPC")
	c.configPath = c.cmd.String("c", "config", &argparse.Options{
		Help: "path of a YAML or JSON server config",
	})
}

func (c *serveCmd) Run(ctx context.Context, log logging.Logger) error {
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return err
	}
	log.Info("starting server",
		zap.String("config", *c.configPath),
		zap.String("address", cfg.ListenAddress()),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, func(addr net.Addr) {
		utils.Outf("{{green}}listening on:{{/}} http://%s%s/%s%s\n", addr, cfg.BaseURL, seqBase, rpc.JSONRPCEndpoint)
	})
}

func (c *serveCmd) Happened() bool {
	return c.cmd.Happened()
}

// serve runs the sequence server described by [cfg] until [ctx] is done.
// [ready] is called once the listener is bound.
func serve(ctx context.Context, cfg *config.Config, ready func(net.Addr)) error {
	logConfig, err := cfg.LoggingConfig()
	if err != nil {
		return err
	}
	logFactory := ilogging.NewFactory(logConfig)
	defer logFactory.Close()

	log, err := logFactory.Make("server")
	if err != nil {
		return err
	}

	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(collectors.NewGoCollector()),
		reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
	)
	if errs.Errored() {
		return errs.Err
	}

	r, err := registry.New(cfg.Registry, tracer, log, nil, reg)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.ListenAddress())
	if err != nil {
		return err
	}
	srv, err := server.New(
		cfg.BaseURL,
		log,
		listener,
		cfg.HTTP,
		cfg.AllowedOrigins,
		cfg.AllowedHosts,
		cfg.ShutdownTimeout,
		server.NewRequestLogger(log),
	)
	if err != nil {
		_ = listener.Close()
		return err
	}

	handler, err := rpc.NewJSONRPCHandler(rpc.Name, rpc.NewJSONRPCServer(r, log))
	if err != nil {
		_ = listener.Close()
		return err
	}
	errs.Add(
		srv.AddRoute(handler, seqBase, rpc.JSONRPCEndpoint),
		srv.AddRoute(server.NewMetricsHandler(reg), metricsBase, ""),
	)
	if errs.Errored() {
		_ = listener.Close()
		return errs.Err
	}

	if ready != nil {
		ready(srv.Addr())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Dispatch)
	g.Go(func() error {
		expireCursors(gctx, log, r, cfg.Registry.CursorTTL, cfg.ExpiryInterval)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		errs := wrappers.Errs{}
		errs.Add(
			srv.Shutdown(),
			tracer.Close(),
		)
		return errs.Err
	})
	return g.Wait()
}

// expireCursors collects lapsed cursor leases every [interval] until [ctx]
// is done.
func expireCursors(
	ctx context.Context,
	log logging.Logger,
	r *registry.Registry,
	ttl time.Duration,
	interval time.Duration,
) {
	if ttl == 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			if expired := r.Expire(ctx); len(expired) > 0 {
				log.Info("expired idle cursors",
					zap.Int("count", len(expired)),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}
