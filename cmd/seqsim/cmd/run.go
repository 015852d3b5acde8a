// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/akamensky/argparse"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/neilotoole/errgroup"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/ava-labs/seqlist/cmd/seqsim/session"
	"github.com/ava-labs/seqlist/utils"
)

var _ Cmd = (*runCmd)(nil)

type runCmd struct {
	cmd *argparse.Command

	plans       *[]string
	parallel    *int
	metricsFile *string

	stdin  io.Reader
	stdout io.Writer
}

func (c *runCmd) New(parser *argparse.Parser) {
	c.cmd = parser.NewCommand("run", "Run sequence simulation plans")
	c.plans = c.cmd.StringList("p", "plan", &argparse.Options{
		Required: true,
		Help:     "path of a YAML or JSON plan, - reads the plan from stdin",
	})
	c.parallel = c.cmd.Int("", "parallel", &argparse.Options{
		Default: 4,
		Help:    "number of plans run at once",
	})
	c.metricsFile = c.cmd.String("", "metrics-file", &argparse.Options{
		Help: "write run counters to this file in the prometheus text format",
	})
	c.stdin = os.Stdin
	c.stdout = os.Stdout
}

func (c *runCmd) Run(ctx context.Context, log logging.Logger) error {
	plans := make([]*Plan, 0, len(*c.plans))
	for _, path := range *c.plans {
		plan, err := c.load(path)
		if err != nil {
			return fmt.Errorf("%w: %s", err, path)
		}
		plans = append(plans, plan)
	}

	reg := prometheus.NewRegistry()
	r, err := newRunner(log, c.stdout, reg)
	if err != nil {
		return err
	}
	runErr := r.runAll(ctx, plans, *c.parallel)

	if len(*c.metricsFile) > 0 {
		if err := prometheus.WriteToTextfile(*c.metricsFile, reg); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if failed := r.failures.Load(); failed > 0 {
		return fmt.Errorf("%w: %d steps", ErrAssertionFailed, failed)
	}
	utils.Outf("{{green}}ran %d plans{{/}}\n", len(plans))
	return nil
}

func (c *runCmd) Happened() bool {
	return c.cmd.Happened()
}

func (c *runCmd) load(path string) (*Plan, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(c.stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	plan, err := unmarshalPlan(b)
	if err != nil {
		return nil, err
	}
	if len(plan.Name) == 0 {
		plan.Name = path
	}
	return plan, plan.Verify()
}

// runner runs plans against their own sessions and writes the responses of
// each plan to [out] in one piece.
type runner struct {
	log     logging.Logger
	metrics *runMetrics

	failures *atomic.Uint64

	outLock sync.Mutex
	out     io.Writer
}

func newRunner(log logging.Logger, out io.Writer, reg prometheus.Registerer) (*runner, error) {
	m, err := newRunMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &runner{
		log:      log,
		metrics:  m,
		failures: atomic.NewUint64(0),
		out:      out,
	}, nil
}

func (r *runner) runAll(ctx context.Context, plans []*Plan, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}
	g, gctx := errgroup.WithContextN(ctx, parallel, 0)
	for _, plan := range plans {
		g.Go(func() error {
			return r.runPlan(gctx, plan)
		})
	}
	return g.Wait()
}

func (r *runner) runPlan(ctx context.Context, plan *Plan) error {
	r.log.Info("simulation",
		zap.String("plan", plan.Name),
		zap.String("description", plan.Description),
	)
	r.metrics.plans.Inc()

	s := session.New(plan.Values...)
	var out bytes.Buffer
	for i, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.log.Debug("simulation",
			zap.String("plan", plan.Name),
			zap.Int("step", i),
			zap.String("description", step.Description),
			zap.String("op", step.Op),
			zap.Any("args", step.Args),
		)

		result, err := s.Do(session.Op(step.Op), step.Args)
		r.metrics.steps.WithLabelValues(step.Op).Inc()
		if err != nil {
			r.metrics.errors.WithLabelValues(session.ErrorKind(err)).Inc()
		}

		resp := newResponse(i, plan.Name, step.Op)
		resp.setResult(result, err)
		if step.Require != nil {
			resp.Failures = step.Require.check(result, err, s.Sequence().Values())
		}
		if len(resp.Failures) > 0 {
			r.failures.Inc()
			r.metrics.failures.Inc()
			r.log.Warn("step requirements not met",
				zap.String("plan", plan.Name),
				zap.Int("step", i),
				zap.Strings("failures", resp.Failures),
			)
		}
		if err := resp.Print(&out); err != nil {
			return err
		}
	}

	r.outLock.Lock()
	defer r.outLock.Unlock()

	_, err := out.WriteTo(r.out)
	return err
}
