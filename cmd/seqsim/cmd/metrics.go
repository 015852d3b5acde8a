// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type runMetrics struct {
	plans    prometheus.Counter
	steps    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	failures prometheus.Counter
}

func newRunMetrics(r prometheus.Registerer) (*runMetrics, error) {
	m := &runMetrics{
		plans: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seqsim",
			Name:      "plans",
			Help:      "number of plans run",
		}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqsim",
			Name:      "steps",
			Help:      "number of steps run by operation",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqsim",
			Name:      "step_errors",
			Help:      "number of steps that returned an error by kind",
		}, []string{"kind"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "seqsim",
			Name:      "assertion_failures",
			Help:      "number of steps that did not meet their requirements",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.plans),
		r.Register(m.steps),
		r.Register(m.errors),
		r.Register(m.failures),
	)
	return m, errs.Err
}
