// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "registry"

type metrics struct {
	sequences prometheus.Gauge
	cursors   prometheus.Gauge
	expired   prometheus.Counter

	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec

	opLatency metric.Averager
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	opLatency, err := metric.NewAverager(
		namespace+"_op_latency",
		"time spent (ns) holding a sequence lock per operation",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		sequences: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sequences",
			Help:      "number of named sequences",
		}),
		cursors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cursors",
			Help:      "number of open cursors",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cursors_expired",
			Help:      "number of cursors closed because their lease lapsed",
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations",
			Help:      "number of operations by name",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures",
			Help:      "number of failed operations by name",
		}, []string{"op"}),
		opLatency: opLatency,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.sequences),
		r.Register(m.cursors),
		r.Register(m.expired),
		r.Register(m.operations),
		r.Register(m.failures),
	)
	return m, errs.Err
}

func (m *metrics) record(op string, start time.Time, err error) {
	m.operations.WithLabelValues(op).Inc()
	if err != nil {
		m.failures.WithLabelValues(op).Inc()
	}
	m.opLatency.Observe(float64(time.Since(start)))
}
