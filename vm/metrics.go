// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/registryvm/chain"
)

type metrics struct {
	txsAccepted prometheus.Counter
	txsRejected *prometheus.CounterVec
	events      *prometheus.CounterVec
	execTime    prometheus.Histogram
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Name,
			Name:      "txs_accepted",
			Help:      "Number of committed transactions",
		}),
		txsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Name,
			Name:      "txs_rejected",
			Help:      "Number of rejected transactions by error kind",
		}, []string{"kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Name,
			Name:      "events",
			Help:      "Number of emitted events by type",
		}, []string{"type"}),
		execTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Name,
			Name:      "tx_exec_seconds",
			Help:      "Time spent executing committed transactions",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsAccepted),
		r.Register(m.txsRejected),
		r.Register(m.events),
		r.Register(m.execTime),
	)
	return m, errs.Err
}

func (m *metrics) accepted(d time.Duration) {
	m.txsAccepted.Inc()
	m.execTime.Observe(d.Seconds())
}

func (m *metrics) rejected(err error) {
	m.txsRejected.WithLabelValues(chain.Kind(err)).Inc()
}

func (m *metrics) event(typ string) {
	m.events.WithLabelValues(typ).Inc()
}
