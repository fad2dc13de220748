// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const subsystem = "storage"

// Metrics mirrors the usage counter of one or more stores into prometheus.
type Metrics struct {
	gasConsumed *prometheus.CounterVec
	operations  *prometheus.CounterVec
	charges     *prometheus.HistogramVec
}

// NewMetrics registers the storage gas collectors with reg. A nil reg registers
// nothing, which is convenient in tests that only read the collectors directly.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gasConsumed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "gas_consumed_total",
			Help:      "Gas charged for storage operations",
		}, []string{"operation"}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Number of charged storage operations",
		}, []string{"operation"}),
		charges: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "gas_charge",
			Help:      "Gas charged per storage operation",
			Buckets:   prometheus.ExponentialBuckets(32, 2, 12),
		}, []string{"operation"}),
	}
}

func (m *Metrics) observe(op Operation, amount uint64) {
	label := op.String()
	m.gasConsumed.WithLabelValues(label).Add(float64(amount))
	m.operations.WithLabelValues(label).Inc()
	m.charges.WithLabelValues(label).Observe(float64(amount))
}
