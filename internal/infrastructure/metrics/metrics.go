package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommissionMetrics covers the blocking policy sweeps.
type CommissionMetrics struct {
	StoresBlockedTotal   prometheus.Counter
	StoresUnblockedTotal prometheus.Counter
	BlockWarningsTotal   prometheus.Counter
	SweepErrorsTotal     prometheus.CounterVec
	SweepDuration        prometheus.HistogramVec
	PendingStoresGauge   prometheus.Gauge
}

func NewCommissionMetrics() *CommissionMetrics {
	return &CommissionMetrics{
		StoresBlockedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commission_stores_blocked_total",
				Help: "Stores blocked for overdue commission",
			},
		),

		StoresUnblockedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commission_stores_unblocked_total",
				Help: "Blocked stores released after clearing pending commission",
			},
		),

		BlockWarningsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commission_block_warnings_total",
				Help: "Approaching-block warnings sent to admins",
			},
		),

		SweepErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_sweep_errors_total",
				Help: "Per-store failures during policy sweeps",
			},
			[]string{"sweep"},
		),

		SweepDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "commission_sweep_duration_seconds",
				Help:    "Duration of policy sweep runs",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"sweep"},
		),

		PendingStoresGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "commission_pending_stores",
				Help: "Stores with at least one commission-unpaid finalized order",
			},
		),
	}
}

func (m *CommissionMetrics) RecordStoreBlocked() {
	m.StoresBlockedTotal.Inc()
}

func (m *CommissionMetrics) RecordStoreUnblocked() {
	m.StoresUnblockedTotal.Inc()
}

func (m *CommissionMetrics) RecordBlockWarning() {
	m.BlockWarningsTotal.Inc()
}

func (m *CommissionMetrics) RecordSweepError(sweep string) {
	m.SweepErrorsTotal.WithLabelValues(sweep).Inc()
}

func (m *CommissionMetrics) RecordSweepDuration(sweep string, seconds float64) {
	m.SweepDuration.WithLabelValues(sweep).Observe(seconds)
}

func (m *CommissionMetrics) RecordPendingStores(count int) {
	m.PendingStoresGauge.Set(float64(count))
}
