package metrics

import (
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	historyRecordTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "history",
		Name:      "record_total",
		Help:      "Count of chain states queued for the history store.",
	}, []string{"network", "status"})

	historyFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "history",
		Name:      "flush_total",
		Help:      "Count of history batches written.",
	}, []string{"network", "status"})

	historyFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortuna",
		Subsystem: "history",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing a history batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	historyFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortuna",
		Subsystem: "history",
		Name:      "flush_size",
		Help:      "Number of chain states written per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})
)

// History tracks metrics for the chain state history pipeline.
type History struct {
	network model.Network
}

// NewHistory constructs a History collector.
func NewHistory(network model.Network) *History {
	if network == "" {
		network = "unknown"
	}
	return &History{network: network}
}

// ObserveRecord records a chain state handed to the batcher.
func (m History) ObserveRecord(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	historyRecordTotal.WithLabelValues(string(m.network), status).Inc()
}

// ObserveFlush records a written batch.
func (m History) ObserveFlush(err error, size int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	historyFlushTotal.WithLabelValues(string(m.network), status).Inc()
	historyFlushDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	historyFlushSize.WithLabelValues(string(m.network)).Observe(float64(size))
}
