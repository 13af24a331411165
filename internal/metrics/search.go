package metrics

import (
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "search",
		Name:      "attempts_total",
		Help:      "Count of candidate hashes computed.",
	}, []string{"network"})

	searchHashrate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fortuna",
		Subsystem: "search",
		Name:      "hashes_per_second",
		Help:      "Hash rate over the last reporting window.",
	}, []string{"network"})
)

// Search tracks hash loop throughput.
type Search struct {
	network model.Network
}

// NewSearch constructs a Search collector.
func NewSearch(network model.Network) *Search {
	if network == "" {
		network = "unknown"
	}
	return &Search{network: network}
}

// ObserveHashrate records one reporting window.
func (m Search) ObserveHashrate(attempts uint64, elapsed time.Duration) {
	searchAttemptsTotal.WithLabelValues(string(m.network)).Add(float64(attempts))
	if elapsed > 0 {
		searchHashrate.WithLabelValues(string(m.network)).Set(float64(attempts) / elapsed.Seconds())
	}
}
