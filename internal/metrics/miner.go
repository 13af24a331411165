package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerFetchHeadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "fetch_head_total",
		Help:      "Count of chain head fetches.",
	}, []string{"network", "status"})

	minerFetchHeadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "fetch_head_duration_seconds",
		Help:      "Duration of chain head fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	minerSubmitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "submit_total",
		Help:      "Count of next block submissions by outcome.",
	}, []string{"network", "status"})

	minerSubmitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "submit_duration_seconds",
		Help:      "Duration of next block submissions.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	minerFoundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "found_total",
		Help:      "Count of winning nonces found.",
	}, []string{"network"})

	minerSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "search_duration_seconds",
		Help:      "Wall time from candidate construction to a winning nonce.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
	}, []string{"network"})

	minerStaleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "stale_total",
		Help:      "Count of searches abandoned because the chain head changed.",
	}, []string{"network"})

	minerEncodingErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "encoding_errors_total",
		Help:      "Count of candidates or records dropped for malformed fields.",
	}, []string{"network"})

	minerHeadBlockNumber = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "head_block_number",
		Help:      "Block number of the last observed chain state.",
	}, []string{"network"})

	minerHeadLeadingZeros = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "head_leading_zeros",
		Help:      "Leading zeros of the current target.",
	}, []string{"network"})

	minerHeadDifficultyNumber = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "head_difficulty_number",
		Help:      "Difficulty number of the current target.",
	}, []string{"network"})

	minerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fortuna",
		Subsystem: "miner",
		Name:      "state",
		Help:      "Current state of the mining loop, 1 for the active state.",
	}, []string{"network", "state"})
)

// Miner tracks metrics for the mining loop.
type Miner struct {
	network model.Network
}

// NewMiner constructs a Miner collector.
func NewMiner(network model.Network) *Miner {
	if network == "" {
		network = "unknown"
	}
	return &Miner{network: network}
}

// ObserveFetchHead records a chain head fetch.
func (m Miner) ObserveFetchHead(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	minerFetchHeadTotal.WithLabelValues(string(m.network), status).Inc()
	minerFetchHeadDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveSubmit records a submission, separating rejected from transient failures.
func (m Miner) ObserveSubmit(err error, started time.Time) {
	status := submitStatus(err)
	minerSubmitTotal.WithLabelValues(string(m.network), status).Inc()
	minerSubmitDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveFound records a winning nonce and the time spent finding it.
func (m Miner) ObserveFound(started time.Time) {
	minerFoundTotal.WithLabelValues(string(m.network)).Inc()
	minerSearchDuration.WithLabelValues(string(m.network)).Observe(time.Since(started).Seconds())
}

// ObserveStale records an abandoned search.
func (m Miner) ObserveStale() {
	minerStaleTotal.WithLabelValues(string(m.network)).Inc()
}

// ObserveEncodingError records a dropped candidate or record.
func (m Miner) ObserveEncodingError() {
	minerEncodingErrorsTotal.WithLabelValues(string(m.network)).Inc()
}

// ObserveHead publishes the last observed chain state.
func (m Miner) ObserveHead(state model.ChainState) {
	minerHeadBlockNumber.WithLabelValues(string(m.network)).Set(float64(state.BlockNumber))
	minerHeadLeadingZeros.WithLabelValues(string(m.network)).Set(float64(state.LeadingZeros))
	minerHeadDifficultyNumber.WithLabelValues(string(m.network)).Set(float64(state.DifficultyNumber))
}

// SetState marks state as the active loop state.
func (m Miner) SetState(state string) {
	minerState.DeletePartialMatch(prometheus.Labels{"network": string(m.network)})
	minerState.WithLabelValues(string(m.network), state).Set(1)
}

func submitStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrRejected):
		return "rejected"
	case errors.Is(err, model.ErrTransient):
		return "transient"
	default:
		return "error"
	}
}
