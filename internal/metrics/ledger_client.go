package metrics

import (
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortuna",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger backend operations.",
	}, []string{"client", "operation", "network", "status"})
	ledgerClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fortuna",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger backend operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"client", "operation", "network", "status"})
)

// LedgerClient tracks metrics for calls to ledger backends.
type LedgerClient struct {
	client  string
	network model.Network
}

// NewLedgerClient constructs a collector for one backend client.
func NewLedgerClient(client string, network model.Network) *LedgerClient {
	if client == "" {
		client = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &LedgerClient{client: client, network: network}
}

// Observe records a single call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := submitStatus(err)

	ledgerClientRequestsTotal.WithLabelValues(m.client, operation, string(m.network), status).Inc()
	ledgerClientRequestDuration.WithLabelValues(m.client, operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
