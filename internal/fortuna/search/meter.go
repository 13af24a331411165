package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultReportInterval is how often the hashrate is reported.
const DefaultReportInterval = 30 * time.Second

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics receives hashrate windows.
type Metrics interface {
	ObserveHashrate(attempts uint64, elapsed time.Duration)
}

// Meter counts hash attempts for throughput reporting.
type Meter struct {
	attempts atomic.Uint64

	mu      sync.Mutex
	started time.Time
	now     func() time.Time
}

// NewMeter returns a Meter whose first window starts now.
func NewMeter() *Meter {
	return &Meter{started: time.Now(), now: time.Now}
}

// Add records n attempts.
func (m *Meter) Add(n uint64) {
	m.attempts.Add(n)
}

// Window returns the attempts and elapsed time since the previous call and starts a new window.
func (m *Meter) Window() (uint64, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	elapsed := now.Sub(m.started)
	m.started = now
	return m.attempts.Swap(0), elapsed
}

// Reporter logs the hashrate of a Meter on a fixed interval.
type Reporter struct {
	meter    *Meter
	metrics  Metrics
	logger   *zap.Logger
	interval time.Duration
}

// NewReporter builds a Reporter. A zero interval uses DefaultReportInterval.
func NewReporter(meter *Meter, metrics Metrics, logger *zap.Logger, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultReportInterval
	}
	return &Reporter{
		meter:    meter,
		metrics:  metrics,
		logger:   logger.Named("hashrate"),
		interval: interval,
	}
}

// Run reports until ctx is done.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.meter.Window()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.report()
		}
	}
}

func (r *Reporter) report() {
	attempts, elapsed := r.meter.Window()
	if elapsed <= 0 {
		return
	}
	if r.metrics != nil {
		r.metrics.ObserveHashrate(attempts, elapsed)
	}
	r.logger.Info("hashrate",
		zap.Float64("hashes_per_second", float64(attempts)/elapsed.Seconds()),
		zap.Uint64("attempts", attempts),
		zap.Duration("window", elapsed),
	)
}
