// Package search runs the proof-of-work hash loop over an encoded candidate.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/candidate"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
	"github.com/goodnatureofminers/fortuna-miner/pkg/workerpool"
)

const (
	// DefaultStride is the number of attempts between cancellation checks.
	DefaultStride = 4096
	// DefaultWorkers is the number of parallel hash loops.
	DefaultWorkers = 1
)

// Config tunes the hash loop.
type Config struct {
	Workers int
	Stride  int
}

// Solution is a nonce whose candidate hash beats the target.
type Solution struct {
	Nonce      candidate.Nonce
	Hash       chainhash.Hash
	Difficulty difficulty.Difficulty
	// Attempts counts the hashes computed by all workers of the run so far.
	Attempts uint64
}

// Engine starts searches with a fixed worker layout.
type Engine struct {
	workers int
	stride  int
	meter   *Meter
	nonce   func() (candidate.Nonce, error)
}

// NewEngine builds an Engine. A nil meter disables throughput accounting.
func NewEngine(cfg Config, meter *Meter) (*Engine, error) {
	if cfg.Workers < 0 || cfg.Stride < 0 {
		return nil, fmt.Errorf("invalid search config: workers %d, stride %d", cfg.Workers, cfg.Stride)
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Stride == 0 {
		cfg.Stride = DefaultStride
	}
	if meter == nil {
		meter = NewMeter()
	}
	return &Engine{
		workers: cfg.Workers,
		stride:  cfg.Stride,
		meter:   meter,
		nonce:   candidate.RandomNonce,
	}, nil
}

// Start prepares a run over encoded. Each worker owns a private copy of the encoding
// seeded with an independently drawn nonce.
func (e *Engine) Start(encoded []byte, target difficulty.Difficulty) (*Run, error) {
	run := &Run{workers: make([]*worker, 0, e.workers)}
	for i := 0; i < e.workers; i++ {
		nonce, err := e.nonce()
		if err != nil {
			return nil, err
		}
		buf := append([]byte(nil), encoded...)
		if err := candidate.RemutateNonce(buf, nonce); err != nil {
			return nil, err
		}
		run.workers = append(run.workers, &worker{
			buf:      buf,
			nonce:    nonce,
			target:   target,
			stride:   e.stride,
			meter:    e.meter,
			attempts: &run.attempts,
		})
	}
	return run, nil
}

// Run is a resumable search over one candidate and target. Workers keep their position
// across Search calls so a search interrupted by a poll deadline continues where it stopped.
type Run struct {
	workers  []*worker
	attempts atomic.Uint64
}

// Search hashes until a worker finds a solution or ctx is done. On cancellation it
// returns ctx.Err() and no solution. At most one solution is returned per call even
// when several workers succeed concurrently.
func (r *Run) Search(ctx context.Context) (Solution, error) {
	solution, err := workerpool.First(ctx, r.workers, func(ctx context.Context, w *worker) (Solution, bool, error) {
		s, found := w.search(ctx)
		return s, found, nil
	})
	if err != nil {
		if errors.Is(err, workerpool.ErrNoResult) {
			return Solution{}, context.Canceled
		}
		return Solution{}, err
	}
	solution.Attempts = r.attempts.Load()
	return solution, nil
}

// Attempts returns the number of hashes computed by the run.
func (r *Run) Attempts() uint64 {
	return r.attempts.Load()
}

// Score hashes an encoding the way the validator does.
func Score(encoded []byte) (chainhash.Hash, difficulty.Difficulty) {
	hash := chainhash.DoubleHashH(encoded)
	return hash, difficulty.Of(hash)
}
