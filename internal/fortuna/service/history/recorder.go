// Package history keeps a ClickHouse record of the chain states the miner observes.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/pkg/batcher"
	"go.uber.org/zap"
)

// Recorder batches observed chain states into the repository.
type Recorder struct {
	logger  *zap.Logger
	network model.Network
	metrics Metrics
	batcher *batcher.Batcher[model.ChainState]
}

// NewRecorder builds a Recorder. Start must be called before Record.
func NewRecorder(repo Repository, metrics Metrics, network model.Network, logger *zap.Logger) (*Recorder, error) {
	if repo == nil {
		return nil, errors.New("history repository is required")
	}
	if metrics == nil {
		return nil, errors.New("history metrics is required")
	}
	logger = logger.Named("history").With(zap.String("network", string(network)))

	flush := func(ctx context.Context, states []model.ChainState) error {
		started := time.Now()
		err := repo.InsertChainStates(ctx, network, states)
		metrics.ObserveFlush(err, len(states), started)
		return err
	}

	return &Recorder{
		logger:  logger,
		network: network,
		metrics: metrics,
		batcher: batcher.New(logger.Named("batcher"), flush, recorderFlushSize, recorderFlushInterval, recorderRPS),
	}, nil
}

// Start launches the background flush loop.
func (r *Recorder) Start(ctx context.Context) {
	r.batcher.Start(ctx)
}

// Stop flushes queued states and stops the flush loop.
func (r *Recorder) Stop() {
	r.batcher.Stop()
}

// Record queues a chain state for the history store.
func (r *Recorder) Record(ctx context.Context, state model.ChainState) error {
	err := r.batcher.Add(ctx, state)
	r.metrics.ObserveRecord(err)
	if err != nil {
		r.logger.Warn("chain state not recorded", zap.Uint64("block_number", state.BlockNumber), zap.Error(err))
	}
	return err
}
