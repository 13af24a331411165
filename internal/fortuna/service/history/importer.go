package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"go.uber.org/zap"
)

// Importer copies a loaded history into the repository in chunks.
type Importer struct {
	logger    *zap.Logger
	repo      Repository
	metrics   Metrics
	network   model.Network
	chunkSize int
}

// NewImporter builds an Importer.
func NewImporter(repo Repository, metrics Metrics, network model.Network, logger *zap.Logger) (*Importer, error) {
	if repo == nil {
		return nil, errors.New("history repository is required")
	}
	if metrics == nil {
		return nil, errors.New("history metrics is required")
	}
	return &Importer{
		logger:    logger.Named("importer").With(zap.String("network", string(network))),
		repo:      repo,
		metrics:   metrics,
		network:   network,
		chunkSize: importChunkSize,
	}, nil
}

// Import writes the states above the stored maximum block number and returns how many were written.
// With force set every state is written again; the table keeps one row per block.
func (i *Importer) Import(ctx context.Context, states []model.ChainState, force bool) (int, error) {
	pending := states
	if !force {
		maxBlock, err := i.repo.MaxBlockNumber(ctx, i.network)
		if err != nil {
			return 0, fmt.Errorf("load max block number: %w", err)
		}
		pending = make([]model.ChainState, 0, len(states))
		for _, s := range states {
			// an empty table also reports zero, so block zero is always rewritten
			if maxBlock == 0 || s.BlockNumber > maxBlock {
				pending = append(pending, s)
			}
		}
		i.logger.Info("resuming import", zap.Uint64("block_number", maxBlock), zap.Int("pending", len(pending)))
	}

	written := 0
	for start := 0; start < len(pending); start += i.chunkSize {
		end := min(start+i.chunkSize, len(pending))
		chunk := pending[start:end]

		started := time.Now()
		err := i.repo.InsertChainStates(ctx, i.network, chunk)
		i.metrics.ObserveFlush(err, len(chunk), started)
		if err != nil {
			return written, fmt.Errorf("insert chunk at block %d: %w", chunk[0].BlockNumber, err)
		}
		written += len(chunk)
		i.logger.Debug("chunk imported", zap.Uint64("block_number", chunk[len(chunk)-1].BlockNumber), zap.Int("size", len(chunk)))
	}

	return written, nil
}
