package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
)

const insertChainStatesQuery = `
INSERT INTO fortuna_chain_states (
	network,
	block_number,
	current_hash,
	leading_zeros,
	difficulty_number,
	epoch_time,
	block_posix_time,
	merkle_root,
	tx_hash,
	output_index
) VALUES`

// InsertChainStates stores observed chain states.
func (r *Repository) InsertChainStates(ctx context.Context, network model.Network, states []model.ChainState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_chain_states", network, err, start)
	}()

	if len(states) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertChainStatesQuery)
	if err != nil {
		return fmt.Errorf("prepare chain states batch: %w", err)
	}

	for _, state := range states {
		if err = batch.Append(newChainStateRow(network, state).values()...); err != nil {
			return fmt.Errorf("append chain state %d: %w", state.BlockNumber, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert chain states: %w", err)
	}
	return nil
}
