package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
)

const chainStatesQuery = `
SELECT
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
FROM fortuna_chain_states FINAL
WHERE network = ?
ORDER BY block_number`

// ChainStates returns the stored history of a network ordered by block number.
func (r *Repository) ChainStates(ctx context.Context, network model.Network) (states []model.ChainState, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("chain_states", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, chainStatesQuery, string(network))
	if err != nil {
		return nil, fmt.Errorf("query chain states: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var row chainStateRow
		if err = rows.Scan(
			&row.Network,
			&row.BlockNumber,
			&row.CurrentHash,
			&row.LeadingZeros,
			&row.DifficultyNumber,
			&row.EpochTime,
			&row.BlockPosixTime,
			&row.MerkleRoot,
			&row.TxHash,
			&row.OutputIndex,
		); err != nil {
			return nil, fmt.Errorf("scan chain state: %w", err)
		}
		state, convErr := row.chainState()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		states = append(states, state)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chain states: %w", err)
	}

	return states, nil
}

// MaxBlockNumber returns the highest stored block number of a network.
func (r *Repository) MaxBlockNumber(ctx context.Context, network model.Network) (height uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_number", network, err, start)
	}()

	const query = `
SELECT coalesce(max(block_number), toUInt64(0)) AS max_block_number
FROM fortuna_chain_states
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return 0, fmt.Errorf("query max block number: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		err = fmt.Errorf("max block number not found")
		return 0, err
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block number: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block number: %w", err)
	}

	return height, nil
}
