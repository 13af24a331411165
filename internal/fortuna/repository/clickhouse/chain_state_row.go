package clickhouse

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
)

// chainStateRow mirrors a fortuna_chain_states row. Hashes are stored as lowercase hex.
type chainStateRow struct {
	Network          string
	BlockNumber      uint64
	CurrentHash      string
	LeadingZeros     uint64
	DifficultyNumber uint64
	EpochTime        uint64
	BlockPosixTime   uint64
	MerkleRoot       string
	TxHash           string
	OutputIndex      uint64
}

func newChainStateRow(network model.Network, s model.ChainState) chainStateRow {
	return chainStateRow{
		Network:          string(network),
		BlockNumber:      s.BlockNumber,
		CurrentHash:      hex.EncodeToString(s.CurrentHash),
		LeadingZeros:     s.LeadingZeros,
		DifficultyNumber: s.DifficultyNumber,
		EpochTime:        s.EpochTime,
		BlockPosixTime:   s.BlockPosixTime,
		MerkleRoot:       hex.EncodeToString(s.MerkleRoot),
		TxHash:           s.Ref.TxHash,
		OutputIndex:      s.Ref.Index,
	}
}

func (r chainStateRow) values() []any {
	return []any{
		r.Network,
		r.BlockNumber,
		r.CurrentHash,
		r.LeadingZeros,
		r.DifficultyNumber,
		r.EpochTime,
		r.BlockPosixTime,
		r.MerkleRoot,
		r.TxHash,
		r.OutputIndex,
	}
}

func (r chainStateRow) chainState() (model.ChainState, error) {
	hash, err := hex.DecodeString(r.CurrentHash)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("decode current hash of block %d: %w", r.BlockNumber, err)
	}
	root, err := hex.DecodeString(r.MerkleRoot)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("decode merkle root of block %d: %w", r.BlockNumber, err)
	}
	return model.ChainState{
		BlockNumber:      r.BlockNumber,
		CurrentHash:      hash,
		LeadingZeros:     r.LeadingZeros,
		DifficultyNumber: r.DifficultyNumber,
		EpochTime:        r.EpochTime,
		BlockPosixTime:   r.BlockPosixTime,
		MerkleRoot:       root,
		Ref:              model.OutputReference{TxHash: r.TxHash, Index: r.OutputIndex},
	}, nil
}
