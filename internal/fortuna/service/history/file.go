package history

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
)

// entry is one element of a history file. Only current_hash is mandatory.
type entry struct {
	BlockNumber      *uint64 `json:"block_number"`
	CurrentHash      string  `json:"current_hash"`
	LeadingZeros     uint64  `json:"leading_zeros"`
	DifficultyNumber uint64  `json:"difficulty_number"`
	EpochTime        uint64  `json:"epoch_time"`
	CurrentPosixTime uint64  `json:"current_posix_time"`
	MerkleRoot       string  `json:"merkle_root"`
}

// LoadFile reads a JSON history file into chain states in file order.
// Entries without a block number take their position in the file.
func LoadFile(path string) ([]model.ChainState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes the JSON history format.
func Parse(raw []byte) ([]model.ChainState, error) {
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode history: %v", model.ErrEncoding, err)
	}

	states := make([]model.ChainState, 0, len(entries))
	for i, e := range entries {
		hash, err := hex.DecodeString(e.CurrentHash)
		if err != nil || len(hash) != model.HashSize {
			return nil, fmt.Errorf("%w: history entry %d has invalid current_hash %q", model.ErrEncoding, i, e.CurrentHash)
		}
		var root []byte
		if e.MerkleRoot != "" {
			if root, err = hex.DecodeString(e.MerkleRoot); err != nil {
				return nil, fmt.Errorf("%w: history entry %d has invalid merkle_root: %v", model.ErrEncoding, i, err)
			}
		}
		blockNumber := uint64(i)
		if e.BlockNumber != nil {
			blockNumber = *e.BlockNumber
		}
		states = append(states, model.ChainState{
			BlockNumber:      blockNumber,
			CurrentHash:      hash,
			LeadingZeros:     e.LeadingZeros,
			DifficultyNumber: e.DifficultyNumber,
			EpochTime:        e.EpochTime,
			BlockPosixTime:   e.CurrentPosixTime,
			MerkleRoot:       root,
		})
	}
	return states, nil
}

// Hashes returns the current hashes of states in order.
func Hashes(states []model.ChainState) [][]byte {
	hashes := make([][]byte, len(states))
	for i, s := range states {
		hashes[i] = s.CurrentHash
	}
	return hashes
}
