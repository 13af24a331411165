// Package model holds the records exchanged between the mining engine and its ledger collaborators.
package model

import (
	"bytes"
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
)

// HashSize is the width of block hashes and credential hashes.
const HashSize = 32

// ChainState is the on-chain record the engine mines against. A ChainState is never
// mutated after it is read; a newer one supersedes it.
type ChainState struct {
	BlockNumber      uint64
	CurrentHash      []byte
	LeadingZeros     uint64
	DifficultyNumber uint64
	// EpochTime is the elapsed time of the current epoch in milliseconds.
	EpochTime uint64
	// BlockPosixTime is the state timestamp in milliseconds.
	BlockPosixTime uint64
	MerkleRoot     []byte

	// Ref locates the ledger output carrying the state. It is not part of the datum.
	Ref OutputReference
}

// OutputReference identifies a transaction output.
type OutputReference struct {
	TxHash string
	Index  uint64
}

// Target is the difficulty a solution must beat to extend this state.
func (s ChainState) Target() difficulty.Difficulty {
	return difficulty.Difficulty{
		LeadingZeros:     s.LeadingZeros,
		DifficultyNumber: s.DifficultyNumber,
	}
}

// Equal reports whether two states describe the same chain head. Only datum fields are compared.
func (s ChainState) Equal(o ChainState) bool {
	return s.BlockNumber == o.BlockNumber &&
		bytes.Equal(s.CurrentHash, o.CurrentHash) &&
		s.LeadingZeros == o.LeadingZeros &&
		s.DifficultyNumber == o.DifficultyNumber &&
		s.EpochTime == o.EpochTime &&
		s.BlockPosixTime == o.BlockPosixTime &&
		bytes.Equal(s.MerkleRoot, o.MerkleRoot)
}

// Validate range checks the state. Violations wrap ErrEncoding.
func (s ChainState) Validate() error {
	if len(s.CurrentHash) != HashSize {
		return fmt.Errorf("%w: current hash has %d bytes, want %d", ErrEncoding, len(s.CurrentHash), HashSize)
	}
	if err := s.Target().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return nil
}
