package model

import (
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
)

// NextBlockRecord is the state proposed to the ledger after a winning nonce is found.
type NextBlockRecord struct {
	BlockNumber      uint64
	CurrentHash      []byte
	LeadingZeros     uint64
	DifficultyNumber uint64
	EpochTime        uint64
	BlockPosixTime   uint64
	MerkleRoot       []byte
}

// Difficulty returns the target carried by the record.
func (r NextBlockRecord) Difficulty() difficulty.Difficulty {
	return difficulty.Difficulty{LeadingZeros: r.LeadingZeros, DifficultyNumber: r.DifficultyNumber}
}

// Validate range checks the record. Violations wrap ErrEncoding.
func (r NextBlockRecord) Validate() error {
	if len(r.CurrentHash) != HashSize {
		return fmt.Errorf("%w: current hash has %d bytes, want %d", ErrEncoding, len(r.CurrentHash), HashSize)
	}
	if err := r.Difficulty().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return nil
}

// Proof is the auxiliary data the settlement collaborator needs to spend the previous state.
type Proof struct {
	Nonce [16]byte
	// PaymentKeyHash identifies the miner inside the redeemer credential.
	PaymentKeyHash []byte
	// PreviousBlockNumber is the block number of the state being extended.
	PreviousBlockNumber uint64
	// StateRef is the output of the state being extended.
	StateRef OutputReference
	// ValidFrom and ValidTo bound the transaction validity window in milliseconds.
	ValidFrom uint64
	ValidTo   uint64
}

// Confirmation is the handle returned by a successful submission.
type Confirmation struct {
	TxHash string
}
