package model

import (
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/plutus"
)

const (
	stateFieldBlockNumber = iota
	stateFieldCurrentHash
	stateFieldLeadingZeros
	stateFieldDifficultyNumber
	stateFieldEpochTime
	stateFieldPosixTime
	stateFieldMerkleRoot

	minStateFields = stateFieldPosixTime + 1
)

// DecodeChainState decodes and range checks a validator datum.
// Any malformed field is reported as ErrEncoding.
func DecodeChainState(datum []byte) (ChainState, error) {
	c, err := plutus.Unmarshal(datum)
	if err != nil {
		return ChainState{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if c.Index != 0 {
		return ChainState{}, fmt.Errorf("%w: datum constructor %d, want 0", ErrEncoding, c.Index)
	}
	if len(c.Fields) < minStateFields {
		return ChainState{}, fmt.Errorf("%w: datum has %d fields, want at least %d", ErrEncoding, len(c.Fields), minStateFields)
	}

	var state ChainState
	uints := []struct {
		index int
		dest  *uint64
	}{
		{stateFieldBlockNumber, &state.BlockNumber},
		{stateFieldLeadingZeros, &state.LeadingZeros},
		{stateFieldDifficultyNumber, &state.DifficultyNumber},
		{stateFieldEpochTime, &state.EpochTime},
		{stateFieldPosixTime, &state.BlockPosixTime},
	}
	for _, f := range uints {
		if *f.dest, err = c.Uint(f.index); err != nil {
			return ChainState{}, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
	}
	if state.CurrentHash, err = c.Bytes(stateFieldCurrentHash); err != nil {
		return ChainState{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if len(c.Fields) > stateFieldMerkleRoot {
		// a merkle root that is not a byte string belongs to a newer datum layout; keep it empty
		if root, rootErr := c.Bytes(stateFieldMerkleRoot); rootErr == nil {
			state.MerkleRoot = root
		}
	}

	if err = state.Validate(); err != nil {
		return ChainState{}, err
	}
	return state, nil
}

// EncodeNextBlock encodes the datum of the proposed next state.
func EncodeNextBlock(r NextBlockRecord) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	root := r.MerkleRoot
	if root == nil {
		root = []byte{}
	}

	datum, err := plutus.Marshal(plutus.NewConstr(0,
		r.BlockNumber,
		r.CurrentHash,
		r.LeadingZeros,
		r.DifficultyNumber,
		r.EpochTime,
		r.BlockPosixTime,
		root,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return datum, nil
}
