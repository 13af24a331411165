// Package candidate builds the byte string hashed by the search engine. The layout is the
// Plutus constructor 0 with fields nonce, miner credential hash, block number, current hash,
// leading zeros, difficulty number and epoch time, the record the validator re-hashes on chain.
package candidate

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/plutus"
)

const (
	// NonceSize is the width of the mined nonce.
	NonceSize = 16
	// NonceOffset is where the nonce bytes start inside an encoding: the constructor tag,
	// the indefinite list marker and the byte string head precede it.
	NonceOffset = 4
)

// nonceHeader is constructor 0, indefinite list start, 16 byte string head.
var nonceHeader = []byte{0xd8, 0x79, 0x9f, 0x50}

// Nonce is the mutable part of a candidate.
type Nonce [NonceSize]byte

// Candidate is the record searched for a winning nonce.
type Candidate struct {
	Nonce               Nonce
	MinerCredentialHash [model.HashSize]byte
	BlockNumber         uint64
	CurrentHash         []byte
	LeadingZeros        uint64
	DifficultyNumber    uint64
	EpochTime           uint64
}

// New builds a candidate extending state.
func New(state model.ChainState, credential [model.HashSize]byte, nonce Nonce) Candidate {
	return Candidate{
		Nonce:               nonce,
		MinerCredentialHash: credential,
		BlockNumber:         state.BlockNumber,
		CurrentHash:         state.CurrentHash,
		LeadingZeros:        state.LeadingZeros,
		DifficultyNumber:    state.DifficultyNumber,
		EpochTime:           state.EpochTime,
	}
}

// Encode returns the canonical encoding of c. Width or range violations wrap model.ErrEncoding.
func Encode(c Candidate) ([]byte, error) {
	if len(c.CurrentHash) != model.HashSize {
		return nil, fmt.Errorf("%w: current hash has %d bytes, want %d", model.ErrEncoding, len(c.CurrentHash), model.HashSize)
	}
	target := difficulty.Difficulty{LeadingZeros: c.LeadingZeros, DifficultyNumber: c.DifficultyNumber}
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
	}

	encoded, err := plutus.Marshal(plutus.NewConstr(0,
		c.Nonce[:],
		c.MinerCredentialHash[:],
		c.BlockNumber,
		c.CurrentHash,
		c.LeadingZeros,
		c.DifficultyNumber,
		c.EpochTime,
	))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrEncoding, err)
	}
	if !bytes.HasPrefix(encoded, nonceHeader) {
		return nil, fmt.Errorf("%w: unexpected candidate header %x", model.ErrEncoding, encoded[:NonceOffset])
	}
	return encoded, nil
}

// RemutateNonce overwrites the nonce inside an encoding produced by Encode.
func RemutateNonce(encoded []byte, nonce Nonce) error {
	if len(encoded) < NonceOffset+NonceSize || !bytes.HasPrefix(encoded, nonceHeader) {
		return fmt.Errorf("%w: buffer is not a candidate encoding", model.ErrEncoding)
	}
	copy(encoded[NonceOffset:NonceOffset+NonceSize], nonce[:])
	return nil
}

// IncrementNonce adds one to the nonce read as a big-endian integer, wrapping to zero.
func IncrementNonce(n *Nonce) {
	for i := NonceSize - 1; i >= 0; i-- {
		n[i]++
		if n[i] != 0 {
			return
		}
	}
}

// RandomNonce draws a nonce from the system's cryptographic source.
func RandomNonce() (Nonce, error) {
	var n Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return Nonce{}, fmt.Errorf("read random nonce: %w", err)
	}
	return n, nil
}
