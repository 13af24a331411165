package miner

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/difficulty"
	"github.com/goodnatureofminers/fortuna-miner/internal/fortuna/model"
	"github.com/goodnatureofminers/fortuna-miner/pkg/safe"
)

// Window is the validity interval of a settlement transaction in POSIX milliseconds.
type Window struct {
	ValidFrom uint64
	ValidTo   uint64
}

// ValidityWindow returns the window for a transaction built at now.
func ValidityWindow(now time.Time) (Window, error) {
	from, err := safe.Uint64(now.Truncate(time.Minute).Add(-validityMargin).UnixMilli())
	if err != nil {
		return Window{}, fmt.Errorf("%w: validity window: %v", model.ErrEncoding, err)
	}
	return Window{ValidFrom: from, ValidTo: from + uint64(validityWindow.Milliseconds())}, nil
}

// PosixTime is the block time recorded for a window, the middle of the interval.
func (w Window) PosixTime() uint64 {
	return w.ValidFrom + (w.ValidTo-w.ValidFrom)/2
}

// NextBlock extends state with the winning hash. Elapsed time since the previous block is
// added to the epoch time; extending an epoch boundary block retargets the difficulty from
// that total and restarts the epoch.
func NextBlock(state model.ChainState, hash []byte, window Window) (model.NextBlockRecord, error) {
	posix := window.PosixTime()
	elapsed, err := safe.Sub(posix, state.BlockPosixTime)
	if err != nil {
		return model.NextBlockRecord{}, fmt.Errorf("%w: block time precedes previous block: %v", model.ErrEncoding, err)
	}
	epochTime, err := safe.Add(state.EpochTime, elapsed)
	if err != nil {
		return model.NextBlockRecord{}, fmt.Errorf("%w: epoch time: %v", model.ErrEncoding, err)
	}

	target := state.Target()
	if difficulty.IsEpochBoundary(state.BlockNumber) {
		target = difficulty.Retarget(target, epochTime)
		epochTime = 0
	}

	record := model.NextBlockRecord{
		BlockNumber:      state.BlockNumber + 1,
		CurrentHash:      hash,
		LeadingZeros:     target.LeadingZeros,
		DifficultyNumber: target.DifficultyNumber,
		EpochTime:        epochTime,
		BlockPosixTime:   posix,
		MerkleRoot:       state.MerkleRoot,
	}
	if err := record.Validate(); err != nil {
		return model.NextBlockRecord{}, err
	}
	return record, nil
}
