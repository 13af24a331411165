package difficulty

import "math/big"

const (
	// EpochLength is the number of blocks between retargets.
	EpochLength = 2016
	// TargetEpochTime is the intended duration of one epoch in milliseconds (two weeks).
	TargetEpochTime uint64 = 1_209_600_000

	maxAdjustmentFactor = 4

	retargetCeilingZeros  = 62
	retargetCeilingNumber = 4096
	retargetFloorZeros    = 2
	retargetFloorNumber   = MaxDifficultyNumber
)

var (
	bigSixteen     = big.NewInt(16)
	bigNumberLimit = big.NewInt(MaxDifficultyNumber + 1)
)

// Ratio is an exact rational scaling factor applied to the difficulty number.
type Ratio struct {
	Numerator   uint64
	Denominator uint64
}

// IsEpochBoundary reports whether extending blockNumber closes an epoch.
func IsEpochBoundary(blockNumber uint64) bool {
	return blockNumber > 0 && blockNumber%EpochLength == 0
}

// Adjustment returns the factor the difficulty number is multiplied by, clamped to [1/4, 4].
func Adjustment(epochTime, targetEpochTime uint64) Ratio {
	if epochTime == 0 || targetEpochTime/epochTime >= maxAdjustmentFactor {
		return Ratio{Numerator: 1, Denominator: maxAdjustmentFactor}
	}
	if epochTime/targetEpochTime >= maxAdjustmentFactor {
		return Ratio{Numerator: maxAdjustmentFactor, Denominator: 1}
	}
	return Ratio{Numerator: epochTime, Denominator: targetEpochTime}
}

// Scale multiplies the difficulty number by r and renormalises, moving one hex digit
// between the difficulty number and the leading zeros when the result crosses the
// 16 bit window.
func Scale(d Difficulty, r Ratio) Difficulty {
	padded := new(big.Int).SetUint64(d.DifficultyNumber)
	padded.Mul(padded, bigSixteen)
	padded.Mul(padded, new(big.Int).SetUint64(r.Numerator))
	padded.Quo(padded, new(big.Int).SetUint64(r.Denominator))

	number := new(big.Int).Quo(padded, bigSixteen)

	switch {
	case padded.Cmp(bigNumberLimit) < 0:
		if d.LeadingZeros >= retargetCeilingZeros {
			return Difficulty{LeadingZeros: retargetCeilingZeros, DifficultyNumber: retargetCeilingNumber}
		}
		return Difficulty{LeadingZeros: d.LeadingZeros + 1, DifficultyNumber: padded.Uint64()}
	case number.Cmp(bigNumberLimit) >= 0:
		if d.LeadingZeros <= retargetFloorZeros {
			return Difficulty{LeadingZeros: retargetFloorZeros, DifficultyNumber: retargetFloorNumber}
		}
		number.Quo(number, bigSixteen)
		if !number.IsUint64() || number.Uint64() > MaxDifficultyNumber {
			return Difficulty{LeadingZeros: d.LeadingZeros - 1, DifficultyNumber: MaxDifficultyNumber}
		}
		return Difficulty{LeadingZeros: d.LeadingZeros - 1, DifficultyNumber: number.Uint64()}
	default:
		return Difficulty{LeadingZeros: d.LeadingZeros, DifficultyNumber: number.Uint64()}
	}
}

// Retarget computes the difficulty of the next epoch from the elapsed epoch time in milliseconds.
func Retarget(current Difficulty, epochTime uint64) Difficulty {
	return Scale(current, Adjustment(epochTime, TargetEpochTime))
}
