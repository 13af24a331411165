// Package difficulty implements the proof-of-work difficulty model used by the Fortuna validator.
//
// A difficulty is a pair of the number of leading zero hex digits of a digest and the
// 16 bits that follow them. More leading zeros is always a stronger proof; for equal
// leading zeros a smaller difficulty number is stronger.
package difficulty

import "fmt"

const (
	// MaxLeadingZeros is the number of hex digits in a 32 byte digest.
	MaxLeadingZeros = 64
	// MaxDifficultyNumber bounds the secondary precision term.
	MaxDifficultyNumber = 65535
)

// Difficulty is a (leading zeros, difficulty number) pair.
type Difficulty struct {
	LeadingZeros     uint64
	DifficultyNumber uint64
}

// Of derives the difficulty of a digest.
func Of(hash [32]byte) Difficulty {
	var leadingZeros uint64
	for i, b := range hash {
		if b == 0 {
			leadingZeros += 2
			continue
		}
		if b&0x0f == b {
			return Difficulty{
				LeadingZeros:     leadingZeros + 1,
				DifficultyNumber: uint64(b)*4096 + uint64(byteAt(hash, i+1))*16 + uint64(byteAt(hash, i+2)>>4),
			}
		}
		return Difficulty{
			LeadingZeros:     leadingZeros,
			DifficultyNumber: uint64(b)*256 + uint64(byteAt(hash, i+1)),
		}
	}
	return Difficulty{LeadingZeros: MaxLeadingZeros}
}

func byteAt(hash [32]byte, i int) byte {
	if i >= len(hash) {
		return 0
	}
	return hash[i]
}

// IsBetter reports whether a satisfies target.
func IsBetter(a, target Difficulty) bool {
	return a.LeadingZeros > target.LeadingZeros ||
		(a.LeadingZeros == target.LeadingZeros && a.DifficultyNumber < target.DifficultyNumber)
}

// Validate checks the pair is inside the range the validator accepts.
func (d Difficulty) Validate() error {
	if d.LeadingZeros > MaxLeadingZeros {
		return fmt.Errorf("leading zeros %d exceeds %d", d.LeadingZeros, MaxLeadingZeros)
	}
	if d.DifficultyNumber > MaxDifficultyNumber {
		return fmt.Errorf("difficulty number %d exceeds %d", d.DifficultyNumber, MaxDifficultyNumber)
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%d/%d", d.LeadingZeros, d.DifficultyNumber)
}
