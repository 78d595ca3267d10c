package vo

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrZeroTotalBlocks      = errors.New("total block count is zero")
)

// Percentage represents a filesystem usage level between 0 and 100.
type Percentage struct {
	value int
}

// NewPercentage creates a Percentage, rejecting values outside 0-100.
func NewPercentage(value int) (Percentage, error) {
	if value < 0 || value > 100 {
		return Percentage{}, fmt.Errorf("%w: %d", ErrPercentageOutOfRange, value)
	}
	return Percentage{value: value}, nil
}

// UsedPercentage computes 100 - floor(free*100/total) from block counts.
// Zero total blocks and free > total are rejected.
func UsedPercentage(totalBlocks, freeBlocks uint64) (Percentage, error) {
	if totalBlocks == 0 {
		return Percentage{}, ErrZeroTotalBlocks
	}
	if freeBlocks > totalBlocks {
		return Percentage{}, fmt.Errorf("%w: free blocks %d exceed total %d", ErrPercentageOutOfRange, freeBlocks, totalBlocks)
	}
	// free*100 may not fit in 64 bits on very large filesystems
	hi, lo := bits.Mul64(freeBlocks, 100)
	freePct, _ := bits.Div64(hi, lo, totalBlocks)
	return NewPercentage(100 - int(freePct))
}

// Value returns the numeric percentage
func (p Percentage) Value() int {
	return p.value
}

// Below returns true if this percentage is strictly less than target
func (p Percentage) Below(target int) bool {
	return p.value < target
}

// String returns e.g. "42%"
func (p Percentage) String() string {
	return fmt.Sprintf("%d%%", p.value)
}
