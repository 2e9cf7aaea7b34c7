package packedchar

import (
	"fmt"
	"strconv"
)

// MaxU22 is the largest value a U22 can hold.
const MaxU22 = 1<<22 - 1

// A U22 is an unsigned integer constrained to 22 bits. The only way to build
// one is U22FromUint32, so a U22 in hand is always in range and FromU22 never
// has to re-check it. The zero value is 0.
type U22 struct {
	n uint32
}

// RangeError reports a value too large to fit in 22 bits.
type RangeError struct {
	Value uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d does not fit in 22 bits", e.Value)
}

// U22FromUint32 validates that n fits in 22 bits. Values past MaxU22 are
// reported as *RangeError, never truncated.
func U22FromUint32(n uint32) (U22, error) {
	if n > MaxU22 {
		return U22{}, &RangeError{Value: n}
	}
	return U22{n: n}, nil
}

// Uint32 returns the value widened back to 32 bits.
func (u U22) Uint32() uint32 {
	return u.n
}

func (u U22) String() string {
	return strconv.FormatUint(uint64(u.n), 10)
}
