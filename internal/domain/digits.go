package domain

import (
	"math/bits"
	"strings"
)

// DigitSet is a set of candidate digits 1-9 packed into a bitmask,
// bit d-1 standing for digit d.
type DigitSet uint16

// FullSet contains all nine digits.
const FullSet DigitSet = 0x1ff

// Singleton returns the set holding only d.
func Singleton(d int) DigitSet { return 1 << (d - 1) }

// SetOf builds a set from the given digits.
func SetOf(digits ...int) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s |= Singleton(d)
	}
	return s
}

// Has reports whether d is in the set.
func (s DigitSet) Has(d int) bool { return s&Singleton(d) != 0 }

// Add returns the set with d included.
func (s DigitSet) Add(d int) DigitSet { return s | Singleton(d) }

// Remove returns the set without d.
func (s DigitSet) Remove(d int) DigitSet { return s &^ Singleton(d) }

// Size returns the number of digits in the set.
func (s DigitSet) Size() int { return bits.OnesCount16(uint16(s)) }

// Single returns the remaining digit when exactly one is left.
func (s DigitSet) Single() (int, bool) {
	if s.Size() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(s)) + 1, true
}

// Digits lists the members in increasing order.
func (s DigitSet) Digits() []int {
	out := make([]int, 0, s.Size())
	for m := uint16(s); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros16(m)+1)
	}
	return out
}

// String renders the members as a digit string, e.g. "257".
func (s DigitSet) String() string {
	var b strings.Builder
	for m := uint16(s); m != 0; m &= m - 1 {
		b.WriteByte(byte('1' + bits.TrailingZeros16(m)))
	}
	return b.String()
}
