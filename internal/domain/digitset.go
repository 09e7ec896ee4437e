package domain

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// DigitSet is a candidate set over digits 1..9, stored as a bitmask.
// Bit (d-1) is set when digit d is a member.
type DigitSet uint16

// NewDigitSet builds a set from the given digits.
func NewDigitSet(digits ...uint8) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s.Add(d)
	}
	return s
}

// FullDigitSet holds all nine digits.
const FullDigitSet DigitSet = 0x1FF

func (s DigitSet) Has(d uint8) bool { return d >= 1 && d <= 9 && s&(1<<(d-1)) != 0 }

func (s *DigitSet) Add(d uint8) {
	if d >= 1 && d <= 9 {
		*s |= 1 << (d - 1)
	}
}

func (s *DigitSet) Remove(d uint8) {
	if d >= 1 && d <= 9 {
		*s &^= 1 << (d - 1)
	}
}

// Count reports how many digits are in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Single returns the sole member, if the set has exactly one digit.
func (s DigitSet) Single() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s)) + 1), true
}

// Digits lists the members in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// MarshalJSON encodes the set as a digit array so persisted notes stay
// readable and independent of the bitmask layout. The digits go through
// []int; a byte slice would serialize as base64.
func (s DigitSet) MarshalJSON() ([]byte, error) {
	digits := s.Digits()
	out := make([]int, len(digits))
	for i, d := range digits {
		out[i] = int(d)
	}
	return json.Marshal(out)
}

func (s *DigitSet) UnmarshalJSON(data []byte) error {
	var digits []int
	if err := json.Unmarshal(data, &digits); err != nil {
		return err
	}
	var set DigitSet
	for _, d := range digits {
		if d < 1 || d > 9 {
			return fmt.Errorf("note digit out of range: %d", d)
		}
		set.Add(uint8(d))
	}
	*s = set
	return nil
}
