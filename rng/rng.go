package rng

import "github.com/daystram/illegalpairs/id"

const (
	Multiplier uint32 = 0x343FD
	Increment  uint32 = 0x269EC3

	// InverseMultiplier is the multiplicative inverse of Multiplier mod 2^32.
	InverseMultiplier uint32 = 0xB9B33155
	// InverseIncrement is -Increment*InverseMultiplier mod 2^32.
	InverseIncrement uint32 = 0xA170F641
)

// Step advances the generator state by one.
func Step(s uint32) uint32 {
	return s*Multiplier + Increment
}

// InverseStep undoes Step: InverseStep(Step(s)) == s for every s.
func InverseStep(s uint32) uint32 {
	return s*InverseMultiplier + InverseIncrement
}

// Seed builds the state whose high half is primary and low half is offset.
func Seed(primary, offset id.ID) uint32 {
	return uint32(primary)<<16 | uint32(offset)
}

// High returns the upper 16 bits of a state.
func High(s uint32) id.ID {
	return id.ID(s >> 16)
}
