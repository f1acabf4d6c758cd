// Package bakstable holds the fixed lookup tables the BAKSHEESH round
// function is built from: the S-box and its inverse, the round constants,
// and the 128-entry bit permutation and its inverse.
//
// The literal hardcoded permutation table from the reference implementation
// (baksheesh_hardcode.h) was not available when this package was written, so
// PBox/InvPBox are derived once, at init time, from the documented GIFT-family
// bit-slice construction instead of copied verbatim. See the repository's
// DESIGN.md for the full rationale.
package bakstable

// Rounds is the fixed BAKSHEESH round count.
const Rounds = 35

// NibbleCount is the number of nibbles in one 128-bit block.
const NibbleCount = 32

// SBox is the BAKSHEESH substitution box, a bijection on 0..15.
var SBox = [16]byte{3, 0, 6, 13, 11, 5, 8, 14, 12, 15, 9, 2, 4, 10, 7, 1}

// InvSBox is the inverse of SBox: InvSBox[SBox[x]] == x for all x.
var InvSBox = [16]byte{1, 15, 11, 0, 12, 5, 2, 14, 6, 10, 13, 4, 8, 3, 7, 9}

// RoundConstants holds RC[0..Rounds), each a 6-bit value.
var RoundConstants = [Rounds]byte{
	2, 33, 16, 9, 36, 19, 40, 53, 26, 13, 38, 51, 56, 61, 62, 31,
	14, 7, 34, 49, 24, 45, 54, 59, 28, 47, 22, 43, 20, 11, 4, 3, 32, 17, 8,
}

// PBox and InvPBox map bit index i (0..127) to its permuted position and
// back. Bit i lives at nibble i/4, bit position i%4 within that nibble.
var (
	PBox    [128]int
	InvPBox [128]int
)

func init() {
	// The 32 nibbles are viewed as 4 bit-planes, one per in-nibble bit
	// position j (0..3). PermBits rotates plane j by j nibble slots, so a
	// source bit at (nibble a, position j) lands at (nibble (a+j)%32,
	// position j). Plane 0 is left fixed by construction.
	for i := 0; i < 128; i++ {
		a := i / NibbleCount4
		j := i % NibbleCount4
		dest := NibbleCount4*((a+j)%NibbleCount) + j
		PBox[i] = dest
		InvPBox[dest] = i
	}
}

// NibbleCount4 is the number of bit-planes per nibble (4 bits/nibble).
const NibbleCount4 = 4
