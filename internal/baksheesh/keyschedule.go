package baksheesh

import "github.com/lirsty/baksheesh/internal/bakstable"

// rightShiftKey implements one step of BAKSHEESH's key schedule. The
// 32-nibble key is packed into four 32-bit words U, V, W, X (nibbles 0-7,
// 8-15, 16-23, 24-31 respectively, nibble 0 in each group occupying the
// low 4 bits of its word) and updated as:
//
//	U' = ROR32(W, 12)
//	V' = ROR32(X, 2)
//	W' = U
//	X' = V
//
// This is linear over GF(2) -- a per-word rotation plus a cross-word
// permutation -- so it is deterministic and trivially invertible, matching
// the spec's description of RIGHT_SHIFT. The exact rotation amounts are
// this implementation's own reconstruction, the literal reference table
// having been unavailable; see DESIGN.md.
func rightShiftKey(k [BlockBytes]byte) [BlockBytes]byte {
	u := packWord(k[0:8])
	v := packWord(k[8:16])
	w := packWord(k[16:24])
	x := packWord(k[24:32])

	u, v, w, x = ror32(w, 12), ror32(x, 2), u, v

	var out [BlockBytes]byte
	unpackWord(out[0:8], u)
	unpackWord(out[8:16], v)
	unpackWord(out[16:24], w)
	unpackWord(out[24:32], x)
	return out
}

// packWord packs 8 nibbles into a 32-bit word, nibble 0 in the low 4 bits.
func packWord(nibbles []byte) uint32 {
	var word uint32
	for i, n := range nibbles {
		word |= uint32(n&0xF) << uint(4*i)
	}
	return word
}

// unpackWord is the inverse of packWord.
func unpackWord(dst []byte, word uint32) {
	for i := range dst {
		dst[i] = byte(word>>uint(4*i)) & 0xF
	}
}

func ror32(x uint32, n uint) uint32 {
	n %= 32
	if n == 0 {
		return x
	}
	return (x >> n) | (x << (32 - n))
}

// buildRoundKeyTable computes the Rounds round keys by iterated
// application of rightShiftKey: RoundKeyTable[r] is the master key
// right-shifted r+1 times.
func buildRoundKeyTable(key [BlockBytes]byte) [bakstable.Rounds][BlockBytes]byte {
	var table [bakstable.Rounds][BlockBytes]byte
	cur := key
	for r := 0; r < bakstable.Rounds; r++ {
		cur = rightShiftKey(cur)
		table[r] = cur
	}
	return table
}
