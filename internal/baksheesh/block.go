package baksheesh

import "github.com/lirsty/baksheesh/internal/bakstable"

// EncryptBlock encrypts one 32-nibble block (src) into dst: whitening with
// the master key, then Rounds rounds of SubNibbles/PermBits/
// AddRoundConstant/AddRoundKey. src's high nibbles are masked off so an
// input that violates the nibble contract still yields a deterministic
// result.
func (c *Context) EncryptBlock(dst, src *[BlockBytes]byte) {
	var state [BlockBytes]byte
	for i := range state {
		state[i] = (src[i] & 0xF) ^ c.key[i]
	}

	for r := 0; r < bakstable.Rounds; r++ {
		for i := range state {
			state[i] = bakstable.SBox[state[i]]
		}

		var permuted [BlockBytes]byte
		permuteBits(&permuted, &state, bakstable.PBox[:])
		state = permuted

		addRoundConstant(&state, bakstable.RoundConstants[r])

		rk := &c.roundKeys[r]
		for i := range state {
			state[i] ^= rk[i] & 0xF
		}
	}

	*dst = state
}

// DecryptBlock decrypts one 32-nibble block (src) into dst, undoing
// EncryptBlock's rounds in reverse order and reversing whitening last.
func (c *Context) DecryptBlock(dst, src *[BlockBytes]byte) {
	var state [BlockBytes]byte
	for i := range state {
		state[i] = src[i] & 0xF
	}

	for r := bakstable.Rounds - 1; r >= 0; r-- {
		rk := &c.roundKeys[r]
		for i := range state {
			state[i] ^= rk[i] & 0xF
		}

		addRoundConstant(&state, bakstable.RoundConstants[r])

		var unpermuted [BlockBytes]byte
		permuteBits(&unpermuted, &state, bakstable.InvPBox[:])
		state = unpermuted

		for i := range state {
			state[i] = bakstable.InvSBox[state[i]]
		}
	}

	for i := range state {
		state[i] ^= c.key[i]
	}
	*dst = state
}

// permuteBits maps every source bit i (0..127) to destination bit
// perm[i]. Bit i of a block lies at nibble i/4, bit position i%4.
func permuteBits(dst, src *[BlockBytes]byte, perm []int) {
	for i := 0; i < 4*BlockBytes; i++ {
		srcNibble, srcBit := i/4, uint(i%4)
		if (src[srcNibble]>>srcBit)&1 == 0 {
			continue
		}
		d := perm[i]
		dstNibble, dstBit := d/4, uint(d%4)
		dst[dstNibble] |= 1 << dstBit
	}
}

// addRoundConstant XORs the 6-bit field of rc into bit position 0 of
// nibbles 0..5 (one bit per nibble), plus a fixed 1 bit into bit position
// 0 of nibble 31. XOR is its own inverse, so the same call undoes itself
// during decryption.
func addRoundConstant(state *[BlockBytes]byte, rc byte) {
	for i := 0; i < 6; i++ {
		state[i] ^= (rc >> uint(i)) & 1
	}
	state[31] ^= 1
}
