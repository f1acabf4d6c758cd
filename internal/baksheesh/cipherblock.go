package baksheesh

import "crypto/cipher"

// blockAdapter wraps a *Context to expose crypto/cipher.Block's
// single-block, panic-on-short-buffer shape. *Context itself cannot
// implement cipher.Block directly: Go resolves methods by name only, and
// Context.Encrypt/Decrypt already return (output, outputLen, error) for
// the ECB driver.
type blockAdapter struct {
	ctx *Context
}

// AsBlock adapts ctx to crypto/cipher.Block over BlockBytes-sized blocks,
// in the manner of the twine/serpent reference ciphers. This is the seam
// a caller would use to build a chaining mode externally; the module
// itself only ships ECB (see Context.Encrypt/Decrypt).
func AsBlock(ctx *Context) cipher.Block {
	return blockAdapter{ctx: ctx}
}

func (b blockAdapter) BlockSize() int { return BlockBytes }

func (b blockAdapter) Encrypt(dst, src []byte) {
	if len(src) < BlockBytes {
		panic("baksheesh: input to Encrypt is smaller than the block size")
	}
	if len(dst) < BlockBytes {
		panic("baksheesh: output to Encrypt is smaller than the block size")
	}
	var s, d [BlockBytes]byte
	copy(s[:], src[:BlockBytes])
	b.ctx.EncryptBlock(&d, &s)
	copy(dst[:BlockBytes], d[:])
}

func (b blockAdapter) Decrypt(dst, src []byte) {
	if len(src) < BlockBytes {
		panic("baksheesh: input to Decrypt is smaller than the block size")
	}
	if len(dst) < BlockBytes {
		panic("baksheesh: output to Decrypt is smaller than the block size")
	}
	var s, d [BlockBytes]byte
	copy(s[:], src[:BlockBytes])
	b.ctx.DecryptBlock(&d, &s)
	copy(dst[:BlockBytes], d[:])
}
