package baksheesh

// alignToBlock rounds n down to the nearest multiple of BlockBytes.
func alignToBlock(n int) int {
	return n &^ (BlockBytes - 1)
}

// Encrypt ECB-encrypts the largest BlockBytes-aligned prefix of input.
// outputLen is always len(input) &^ 31; bytes beyond that boundary are
// silently ignored -- padding is the caller's responsibility, not this
// driver's. Each 32-byte block is transformed independently, so swapping
// two input blocks swaps the corresponding output blocks.
func (c *Context) Encrypt(input []byte) (output []byte, outputLen int, err error) {
	if c == nil || input == nil {
		return nil, 0, ErrInvalidArgument
	}

	outputLen = alignToBlock(len(input))
	output = make([]byte, outputLen)

	var src, dst [BlockBytes]byte
	for off := 0; off < outputLen; off += BlockBytes {
		copy(src[:], input[off:off+BlockBytes])
		c.EncryptBlock(&dst, &src)
		copy(output[off:off+BlockBytes], dst[:])
	}
	return output, outputLen, nil
}

// Decrypt is Encrypt's symmetric inverse; see Encrypt for the alignment
// and independence contract.
func (c *Context) Decrypt(input []byte) (output []byte, outputLen int, err error) {
	if c == nil || input == nil {
		return nil, 0, ErrInvalidArgument
	}

	outputLen = alignToBlock(len(input))
	output = make([]byte, outputLen)

	var src, dst [BlockBytes]byte
	for off := 0; off < outputLen; off += BlockBytes {
		copy(src[:], input[off:off+BlockBytes])
		c.DecryptBlock(&dst, &src)
		copy(output[off:off+BlockBytes], dst[:])
	}
	return output, outputLen, nil
}
