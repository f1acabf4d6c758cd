// Package baksheesh implements the BAKSHEESH lightweight 128-bit block
// cipher: key schedule, single-block encrypt/decrypt, and an ECB block
// driver. It has no knowledge of padding, chaining modes, or key
// derivation -- those stay out of the core by design.
package baksheesh

import (
	"errors"

	"github.com/lirsty/baksheesh/internal/bakstable"
)

// BlockBytes is the number of bytes in one BAKSHEESH block: 32 nibbles,
// one nibble stored per byte.
const BlockBytes = bakstable.NibbleCount

// ErrAllocation names the failure to construct a Context. Go's allocator
// does not fail the way the reference C allocator can, so New has no path
// that returns it; it is kept so the API shape matches the core contract.
var ErrAllocation = errors.New("baksheesh: context allocation failed")

// ErrInvalidArgument is returned by Encrypt/Decrypt when the receiver or
// the input is absent, mirroring the reference driver's nonzero status
// for a null context/input/output.
var ErrInvalidArgument = errors.New("baksheesh: nil context or input")

// Context owns one master key and its precomputed round-key table. It is
// immutable after New returns: multiple goroutines may call Encrypt,
// Decrypt, EncryptBlock, and DecryptBlock on the same Context concurrently
// without synchronization.
type Context struct {
	key       [BlockBytes]byte
	roundKeys [bakstable.Rounds][BlockBytes]byte
}

// New builds a Context from a 32-byte key. Each byte should have its high
// nibble zero (the caller's contract); New masks with &0xF defensively so
// a violation doesn't corrupt the state, only the effective key -- and
// Encrypt/Decrypt mask identically, so the round-trip property still
// holds.
func New(key []byte) (*Context, error) {
	if len(key) != BlockBytes {
		return nil, ErrInvalidArgument
	}

	ctx := &Context{}
	for i, b := range key {
		ctx.key[i] = b & 0xF
	}
	ctx.roundKeys = buildRoundKeyTable(ctx.key)
	return ctx, nil
}

// Close zeroises the master key and the round-key table. It tolerates a
// nil receiver.
func (c *Context) Close() error {
	if c == nil {
		return nil
	}
	for i := range c.key {
		c.key[i] = 0
	}
	for r := range c.roundKeys {
		for i := range c.roundKeys[r] {
			c.roundKeys[r][i] = 0
		}
	}
	return nil
}
