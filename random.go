// random.go - Bias-resistant scalar sampling for blinding factors.

package sapling

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// wideScalarBytes is at least twice the 252-bit scalar field size, which
// bounds the modulo bias of reduceWide below 2^-260.
const wideScalarBytes = 64

// randomScalar samples a scalar of the embedded curve's scalar field,
// statistically indistinguishable from uniform: it draws wideScalarBytes
// from crypto/rand and reduces into the field rather than reducing a
// same-length sample. Every blinding scalar in the protocol is sampled
// through this one primitive.
//
// An entropy failure is unrecoverable for a shielded protocol, so it panics
// rather than returning weak randomness.
func randomScalar() *big.Int {
	var buf [wideScalarBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("sapling: entropy source failed: %v", err))
	}
	return reduceWide(buf[:])
}

// reduceWide interprets buf as a big-endian integer and reduces it into the
// scalar field of the embedded curve.
func reduceWide(buf []byte) *big.Int {
	s := new(big.Int).SetBytes(buf)
	return s.Mod(s, &jubjub.Order)
}
