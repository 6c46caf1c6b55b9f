// pedersen.go - Windowed Pedersen hash over the embedded curve.
//
// The hash is additively structured and cheap to evaluate inside a circuit:
// the input bits are split into 3-bit chunks, each chunk is encoded as a
// signed window multiplier, and runs of 63 chunks are folded into a scalar
// multiplied against a fixed segment generator. Collision resistance reduces
// to the discrete-log assumption on the curve.

package sapling

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

// personalization is the 6-bit domain tag prepended to every Pedersen hash
// input. Distinct tags put the hash families in disjoint input spaces.
type personalization [6]bool

// noteCommitmentPersonalization tags every note-commitment hash, shared by
// asset-creation, mint and ordinary value-note commitments.
var noteCommitmentPersonalization = personalization{true, true, true, true, true, true}

// chunksPerGenerator is the largest number of 3-bit chunks one segment
// scalar can absorb without overflowing half the group order, which is what
// keeps the chunk encoding injective.
const chunksPerGenerator = 63

// bytesToBits expands data to a bit sequence, least significant bit of each
// byte first. The bit order is pinned: it is part of the on-chain format.
func bytesToBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, (b>>i)&1 == 1)
		}
	}
	return bits
}

// pedersenHashToPoint hashes the personalization tag followed by bits to a
// point in the prime-order subgroup.
//
// Within a segment, chunk j contributes (1 + s0 + 2*s1) * (1 - 2*s2) at
// window weight 16^j; each full segment of 63 chunks is multiplied against
// its own group-hash generator and the results are summed. Inputs are
// protocol-fixed sizes, so exceeding the generator capacity is a programming
// error and panics.
func pedersenHashToPoint(tag personalization, bits []bool) twistededwards.PointAffine {
	initGenerators()

	all := make([]bool, 0, len(tag)+len(bits))
	all = append(all, tag[:]...)
	all = append(all, bits...)

	segmentBits := 3 * chunksPerGenerator
	if (len(all)+segmentBits-1)/segmentBits > maxPedersenGenerators {
		panic(fmt.Sprintf("sapling: pedersen hash input of %d bits exceeds %d generators",
			len(all), maxPedersenGenerators))
	}

	// identity of the twisted Edwards group
	var result twistededwards.PointAffine
	result.X.SetZero()
	result.Y.SetOne()

	segment := 0
	for start := 0; start < len(all); start += segmentBits {
		end := start + segmentBits
		if end > len(all) {
			end = len(all)
		}

		acc := new(big.Int)
		cur := big.NewInt(1)
		for i := start; i < end; i += 3 {
			var s0, s1, s2 bool
			s0 = all[i]
			if i+1 < end {
				s1 = all[i+1]
			}
			if i+2 < end {
				s2 = all[i+2]
			}

			term := new(big.Int).Set(cur)
			if s0 {
				term.Add(term, cur)
			}
			if s1 {
				term.Add(term, new(big.Int).Lsh(cur, 1))
			}
			if s2 {
				term.Neg(term)
			}
			acc.Add(acc, term)
			cur.Lsh(cur, 4)
		}
		acc.Mod(acc, &jubjub.Order)

		var tmp twistededwards.PointAffine
		tmp.ScalarMultiplication(&pedersenGenerators[segment], acc)
		result.Add(&result, &tmp)
		segment++
	}
	return result
}
