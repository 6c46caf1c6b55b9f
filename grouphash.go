// grouphash.go - Hash-to-curve for the embedded (Jubjub) curve.
//
// Implements the protocol's group hash: a personalized BLAKE2b-256 digest
// interpreted as a compressed point on the twisted Edwards curve over the
// BLS12-381 scalar field, with the cofactor cleared. All fixed generators
// (Pedersen hash segment generators, the note-commitment randomness base,
// per-asset value-commitment bases) are derived through this construction,
// so their discrete logarithms relative to each other are unknown.

package sapling

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"github.com/minio/blake2b-simd"
)

// ghFirstBlock is the fixed public protocol prefix mixed into every group
// hash and every note-commitment preimage. It is shared across all
// note-commitment constructions, which keeps asset-creation commitments and
// ordinary value-note commitments in disjoint preimage spaces. A single
// differing byte here silently breaks on-chain compatibility.
const ghFirstBlock = "096b36a5804bfacef1691e173c366a47ff5ba84a44f26ddd7e8d9f79d5b42df0"

// Personalization tags for the group hash. Each is exactly eight bytes and
// feeds the BLAKE2b personalization field, keeping the generator families
// domain separated.
var (
	pedersenHashPersonalization    = []byte("Zcash_PH")
	valueCommitmentPersonalization = []byte("Zcash_cv")
)

var errGroupHashNoPoint = errors.New("digest is not a valid curve point")

// jubjub holds the parameters of the embedded curve. The curve order is the
// modulus for every blinding scalar in this package.
var jubjub = twistededwards.GetEdwardsCurve()

// groupHash hashes (ghFirstBlock || msg) under the given personalization and
// interprets the digest as a compressed point. The cofactor is cleared by
// three doublings, so a returned point always lies in the prime-order
// subgroup. Roughly half of all digests do not decompress; callers retry
// with a different message (see findGroupHash).
func groupHash(personalization, msg []byte) (*twistededwards.PointAffine, error) {
	h, err := blake2b.New(&blake2b.Config{Size: 32, Person: personalization})
	if err != nil {
		return nil, fmt.Errorf("group hash personalization %q: %w", personalization, err)
	}
	h.Write([]byte(ghFirstBlock))
	h.Write(msg)
	digest := h.Sum(nil)

	var p twistededwards.PointAffine
	if _, err := p.SetBytes(digest); err != nil {
		return nil, errGroupHashNoPoint
	}
	// SetBytes keeps the result of a failed square root during decompression
	// and returns a nil error for it, so an off-curve result must be rejected
	// here.
	if !p.IsOnCurve() {
		return nil, errGroupHashNoPoint
	}
	p.Double(&p)
	p.Double(&p)
	p.Double(&p)
	if p.X.IsZero() {
		return nil, errGroupHashNoPoint
	}
	return &p, nil
}

// findGroupHash tries groupHash over (tag || counter) for counter 0..255 and
// returns the first point found. With independent ~1/2 success trials the
// probability of exhausting all counters is negligible (< 2^-256).
func findGroupHash(personalization, tag []byte) (*twistededwards.PointAffine, error) {
	msg := make([]byte, len(tag)+1)
	copy(msg, tag)
	for i := 0; i < 256; i++ {
		msg[len(tag)] = byte(i)
		p, err := groupHash(personalization, msg)
		if err == nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no group hash point for tag %q after 256 attempts", tag)
}

// maxPedersenGenerators bounds the Pedersen hash input to
// maxPedersenGenerators * 63 chunks * 3 bits. The protocol's commitment
// preimages are fixed-size and need six segments; sixteen leaves headroom.
const maxPedersenGenerators = 16

var (
	generatorsOnce     sync.Once
	pedersenGenerators [maxPedersenGenerators]twistededwards.PointAffine

	// noteCommitmentRandomnessBase blinds every note commitment. Fixed and
	// protocol wide; derived with the Pedersen personalization and tag "r".
	noteCommitmentRandomnessBase twistededwards.PointAffine
)

// initGenerators derives the fixed generator set. Derivation is pure and
// deterministic, so it runs lazily exactly once per process. A failure means
// the protocol constants themselves are unusable, which cannot be recovered
// from at runtime.
func initGenerators() {
	generatorsOnce.Do(func() {
		var tag [4]byte
		for i := range pedersenGenerators {
			binary.LittleEndian.PutUint32(tag[:], uint32(i))
			p, err := findGroupHash(pedersenHashPersonalization, tag[:])
			if err != nil {
				panic(fmt.Sprintf("sapling: deriving pedersen generator %d: %v", i, err))
			}
			pedersenGenerators[i] = *p
		}
		p, err := findGroupHash(pedersenHashPersonalization, []byte("r"))
		if err != nil {
			panic(fmt.Sprintf("sapling: deriving note commitment randomness base: %v", err))
		}
		noteCommitmentRandomnessBase = *p
	})
}
