// note.go - Asset-creation and asset-mint notes and their commitments.
//
// A note binds irrevocably to its asset metadata and hides it behind a
// blinding scalar: the metadata preimage is Pedersen hashed to a point on the
// embedded curve, then blinded by randomness times the fixed note-commitment
// randomness base. Only the affine x-coordinate of the blinded point is
// exposed, as a scalar of the outer curve's scalar field, ready for use as a
// circuit public input.

package sapling

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

// CreateAssetNote represents a newly declared asset type in the owner's
// account. The blinding randomness is sampled once at construction and never
// derived from the metadata; the holder retains it until opening or proof
// time. The commitment itself is recomputed on demand.
type CreateAssetNote struct {
	assetInfo  *AssetInfo
	randomness *big.Int
}

// NewCreateAssetNote builds a note over the given metadata with fresh
// wide-reduced randomness.
func NewCreateAssetNote(info *AssetInfo) *CreateAssetNote {
	return &CreateAssetNote{
		assetInfo:  info,
		randomness: randomScalar(),
	}
}

// AssetInfo returns the metadata this note commits to.
func (n *CreateAssetNote) AssetInfo() *AssetInfo {
	return n.assetInfo
}

// Randomness returns a copy of the blinding scalar, needed later as a
// private witness of the create-asset statement.
func (n *CreateAssetNote) Randomness() *big.Int {
	return new(big.Int).Set(n.randomness)
}

// CommitmentPoint derives the public commitment scalar. Deterministic given
// the note: calling it twice yields bit-identical output.
func (n *CreateAssetNote) CommitmentPoint() fr.Element {
	return commitToPreimage(assetCommitmentPreimage(n.assetInfo), n.randomness)
}

// assetCommitmentPreimage builds the domain-separated commitment preimage:
// the 64-byte protocol prefix, the zero-padded name, the owner address and
// the nonce byte, in that order. Byte order is pinned by tests; it is part
// of the on-chain format.
func assetCommitmentPreimage(info *AssetInfo) []byte {
	buf := make([]byte, 0, len(ghFirstBlock)+AssetNameSize+PublicAddressSize+1)
	buf = append(buf, ghFirstBlock...)
	buf = append(buf, info.Name()...)
	buf = append(buf, info.PublicAddressBytes()...)
	buf = append(buf, info.Nonce())
	return buf
}

// MintAssetNote represents an issuance of value for an already declared
// asset type. It reuses the note-commitment convention of CreateAssetNote
// with the mint value appended to the preimage.
type MintAssetNote struct {
	assetInfo  *AssetInfo
	value      uint64
	randomness *big.Int
}

// NewMintAssetNote builds a mint note over the given metadata and value with
// fresh wide-reduced randomness.
func NewMintAssetNote(info *AssetInfo, value uint64) *MintAssetNote {
	return &MintAssetNote{
		assetInfo:  info,
		value:      value,
		randomness: randomScalar(),
	}
}

// AssetInfo returns the metadata of the minted asset.
func (n *MintAssetNote) AssetInfo() *AssetInfo {
	return n.assetInfo
}

// Value returns the minted value.
func (n *MintAssetNote) Value() uint64 {
	return n.value
}

// Randomness returns a copy of the blinding scalar.
func (n *MintAssetNote) Randomness() *big.Int {
	return new(big.Int).Set(n.randomness)
}

// CommitmentPoint derives the public commitment scalar for the mint.
func (n *MintAssetNote) CommitmentPoint() fr.Element {
	return commitToPreimage(mintCommitmentPreimage(n.assetInfo, n.value), n.randomness)
}

// mintCommitmentPreimage appends the 8-byte little-endian mint value to the
// asset commitment preimage.
func mintCommitmentPreimage(info *AssetInfo, value uint64) []byte {
	buf := assetCommitmentPreimage(info)
	var v [8]byte
	binary.LittleEndian.PutUint64(v[:], value)
	return append(buf, v[:]...)
}

// commitToPreimage is the shared hash-and-blind step: Pedersen hash the
// preimage bits under the note-commitment tag, add randomness times the
// fixed randomness base, and return the affine x-coordinate of the result.
func commitToPreimage(preimage []byte, randomness *big.Int) fr.Element {
	initGenerators()
	point := pedersenHashToPoint(noteCommitmentPersonalization, bytesToBits(preimage))

	var blind twistededwards.PointAffine
	blind.ScalarMultiplication(&noteCommitmentRandomnessBase, randomness)
	point.Add(&point, &blind)
	return point.X
}
