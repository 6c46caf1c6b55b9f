// asset.go - Declared asset metadata and the per-asset value generator.

package sapling

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

const (
	// PublicAddressSize is the fixed size of an owner address.
	PublicAddressSize = 32
	// AssetNameSize is the fixed size of an asset name; shorter names are
	// zero padded on the right.
	AssetNameSize = 32
)

// PublicAddress is the shielded address of an asset owner, supplied by the
// account layer.
type PublicAddress [PublicAddressSize]byte

// AssetInfo describes a declared on-chain asset type: a name, the owner's
// public address and a one-byte nonce. The nonce exists so that a declaration
// whose metadata does not hash to a valid value-commitment generator can be
// re-issued (see NewAssetInfoSearchNonce). Immutable after construction.
type AssetInfo struct {
	name  [AssetNameSize]byte
	owner PublicAddress
	nonce byte
}

// NewAssetInfo builds asset metadata from a name of at most AssetNameSize
// bytes, the owner's address and an explicit nonce.
func NewAssetInfo(name string, owner PublicAddress, nonce byte) (*AssetInfo, error) {
	if len(name) > AssetNameSize {
		return nil, fmt.Errorf("asset name is %d bytes, max %d", len(name), AssetNameSize)
	}
	info := &AssetInfo{owner: owner, nonce: nonce}
	copy(info.name[:], name)
	return info, nil
}

// NewAssetInfoSearchNonce builds asset metadata, probing nonces from zero
// until the metadata hashes to a valid value-commitment generator.
func NewAssetInfoSearchNonce(name string, owner PublicAddress) (*AssetInfo, error) {
	for nonce := 0; nonce < 256; nonce++ {
		info, err := NewAssetInfo(name, owner, byte(nonce))
		if err != nil {
			return nil, err
		}
		if _, err := info.Generator(); err == nil {
			return info, nil
		}
	}
	return nil, fmt.Errorf("no valid asset generator for %q after 256 nonces", name)
}

// Name returns the zero-padded asset name.
func (a *AssetInfo) Name() []byte {
	name := a.name
	return name[:]
}

// PublicAddressBytes returns the owner's address bytes.
func (a *AssetInfo) PublicAddressBytes() []byte {
	owner := a.owner
	return owner[:]
}

// Nonce returns the declaration nonce.
func (a *AssetInfo) Nonce() byte {
	return a.nonce
}

// Generator hashes the asset metadata to its value-commitment base point,
// the per-asset generator used when committing to values of this asset type.
// Fails for roughly half of all nonces; the declaration nonce absorbs the
// retries.
func (a *AssetInfo) Generator() (twistededwards.PointAffine, error) {
	msg := make([]byte, 0, AssetNameSize+PublicAddressSize+1)
	msg = append(msg, a.name[:]...)
	msg = append(msg, a.owner[:]...)
	msg = append(msg, a.nonce)
	p, err := groupHash(valueCommitmentPersonalization, msg)
	if err != nil {
		return twistededwards.PointAffine{}, fmt.Errorf("asset generator: %w", err)
	}
	return *p, nil
}
