package circuits

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// MintAssetCircuit is the statement for issuing value of an existing asset
// type: the public asset commitment opens to the asset metadata, and the
// public mint value fits in 64 bits.
type MintAssetCircuit struct {
	// Public inputs
	AssetCommitment frontend.Variable `gnark:",public"`
	Value           frontend.Variable `gnark:",public"`

	// Private inputs
	Name  frontend.Variable
	Owner frontend.Variable
	Nonce frontend.Variable
	Rcm   frontend.Variable
}

func (c *MintAssetCircuit) Define(api frontend.API) error {
	hasher, _ := mimc.NewMiMC(api)

	// cm = Com(name || owner || nonce, rcm)
	hasher.Write(c.Name)
	hasher.Write(c.Owner)
	hasher.Write(c.Nonce)
	hasher.Write(c.Rcm)
	api.AssertIsEqual(c.AssetCommitment, hasher.Sum())

	// value must be a 64-bit quantity
	api.ToBinary(c.Value, 64)

	return nil
}
