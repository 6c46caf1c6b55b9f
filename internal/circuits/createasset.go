package circuits

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// CreateAssetCircuit is the statement for declaring a new asset type: the
// public asset commitment opens to the declared metadata under the prover's
// blinding scalar. The commitment is the public input produced off-circuit
// by CreateAssetNote.
type CreateAssetCircuit struct {
	// Public inputs
	AssetCommitment frontend.Variable `gnark:",public"`

	// Private inputs
	Name  frontend.Variable
	Owner frontend.Variable
	Nonce frontend.Variable
	Rcm   frontend.Variable
}

func (c *CreateAssetCircuit) Define(api frontend.API) error {
	hasher, _ := mimc.NewMiMC(api)

	// cm = Com(name || owner || nonce, rcm)
	hasher.Write(c.Name)
	hasher.Write(c.Owner)
	hasher.Write(c.Nonce)
	hasher.Write(c.Rcm)
	api.AssertIsEqual(c.AssetCommitment, hasher.Sum())

	return nil
}
