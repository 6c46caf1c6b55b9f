package circuits

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// SpendCircuit is the statement for spending a shielded note.
//
// Public inputs are the note's nullifier, its commitment and the tree anchor
// it was committed under. The prover shows knowledge of the spending key and
// note openings consistent with all three. Merkle path verification belongs
// to the external witness layer.
type SpendCircuit struct {
	// Public inputs
	Nullifier  frontend.Variable `gnark:",public"`
	Commitment frontend.Variable `gnark:",public"`
	Anchor     frontend.Variable `gnark:",public"`

	// Private inputs
	Sk    frontend.Variable
	Value frontend.Variable
	Rho   frontend.Variable
	Rcm   frontend.Variable
}

func (c *SpendCircuit) Define(api frontend.API) error {
	hasher, _ := mimc.NewMiMC(api)

	// pk = H(sk)
	hasher.Write(c.Sk)
	pk := hasher.Sum()

	// nf = PRF(sk, rho)
	hasher.Reset()
	hasher.Write(c.Sk)
	hasher.Write(c.Rho)
	api.AssertIsEqual(c.Nullifier, hasher.Sum())

	// cm = Com(value || pk || rho, rcm)
	hasher.Reset()
	hasher.Write(c.Value)
	hasher.Write(pk)
	hasher.Write(c.Rho)
	hasher.Write(c.Rcm)
	cm := hasher.Sum()
	api.AssertIsEqual(c.Commitment, cm)

	// anchor binds the commitment into the note tree
	hasher.Reset()
	hasher.Write(cm)
	api.AssertIsEqual(c.Anchor, hasher.Sum())

	return nil
}
