package circuits

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// ReceiptCircuit is the statement for receiving a shielded note: the public
// commitment opens to a well-formed note for the recipient.
type ReceiptCircuit struct {
	// Public inputs
	Commitment frontend.Variable `gnark:",public"`

	// Private inputs
	Value   frontend.Variable
	PkOwner frontend.Variable
	Rho     frontend.Variable
	Rcm     frontend.Variable
}

func (c *ReceiptCircuit) Define(api frontend.API) error {
	hasher, _ := mimc.NewMiMC(api)

	// cm = Com(value || pkOwner || rho, rcm)
	hasher.Write(c.Value)
	hasher.Write(c.PkOwner)
	hasher.Write(c.Rho)
	hasher.Write(c.Rcm)
	api.AssertIsEqual(c.Commitment, hasher.Sum())

	return nil
}
