// setup.go - Compilation and Groth16 setup for the protocol statements.
//
// The constraint systems here are representative skeletons of the four
// protocol statements; the full in-circuit gadgets (Pedersen hash, merkle
// paths) are maintained with the proving layer. Setup output feeds the
// parameter blobs consumed by the sapling parameter store.

package circuits

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"sapling"
)

// ByKind returns an empty circuit definition for a circuit kind.
func ByKind(k sapling.Kind) frontend.Circuit {
	switch k {
	case sapling.Spend:
		return &SpendCircuit{}
	case sapling.Receipt:
		return &ReceiptCircuit{}
	case sapling.CreateAsset:
		return &CreateAssetCircuit{}
	case sapling.MintAsset:
		return &MintAssetCircuit{}
	default:
		panic(fmt.Sprintf("circuits: unknown circuit kind %v", k))
	}
}

// Compile compiles a statement circuit to R1CS over the BLS12-381 scalar
// field.
func Compile(circuit frontend.Circuit) (constraint.ConstraintSystem, error) {
	ccs, err := frontend.Compile(ecc.BLS12_381.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}
	return ccs, nil
}

// Setup compiles a statement circuit and runs the Groth16 setup, producing a
// parameter set in the store's layout. Production parameters come from the
// trusted-setup ceremony; this path serves tooling and tests.
func Setup(circuit frontend.Circuit) (*sapling.CircuitParams, error) {
	ccs, err := Compile(circuit)
	if err != nil {
		return nil, err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup failed: %w", err)
	}
	return &sapling.CircuitParams{CS: ccs, PK: pk, VK: vk}, nil
}
