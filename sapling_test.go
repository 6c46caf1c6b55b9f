package sapling_test

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	mimcNative "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/mimc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"sapling"
	"sapling/internal/circuits"
)

var allKinds = []sapling.Kind{
	sapling.Spend, sapling.Receipt, sapling.CreateAsset, sapling.MintAsset,
}

// paramsFileNames pins the public blob naming contract.
var paramsFileNames = map[sapling.Kind]string{
	sapling.Spend:       "spend.params",
	sapling.Receipt:     "receipt.params",
	sapling.CreateAsset: "create-asset.params",
	sapling.MintAsset:   "mint-asset.params",
}

// writeParamsDir runs the Groth16 setup for all four statements and writes
// the blobs the way the trusted-setup tooling does.
func writeParamsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, k := range allKinds {
		p, err := circuits.Setup(circuits.ByKind(k))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, sapling.WriteParams(&buf, p))
		require.NoError(t, os.WriteFile(filepath.Join(dir, paramsFileNames[k]), buf.Bytes(), 0o644))
	}
	return dir
}

// mimcOf mirrors the in-circuit MiMC over field-element encodings.
func mimcOf(vals ...*big.Int) *big.Int {
	h := mimcNative.NewMiMC()
	for _, v := range vals {
		var e fr.Element
		e.SetBigInt(v)
		b := e.Bytes()
		h.Write(b[:])
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}

func TestParameterStore(t *testing.T) {
	if testing.Short() {
		t.Skip("groth16 setup is expensive")
	}

	dir := writeParamsDir(t)
	store, err := sapling.Load(os.DirFS(dir),
		sapling.WithLogger(zerolog.New(zerolog.NewTestWriter(t))))
	require.NoError(t, err)

	t.Run("four distinct prepared verifying keys", func(t *testing.T) {
		encoded := make(map[string]sapling.Kind)
		for _, k := range allKinds {
			require.NotNil(t, store.Params(k))
			require.NotNil(t, store.ProvingKey(k))

			var buf bytes.Buffer
			_, err := store.PreparedVerifyingKey(k).WriteTo(&buf)
			require.NoError(t, err)
			prev, dup := encoded[buf.String()]
			require.False(t, dup, "%s and %s share a verifying key", prev, k)
			encoded[buf.String()] = k
		}
	})

	// A minimal valid receipt proof, reused by the cross-circuit checks.
	value, pkOwner, rho, rcm := big.NewInt(7), big.NewInt(9), big.NewInt(11), big.NewInt(13)
	assignment := &circuits.ReceiptCircuit{
		Commitment: mimcOf(value, pkOwner, rho, rcm),
		Value:      value,
		PkOwner:    pkOwner,
		Rho:        rho,
		Rcm:        rcm,
	}
	w, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField())
	require.NoError(t, err)
	pubW, err := frontend.NewWitness(assignment, ecc.BLS12_381.ScalarField(), frontend.PublicOnly())
	require.NoError(t, err)

	receipt := store.Params(sapling.Receipt)
	proof, err := groth16.Prove(receipt.CS, receipt.PK, w)
	require.NoError(t, err)

	t.Run("proof verifies under its own circuit", func(t *testing.T) {
		require.NoError(t, groth16.Verify(proof, store.PreparedVerifyingKey(sapling.Receipt), pubW))
	})

	t.Run("cross-pairing a verifying key rejects", func(t *testing.T) {
		// The create-asset statement has the same public-input shape as the
		// receipt statement, so only the key derivation can reject it.
		err := groth16.Verify(proof, store.PreparedVerifyingKey(sapling.CreateAsset), pubW)
		require.Error(t, err, "a verifying key must reject proofs from a different circuit")

		err = groth16.Verify(proof, store.PreparedVerifyingKey(sapling.Spend), pubW)
		require.Error(t, err)
	})

	t.Run("load once shares a single instance", func(t *testing.T) {
		first, err := sapling.LoadOnce(os.DirFS(dir))
		require.NoError(t, err)
		second, err := sapling.LoadOnce(os.DirFS(t.TempDir()))
		require.NoError(t, err)
		require.Same(t, first, second)
	})

	t.Run("truncated blob aborts the load", func(t *testing.T) {
		broken := t.TempDir()
		for _, k := range allKinds {
			blob, err := os.ReadFile(filepath.Join(dir, paramsFileNames[k]))
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(filepath.Join(broken, paramsFileNames[k]), blob[:len(blob)/2], 0o644))
		}
		_, err := sapling.Load(os.DirFS(broken))
		require.Error(t, err)
	})

	t.Run("trailing bytes abort the load", func(t *testing.T) {
		broken := t.TempDir()
		for _, k := range allKinds {
			blob, err := os.ReadFile(filepath.Join(dir, paramsFileNames[k]))
			require.NoError(t, err)
			blob = append(blob, 0xde, 0xad)
			require.NoError(t, os.WriteFile(filepath.Join(broken, paramsFileNames[k]), blob, 0o644))
		}
		_, err := sapling.Load(os.DirFS(broken))
		require.Error(t, err)
		require.ErrorContains(t, err, "trailing")
	})
}

func TestLoadMissingBlobFails(t *testing.T) {
	_, err := sapling.Load(os.DirFS(t.TempDir()))
	require.Error(t, err)
	require.ErrorContains(t, err, "spend")
}
