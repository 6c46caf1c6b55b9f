// sapling.go - Parameter store for the protocol's four proving circuits.
//
// Loads the Groth16 parameter blobs produced by the trusted setup and derives
// the prepared verifying keys. Loading is a one-time, multi-second startup
// cost; the resulting store is immutable and safe to share across goroutines.

package sapling

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/rs/zerolog"
)

// Kind identifies one of the protocol's proving circuits.
type Kind int

const (
	Spend Kind = iota
	Receipt
	CreateAsset
	MintAsset

	numKinds
)

func (k Kind) String() string {
	switch k {
	case Spend:
		return "spend"
	case Receipt:
		return "receipt"
	case CreateAsset:
		return "create-asset"
	case MintAsset:
		return "mint-asset"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// paramsFile is the fixed blob name for a circuit kind.
func (k Kind) paramsFile() string {
	return k.String() + ".params"
}

// CircuitParams holds everything needed to build and check proofs for one
// circuit: the compiled constraint system, the proving key, and the
// verifying key. VK is deserialized with gnark's checked reader, which
// verifies subgroup membership and precomputes the pairing lines, so it is
// the prepared verifying key.
type CircuitParams struct {
	CS constraint.ConstraintSystem
	PK groth16.ProvingKey
	VK groth16.VerifyingKey
}

// Sapling owns the four circuit parameter sets. Immutable after Load; share
// by reference for the process lifetime. Proof construction and verification
// against it require no locking.
type Sapling struct {
	params [numKinds]*CircuitParams
}

// Option configures Load.
type Option func(*loadConfig)

type loadConfig struct {
	log zerolog.Logger
}

// WithLogger makes Load report per-circuit progress through log.
func WithLogger(log zerolog.Logger) Option {
	return func(c *loadConfig) {
		c.log = log
	}
}

// Load reads the four parameter blobs (spend.params, receipt.params,
// create-asset.params, mint-asset.params) from fsys and derives the prepared
// verifying keys. The blobs are megabyte-scale tables of group elements and
// deserialization takes seconds; call once at startup.
//
// Any failure — a missing blob, truncated data, a point off the curve or
// outside its subgroup — aborts the whole load. There is no fallback: the
// protocol must never run against corrupted parameters.
func Load(fsys fs.FS, opts ...Option) (*Sapling, error) {
	cfg := loadConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Sapling{}
	for k := Spend; k < numKinds; k++ {
		start := time.Now()
		blob, err := fs.ReadFile(fsys, k.paramsFile())
		if err != nil {
			return nil, fmt.Errorf("sapling: reading %s parameters: %w", k, err)
		}
		p, err := readParams(bytes.NewReader(blob))
		if err != nil {
			return nil, fmt.Errorf("sapling: loading %s parameters: %w", k, err)
		}
		s.params[k] = p
		cfg.log.Info().
			Stringer("circuit", k).
			Int("bytes", len(blob)).
			Dur("elapsed", time.Since(start)).
			Msg("loaded proving parameters")
	}
	return s, nil
}

var (
	loadOnce    sync.Once
	sharedStore *Sapling
	sharedErr   error
)

// LoadOnce loads the parameter store exactly once per process and returns
// the same shared instance on every subsequent call, regardless of
// arguments. A failed first load is latched the same way: every later call
// returns the original error and no retry happens, so callers must treat it
// as fatal at startup. Downstream proof components should hold the returned
// reference.
func LoadOnce(fsys fs.FS, opts ...Option) (*Sapling, error) {
	loadOnce.Do(func() {
		sharedStore, sharedErr = Load(fsys, opts...)
	})
	return sharedStore, sharedErr
}

// Params returns the full parameter set for a circuit kind, needed to build
// proofs.
func (s *Sapling) Params(k Kind) *CircuitParams {
	return s.params[k]
}

// ProvingKey returns the proving key for a circuit kind.
func (s *Sapling) ProvingKey(k Kind) groth16.ProvingKey {
	return s.params[k].PK
}

// PreparedVerifyingKey returns the prepared verifying key for a circuit
// kind, needed to check proofs. A key prepared from one circuit's parameters
// rejects every other circuit's proofs.
func (s *Sapling) PreparedVerifyingKey(k Kind) groth16.VerifyingKey {
	return s.params[k].VK
}

// readParams deserializes one parameter blob: the constraint system, the
// proving key, then the verifying key, each in gnark's canonical encoding.
// Trailing bytes are rejected as a mismatched blob.
func readParams(r *bytes.Reader) (*CircuitParams, error) {
	cs := groth16.NewCS(ecc.BLS12_381)
	if _, err := cs.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("constraint system: %w", err)
	}
	pk := groth16.NewProvingKey(ecc.BLS12_381)
	if _, err := pk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("proving key: %w", err)
	}
	vk := groth16.NewVerifyingKey(ecc.BLS12_381)
	if _, err := vk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("verifying key: %w", err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after verifying key", r.Len())
	}
	return &CircuitParams{CS: cs, PK: pk, VK: vk}, nil
}

// WriteParams serializes a parameter set in the blob layout readParams
// expects. Used by setup tooling and tests.
func WriteParams(w io.Writer, p *CircuitParams) error {
	if _, err := p.CS.WriteTo(w); err != nil {
		return fmt.Errorf("constraint system: %w", err)
	}
	if _, err := p.PK.WriteTo(w); err != nil {
		return fmt.Errorf("proving key: %w", err)
	}
	if _, err := p.VK.WriteTo(w); err != nil {
		return fmt.Errorf("verifying key: %w", err)
	}
	return nil
}
