// Package sapling implements the cryptographic core of the shielded-asset
// protocol.
//
// Overview:
//   - Loads the Groth16 proving parameters for the protocol's four statement
//     types (spend, receipt, create-asset, mint-asset) and derives the
//     prepared verifying keys used to check proofs (see Load / LoadOnce)
//   - Computes hiding-and-binding Pedersen commitments for newly declared
//     asset types and for asset mints (CreateAssetNote, MintAssetNote)
//
// Security Model:
//   - Zero-knowledge proofs are generated and verified using gnark
//     (Groth16, BLS12-381)
//   - Note commitments use a windowed Pedersen hash over the embedded
//     twisted Edwards curve (Jubjub), blinded by a fixed randomness base
//   - All blinding scalars are sampled by wide reduction from crypto/rand,
//     so a single draw is statistically indistinguishable from uniform
//   - Corrupted or truncated parameter blobs abort loading; the protocol
//     must never run against unverifiable parameters
//
// Usage:
//   - Call LoadOnce at process start with the filesystem holding the four
//     parameter blobs, and share the returned store by reference
//   - Construct CreateAssetNote / MintAssetNote per request; both are
//     independent values and safe to use concurrently
package sapling
