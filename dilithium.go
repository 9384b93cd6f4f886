// Package dilithium implements the CRYSTALS-Dilithium lattice-based digital
// signature scheme.
//
// Keys, signatures and all intermediate values are derived deterministically
// from seeds through SHAKE128/SHAKE256, so key generation from a seed and
// deterministic signing are reproducible byte for byte. Three parameter sets
// are provided:
//   - Dilithium2: NIST security level 2
//   - Dilithium3: NIST security level 3
//   - Dilithium5: NIST security level 5
//
// Basic usage:
//
//	key, err := dilithium.GenerateKey(dilithium.Dilithium2(), rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	sig, err := key.Sign(nil, message, nil) // nil reader: deterministic
//	if err != nil {
//	    // handle error
//	}
//	valid := key.PublicKey().Verify(sig, message, nil)
//
// The byte-oriented functions KeyGenerate, Sign and Verify operate directly on
// encoded keys and signatures.
package dilithium

import "crypto"

// Global ring constants.
const (
	// n is the number of coefficients in polynomials.
	n = 256

	// q is the modulus: q = 2^23 - 2^13 + 1 = 8380417
	q = 8380417

	// d is the number of dropped bits from t.
	d = 13

	// SeedSize is the size of the random seed used for key generation.
	SeedSize = 32
)

// Derived constants.
const (
	qMinus1Div2 = (q - 1) / 2

	gamma2QMinus1Div88 = (q - 1) / 88
	gamma2QMinus1Div32 = (q - 1) / 32
)

// Fixed sizes of key material fields.
const (
	rhoSize      = 32
	keySize      = 32
	trSize       = 32
	rhoPrimeSize = 64
	muSize       = 64
	rndSize      = 32

	t1Bits = 23 - d // 10
	t0Bits = d

	encodingSizeT1 = n * t1Bits / 8
	encodingSizeT0 = n * t0Bits / 8
)

// maxSignAttempts bounds the rejection loop in Sign. The mask nonce
// kappa*l+i is 16 bits wide, so maxSignAttempts*l must stay <= 1<<16.
const maxSignAttempts = 8192

// SignerOpts implements crypto.SignerOpts for Dilithium signing operations.
// It allows specifying an optional context string for domain separation.
type SignerOpts struct {
	// Context is an optional context string for domain separation (max 255 bytes).
	// If nil, no context is used.
	Context []byte
}

// HashFunc returns 0 to indicate that Dilithium does not use pre-hashing.
// Dilithium signs messages directly rather than message digests.
func (opts *SignerOpts) HashFunc() crypto.Hash {
	return 0
}

// Compile-time interface assertions for crypto.Signer.
var _ crypto.Signer = (*PrivateKey)(nil)
