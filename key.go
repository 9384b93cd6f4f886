package dilithium

import (
	"crypto"
	"crypto/subtle"
	"io"
)

// PrivateKey is a Dilithium private key. It is immutable after construction
// and safe for concurrent use.
type PrivateKey struct {
	params *Params
	rho    [rhoSize]byte // Public seed
	key    [keySize]byte // Private seed for signing
	tr     [trSize]byte  // H(pk)
	s1     []ringElement // Secret vector, length l
	s2     []ringElement // Secret vector, length k
	t0     []ringElement // Low bits of t, length k
	t1     []ringElement // High bits of t, length k
	a      []nttElement  // Matrix A in NTT form
}

// PublicKey is a Dilithium public key. It is immutable after construction
// and safe for concurrent use.
type PublicKey struct {
	params *Params
	rho    [rhoSize]byte // Public seed
	t1     []ringElement // High bits of t
	tr     [trSize]byte  // H(pk)
	a      []nttElement  // Matrix A in NTT form
}

// GenerateKey generates a new key pair for p, reading the seed from rand.
func GenerateKey(p *Params, rand io.Reader) (*PrivateKey, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	return NewKeyFromSeed(p, seed[:])
}

// NewKeyFromSeed deterministically derives a key pair for p from a
// SeedSize-byte seed.
func NewKeyFromSeed(p *Params, seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, lengthError(ErrInvalidSeedLength, len(seed), SeedSize)
	}

	rho, rhoPrime, key := expandSeed(seed, p)

	sk := &PrivateKey{
		params: p,
		rho:    rho,
		key:    key,
		a:      expandMatrix(rho[:], p),
	}
	sk.s1, sk.s2 = expandSecret(rhoPrime[:], p)

	// t = A*s1 + s2
	t := vectorAdd(matrixVectorMul(sk.a, vectorNTT(sk.s1), p.k, p.l), sk.s2)

	// t = t1*2^d + t0
	sk.t1 = make([]ringElement, p.k)
	sk.t0 = make([]ringElement, p.k)
	for i := range t {
		for j := 0; j < n; j++ {
			sk.t1[i][j], sk.t0[i][j] = power2Round(t[i][j])
		}
	}

	shake256(sk.tr[:], sk.publicKeyBytes())
	return sk, nil
}

// Params returns the parameter set of the key.
func (sk *PrivateKey) Params() *Params {
	return sk.params
}

func (sk *PrivateKey) publicKeyBytes() []byte {
	return encodePublicKey(sk.params, sk.rho[:], sk.t1)
}

// PublicKey returns the public key corresponding to sk.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{
		params: sk.params,
		rho:    sk.rho,
		t1:     sk.t1,
		tr:     sk.tr,
		a:      sk.a,
	}
}

// Public returns the public key corresponding to sk.
// This implements the crypto.Signer interface.
func (sk *PrivateKey) Public() crypto.PublicKey {
	return sk.PublicKey()
}

// Equal reports whether sk and other encode the same private key.
func (sk *PrivateKey) Equal(other crypto.PrivateKey) bool {
	o, ok := other.(*PrivateKey)
	if !ok || o.params != sk.params {
		return false
	}
	return subtle.ConstantTimeCompare(sk.Bytes(), o.Bytes()) == 1
}

// Bytes returns the encoded private key:
// rho || K || tr || s1 || s2 || t0.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.params
	b := make([]byte, p.PrivateKeySize())
	copy(b[:rhoSize], sk.rho[:])
	copy(b[rhoSize:], sk.key[:])
	copy(b[rhoSize+keySize:], sk.tr[:])

	offset := rhoSize + keySize + trSize
	for i := range sk.s1 {
		packEta(b[offset:], sk.s1[i], p)
		offset += p.encodingSizeEta()
	}
	for i := range sk.s2 {
		packEta(b[offset:], sk.s2[i], p)
		offset += p.encodingSizeEta()
	}
	for i := range sk.t0 {
		packT0(b[offset:], sk.t0[i])
		offset += encodingSizeT0
	}
	return b
}

// NewPrivateKey parses an encoded private key for p.
func NewPrivateKey(p *Params, b []byte) (*PrivateKey, error) {
	if len(b) != p.PrivateKeySize() {
		return nil, lengthError(ErrInvalidPrivateKeyLength, len(b), p.PrivateKeySize())
	}

	sk := &PrivateKey{
		params: p,
		s1:     make([]ringElement, p.l),
		s2:     make([]ringElement, p.k),
		t0:     make([]ringElement, p.k),
	}
	copy(sk.rho[:], b[:rhoSize])
	copy(sk.key[:], b[rhoSize:rhoSize+keySize])
	copy(sk.tr[:], b[rhoSize+keySize:rhoSize+keySize+trSize])

	offset := rhoSize + keySize + trSize
	var err error
	for i := range sk.s1 {
		sk.s1[i], err = unpackEta(b[offset:offset+p.encodingSizeEta()], p)
		if err != nil {
			return nil, err
		}
		offset += p.encodingSizeEta()
	}
	for i := range sk.s2 {
		sk.s2[i], err = unpackEta(b[offset:offset+p.encodingSizeEta()], p)
		if err != nil {
			return nil, err
		}
		offset += p.encodingSizeEta()
	}
	for i := range sk.t0 {
		sk.t0[i] = unpackT0(b[offset : offset+encodingSizeT0])
		offset += encodingSizeT0
	}

	sk.a = expandMatrix(sk.rho[:], p)

	// t1 is not part of the encoding; recover it from A*s1 + s2. The stored
	// t0 and tr must match what s1 and s2 imply.
	t := vectorAdd(matrixVectorMul(sk.a, vectorNTT(sk.s1), p.k, p.l), sk.s2)
	sk.t1 = make([]ringElement, p.k)
	var diff fieldElement
	for i := range t {
		for j := 0; j < n; j++ {
			var t0 fieldElement
			sk.t1[i][j], t0 = power2Round(t[i][j])
			diff |= t0 ^ sk.t0[i][j]
		}
	}
	var tr [trSize]byte
	shake256(tr[:], sk.publicKeyBytes())

	t0OK := subtle.ConstantTimeEq(int32(diff), 0)
	trOK := subtle.ConstantTimeCompare(tr[:], sk.tr[:])
	if t0OK&trOK != 1 {
		return nil, ErrInconsistentPrivateKey
	}

	return sk, nil
}

// Params returns the parameter set of the key.
func (pk *PublicKey) Params() *Params {
	return pk.params
}

// Bytes returns the encoded public key: rho || t1.
func (pk *PublicKey) Bytes() []byte {
	return encodePublicKey(pk.params, pk.rho[:], pk.t1)
}

// Equal reports whether pk and other are the same public key.
func (pk *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	if !ok || o.params != pk.params {
		return false
	}
	if pk.rho != o.rho {
		return false
	}
	for i := range pk.t1 {
		if pk.t1[i] != o.t1[i] {
			return false
		}
	}
	return true
}

// NewPublicKey parses an encoded public key for p.
func NewPublicKey(p *Params, b []byte) (*PublicKey, error) {
	if len(b) != p.PublicKeySize() {
		return nil, lengthError(ErrInvalidPublicKeyLength, len(b), p.PublicKeySize())
	}

	pk := &PublicKey{
		params: p,
		t1:     make([]ringElement, p.k),
	}
	copy(pk.rho[:], b[:rhoSize])

	offset := rhoSize
	for i := range pk.t1 {
		pk.t1[i] = unpackT1(b[offset : offset+encodingSizeT1])
		offset += encodingSizeT1
	}

	pk.a = expandMatrix(pk.rho[:], p)
	shake256(pk.tr[:], b)

	return pk, nil
}

func encodePublicKey(p *Params, rho []byte, t1 []ringElement) []byte {
	b := make([]byte, p.PublicKeySize())
	copy(b[:rhoSize], rho)
	offset := rhoSize
	for i := range t1 {
		packT1(b[offset:], t1[i])
		offset += encodingSizeT1
	}
	return b
}
