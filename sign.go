package dilithium

import (
	"crypto"
	"io"
)

// Sign signs digest with the private key.
// This implements the crypto.Signer interface.
//
// For Dilithium, the digest is the message to be signed (not a hash).
// If opts is *SignerOpts, its Context field is used for domain separation.
// A nil rand selects deterministic signing.
func (sk *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	return sk.SignMessage(rand, digest, opts)
}

// SignMessage signs msg with the private key.
// This implements the crypto.MessageSigner interface.
//
// If opts is *SignerOpts, its Context field is used for domain separation.
// Returns an error if opts specifies a hash function, as Dilithium signs
// messages directly.
func (sk *PrivateKey) SignMessage(rand io.Reader, msg []byte, opts crypto.SignerOpts) ([]byte, error) {
	if opts != nil && opts.HashFunc() != 0 {
		return nil, ErrPreHashed
	}
	var context []byte
	if o, ok := opts.(*SignerOpts); ok && o != nil {
		context = o.Context
	}
	return sk.SignWithContext(rand, msg, context)
}

// SignWithContext signs message under the given context string (at most
// 255 bytes). If rand is nil the signature is deterministic in (sk, message,
// context); otherwise 32 bytes are read from rand to randomize the mask.
func (sk *PrivateKey) SignWithContext(rand io.Reader, message, context []byte) ([]byte, error) {
	mPrime, err := formatMessage(message, context)
	if err != nil {
		return nil, err
	}

	var rnd [rndSize]byte
	if rand != nil {
		if _, err := io.ReadFull(rand, rnd[:]); err != nil {
			return nil, err
		}
	}

	sig, err := sk.signInternal(rnd[:], mPrime, maxSignAttempts)
	if err != nil {
		return nil, err
	}
	return sig.Bytes(), nil
}

// SignDeterministic returns the deterministic signature of message under
// context.
func (sk *PrivateKey) SignDeterministic(message, context []byte) ([]byte, error) {
	return sk.SignWithContext(nil, message, context)
}

// signInternal runs the Fiat-Shamir with aborts loop on the formatted message
// M'. Each iteration kappa draws a fresh mask; an attempt is discarded when
// z, the low bits of w - c*s2, c*t0 or the hint weight fall outside their
// bounds. After maxAttempts discarded attempts it gives up with
// ErrSignAttemptsExhausted.
func (sk *PrivateKey) signInternal(rnd, mPrime []byte, maxAttempts int) (*Signature, error) {
	p := sk.params

	mu := messageRepresentative(sk.tr[:], mPrime)

	var rhoPrime [rhoPrimeSize]byte
	shake256(rhoPrime[:], sk.key[:], rnd, mu[:])

	s1NTT := vectorNTT(sk.s1)
	s2NTT := vectorNTT(sk.s2)
	t0NTT := vectorNTT(sk.t0)

	zBound := p.gamma1() - p.beta()
	r0Bound := p.gamma2 - p.beta()

	for kappa := 0; kappa < maxAttempts; kappa++ {
		y := expandMask(rhoPrime[:], kappa, p)
		w := matrixVectorMul(sk.a, vectorNTT(y), p.k, p.l)

		w1 := make([]ringElement, p.k)
		for i := range w {
			for j := 0; j < n; j++ {
				w1[i][j] = fieldElement(highBits(w[i][j], p.gamma2))
			}
		}

		cTilde := hashCommit(mu[:], w1, p)
		cNTT := ntt(sampleChallenge(cTilde, p.tau))

		z := vectorAdd(y, scalarVectorMul(cNTT, s1NTT))
		if vectorInfinityNorm(z) >= zBound {
			continue
		}

		// r = w - c*s2
		r := vectorSub(w, scalarVectorMul(cNTT, s2NTT))
		r0 := make([][n]int32, p.k)
		for i := range r {
			for j := 0; j < n; j++ {
				r0[i][j] = lowBits(r[i][j], p.gamma2)
			}
		}
		if vectorInfinityNormSigned(r0) >= r0Bound {
			continue
		}

		ct0 := scalarVectorMul(cNTT, t0NTT)
		if vectorInfinityNorm(ct0) >= p.gamma2 {
			continue
		}

		// h = MakeHint(-c*t0, w - c*s2 + c*t0)
		h := make([]ringElement, p.k)
		for i := range h {
			for j := 0; j < n; j++ {
				h[i][j] = makeHint(fieldNeg(ct0[i][j]), fieldAdd(r[i][j], ct0[i][j]), p.gamma2)
			}
		}
		if countOnes(h) > p.omega {
			continue
		}

		return &Signature{
			params: p,
			cTilde: cTilde,
			z:      z,
			h:      h,
		}, nil
	}
	return nil, ErrSignAttemptsExhausted
}
