package dilithium

import "crypto/subtle"

// Verify reports whether sig is a valid signature of message under context
// by pk. Malformed signatures are reported as invalid.
func (pk *PublicKey) Verify(sig, message, context []byte) bool {
	s, err := ParseSignature(pk.params, sig)
	if err != nil {
		return false
	}
	return pk.VerifySignature(s, message, context)
}

// VerifySignature reports whether the decoded signature s is valid for
// message under context.
func (pk *PublicKey) VerifySignature(s *Signature, message, context []byte) bool {
	mPrime, err := formatMessage(message, context)
	if err != nil {
		return false
	}
	return pk.verifyInternal(s, mPrime)
}

// verifyInternal checks s against the formatted message M'.
func (pk *PublicKey) verifyInternal(s *Signature, mPrime []byte) bool {
	p := pk.params
	if s.params != p || !s.withinBounds() {
		return false
	}

	mu := messageRepresentative(pk.tr[:], mPrime)

	cNTT := ntt(sampleChallenge(s.cTilde, p.tau))
	zNTT := vectorNTT(s.z)

	w1 := make([]ringElement, p.k)
	for i := 0; i < p.k; i++ {
		// w' = A*z - c*t1*2^d
		var t1Scaled ringElement
		for j := 0; j < n; j++ {
			t1Scaled[j] = pk.t1[i][j] << d
		}
		var acc nttElement
		for j := 0; j < p.l; j++ {
			nttMulAcc(&acc, &pk.a[i*p.l+j], &zNTT[j])
		}
		acc = polySub(acc, nttMul(cNTT, ntt(t1Scaled)))
		wApprox := invNTT(acc)

		for j := 0; j < n; j++ {
			w1[i][j] = useHint(s.h[i][j], wApprox[j], p.gamma2)
		}
	}

	cTildeCheck := hashCommit(mu[:], w1, p)
	return subtle.ConstantTimeCompare(s.cTilde, cTildeCheck) == 1
}
