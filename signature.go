package dilithium

// Signature is a decoded Dilithium signature (c-tilde, z, h).
type Signature struct {
	params *Params
	cTilde []byte
	z      []ringElement // length l
	h      []ringElement // length k, coefficients 0 or 1
}

// ParseSignature decodes sig for p. It fails with a format error if the
// length is wrong or the hint encoding is malformed; it does not check the
// signature against any key.
func ParseSignature(p *Params, sig []byte) (*Signature, error) {
	if len(sig) != p.SignatureSize() {
		return nil, lengthError(ErrInvalidSignatureLength, len(sig), p.SignatureSize())
	}

	s := &Signature{
		params: p,
		cTilde: append([]byte(nil), sig[:p.cTildeSize()]...),
		z:      make([]ringElement, p.l),
		h:      make([]ringElement, p.k),
	}
	offset := p.cTildeSize()
	for i := range s.z {
		s.z[i] = unpackZ(sig[offset:offset+p.encodingSizeZ()], p)
		offset += p.encodingSizeZ()
	}
	if err := unpackHint(sig[offset:], s.h, p.omega); err != nil {
		return nil, err
	}
	return s, nil
}

// Bytes returns the encoded signature: c-tilde || z || h.
func (s *Signature) Bytes() []byte {
	p := s.params
	b := make([]byte, p.SignatureSize())
	copy(b, s.cTilde)
	offset := p.cTildeSize()
	for i := range s.z {
		packZ(b[offset:], s.z[i], p)
		offset += p.encodingSizeZ()
	}
	packHint(b[offset:], s.h, p.omega)
	return b
}

// HintWeight returns the number of set hint bits.
func (s *Signature) HintWeight() int {
	return countOnes(s.h)
}

// withinBounds reports whether ‖z‖∞ < gamma1 - beta and the hint weight is
// at most omega.
func (s *Signature) withinBounds() bool {
	p := s.params
	zOK := vectorInfinityNorm(s.z) < p.gamma1()-p.beta()
	hOK := countOnes(s.h) <= p.omega
	return zOK && hOK
}
