package dilithium

// KeyGenerate derives an encoded key pair for p from a SeedSize-byte seed.
func KeyGenerate(p *Params, seed []byte) (publicKey, privateKey []byte, err error) {
	sk, err := NewKeyFromSeed(p, seed)
	if err != nil {
		return nil, nil, err
	}
	return sk.publicKeyBytes(), sk.Bytes(), nil
}

// Sign returns the deterministic signature of message under the encoded
// private key, with an empty context. A private key of the wrong length or
// with out-of-range secret coefficients is a format error.
func Sign(p *Params, privateKey, message []byte) ([]byte, error) {
	sk, err := NewPrivateKey(p, privateKey)
	if err != nil {
		return nil, err
	}
	return sk.SignWithContext(nil, message, nil)
}

// Verify checks an encoded signature of message under the encoded public
// key, with an empty context. It returns a non-nil error only when the public
// key or signature is malformed (see ErrFormat); a well-formed signature that
// does not verify yields false and a nil error.
func Verify(p *Params, publicKey, message, signature []byte) (bool, error) {
	pk, err := NewPublicKey(p, publicKey)
	if err != nil {
		return false, err
	}
	s, err := ParseSignature(p, signature)
	if err != nil {
		return false, err
	}
	return pk.VerifySignature(s, message, nil), nil
}
