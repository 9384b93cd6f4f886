package dilithium

// packPoly packs the n coefficients of f, each in [0, 2^bits), into
// b[:n*bits/8], least significant bits first.
func packPoly(b []byte, f ringElement, bits int) {
	var acc uint64
	var accBits int
	idx := 0
	for i := 0; i < n; i++ {
		acc |= uint64(f[i]) << accBits
		accBits += bits
		for accBits >= 8 {
			b[idx] = byte(acc)
			idx++
			acc >>= 8
			accBits -= 8
		}
	}
}

// unpackPoly unpacks n coefficients of width bits from b.
func unpackPoly(b []byte, bits int) ringElement {
	var f ringElement
	mask := uint64(1)<<bits - 1
	var acc uint64
	var accBits int
	idx := 0
	for i := 0; i < n; i++ {
		for accBits < bits {
			acc |= uint64(b[idx]) << accBits
			idx++
			accBits += 8
		}
		f[i] = fieldElement(acc & mask)
		acc >>= bits
		accBits -= bits
	}
	return f
}

// packPolySigned packs a polynomial whose coefficients lie in
// [bound-2^bits+1, bound] by storing bound - coeff.
func packPolySigned(b []byte, f ringElement, bits int, bound uint32) {
	var g ringElement
	for i := range f {
		g[i] = fieldSub(fieldElement(bound), f[i])
	}
	packPoly(b, g, bits)
}

// unpackPolySigned reverses packPolySigned.
func unpackPolySigned(b []byte, bits int, bound uint32) ringElement {
	f := unpackPoly(b, bits)
	for i := range f {
		f[i] = fieldSub(fieldElement(bound), f[i])
	}
	return f
}

// packEta packs a secret polynomial with coefficients in [-eta, eta].
func packEta(b []byte, f ringElement, p *Params) {
	packPolySigned(b, f, p.etaBits(), uint32(p.eta))
}

// unpackEta unpacks a secret polynomial, rejecting packed values above 2*eta.
func unpackEta(b []byte, p *Params) (ringElement, error) {
	raw := unpackPoly(b, p.etaBits())
	var bad fieldElement
	for i := range raw {
		// high bit set when raw[i] > 2*eta
		bad |= (fieldElement(2*p.eta) - raw[i]) >> 31
	}
	if bad != 0 {
		return ringElement{}, ErrInvalidEtaEncoding
	}
	var f ringElement
	for i := range raw {
		f[i] = fieldSub(fieldElement(p.eta), raw[i])
	}
	return f, nil
}

// packT1 packs a polynomial with 10-bit coefficients (for public key t1).
func packT1(b []byte, f ringElement) {
	packPoly(b, f, t1Bits)
}

// unpackT1 unpacks a polynomial with 10-bit coefficients.
func unpackT1(b []byte) ringElement {
	return unpackPoly(b, t1Bits)
}

// packT0 packs a polynomial with 13-bit signed coefficients (for private key t0).
// Coefficients are in [-(2^12-1), 2^12].
func packT0(b []byte, f ringElement) {
	packPolySigned(b, f, t0Bits, 1<<(d-1))
}

// unpackT0 unpacks a polynomial with 13-bit signed coefficients.
func unpackT0(b []byte) ringElement {
	return unpackPolySigned(b, t0Bits, 1<<(d-1))
}

// packZ packs a response polynomial with coefficients in (-gamma1, gamma1].
func packZ(b []byte, f ringElement, p *Params) {
	packPolySigned(b, f, p.zBits(), p.gamma1())
}

// unpackZ unpacks a response polynomial.
func unpackZ(b []byte, p *Params) ringElement {
	return unpackPolySigned(b, p.zBits(), p.gamma1())
}

// packHint packs the hint vector into b[:omega+k]. The first omega bytes list
// the positions of set bits, block by block; byte omega+i holds the running
// count of positions after block i. The caller guarantees weight <= omega.
func packHint[T ~[n]fieldElement](b []byte, hints []T, omega int) {
	k := len(hints)
	clear(b[:omega+k])
	idx := 0
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			if hints[i][j] != 0 {
				b[idx] = byte(j)
				idx++
			}
		}
		b[omega+i] = byte(idx)
	}
}

// unpackHint unpacks the hint vector from b, rejecting counts that decrease
// or exceed omega, positions that are not strictly increasing within a
// block, and non-zero padding.
func unpackHint[T ~[n]fieldElement](b []byte, hints []T, omega int) error {
	k := len(hints)
	idx := 0
	for i := 0; i < k; i++ {
		limit := int(b[omega+i])
		if limit < idx || limit > omega {
			return ErrInvalidHintEncoding
		}
		first := idx
		for ; idx < limit; idx++ {
			pos := b[idx]
			if idx > first && b[idx-1] >= pos {
				return ErrInvalidHintEncoding
			}
			hints[i][pos] = 1
		}
	}
	// Remaining bytes must be zero
	for ; idx < omega; idx++ {
		if b[idx] != 0 {
			return ErrInvalidHintEncoding
		}
	}
	return nil
}
