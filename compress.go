package dilithium

// power2Round decomposes r into (r1, r0) such that r = r1 * 2^d + r0 mod q.
// Returns r1 (high bits) and r0 (low bits in centered representation, stored
// mod q), with r0 in (-2^(d-1), 2^(d-1)].
func power2Round(r fieldElement) (r1, r0 fieldElement) {
	r1 = r >> d
	r0 = r - r1<<d

	const half = 1 << (d - 1) // 4096

	// If r0 > half, adjust to centered representation
	if r0 > half {
		r0 = fieldSub(r0, 1<<d)
		r1++
	}
	return r1, r0
}

// highBits extracts the high-order bits of r after decomposition by 2*gamma2.
func highBits(r fieldElement, gamma2 uint32) uint32 {
	r1 := int32((r + 127) >> 7)

	if gamma2 == gamma2QMinus1Div32 {
		// gamma2 = (q-1)/32 = 261888
		// Returns ((ceil(r / 128) * 1025 + 2^21) / 2^22) mod 16
		r1 = (r1*1025 + (1 << 21)) >> 22
		return uint32(r1) & 15
	}
	// gamma2 = (q-1)/88 = 95232
	r1 = (r1*11275 + (1 << 23)) >> 24
	// r1 == 44 wraps to 0
	r1 ^= ((43 - r1) >> 31) & r1
	return uint32(r1)
}

// decompose splits r into (r1, r0) where r = r1 * 2*gamma2 + r0 mod q.
// r1 = HighBits(r), r0 = LowBits(r) in signed representation.
// When r - r0 would be q-1, r1 is 0 and r0 is shifted down by one instead.
func decompose(r fieldElement, gamma2 uint32) (r1 uint32, r0 int32) {
	r1 = highBits(r, gamma2)
	r0 = int32(r) - int32(r1)*int32(gamma2)*2
	// Center r0
	r0 -= ((int32(qMinus1Div2) - r0) >> 31) & q
	return r1, r0
}

// lowBits returns the signed low part of decompose.
func lowBits(r fieldElement, gamma2 uint32) int32 {
	_, r0 := decompose(r, gamma2)
	return r0
}

// makeHint returns 1 if adding z to r changes its high bits, 0 otherwise.
func makeHint(z, r fieldElement, gamma2 uint32) fieldElement {
	if highBits(r, gamma2) != highBits(fieldAdd(r, z), gamma2) {
		return 1
	}
	return 0
}

// useHint recovers HighBits(r+z) from r and the hint produced by
// makeHint(z, r), provided ‖z‖∞ <= gamma2.
func useHint(hint, r fieldElement, gamma2 uint32) fieldElement {
	r1, r0 := decompose(r, gamma2)
	if hint == 0 {
		return fieldElement(r1)
	}

	if gamma2 == gamma2QMinus1Div32 {
		// m = 16
		if r0 > 0 {
			return fieldElement((r1 + 1) & 15)
		}
		return fieldElement((r1 - 1) & 15)
	}
	// m = 44 for gamma2 = (q-1)/88
	if r0 > 0 {
		if r1 == 43 {
			return 0
		}
		return fieldElement(r1 + 1)
	}
	if r1 == 0 {
		return 43
	}
	return fieldElement(r1 - 1)
}

// infinityNorm computes |a|, where a is interpreted as signed mod q.
// Returns min(a, q-a).
func infinityNorm(a fieldElement) uint32 {
	v := centered(a)
	// branchless absolute value
	m := v >> 31
	return uint32((v ^ m) - m)
}

// max32 returns the larger of a and b without branching.
func max32(a, b uint32) uint32 {
	// mask is all ones when a < b
	mask := uint32((int64(a) - int64(b)) >> 63)
	return a ^ ((a ^ b) & mask)
}

// polyInfinityNorm returns the maximum absolute value of any coefficient.
// Every coefficient is visited.
func polyInfinityNorm[T ~[n]fieldElement](f T) uint32 {
	var m uint32
	for i := range f {
		m = max32(m, infinityNorm(f[i]))
	}
	return m
}

// vectorInfinityNorm returns the maximum infinity norm across a vector of polynomials.
func vectorInfinityNorm[T ~[n]fieldElement](v []T) uint32 {
	var m uint32
	for i := range v {
		m = max32(m, polyInfinityNorm(v[i]))
	}
	return m
}

// vectorInfinityNormSigned returns the max norm for signed int32 arrays.
func vectorInfinityNormSigned(v [][n]int32) uint32 {
	var m uint32
	for i := range v {
		for _, val := range v[i] {
			s := val >> 31
			m = max32(m, uint32((val^s)-s))
		}
	}
	return m
}

// countOnes counts the number of non-zero coefficients in a vector.
func countOnes[T ~[n]fieldElement](v []T) int {
	count := 0
	for i := range v {
		for j := range v[i] {
			count += int(v[i][j] & 1)
		}
	}
	return count
}
