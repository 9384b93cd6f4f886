package dilithium

// fieldElement is an integer modulo q, always in reduced form [0, q).
type fieldElement uint32

// ringElement is a polynomial with n coefficients in Z_q.
type ringElement [n]fieldElement

// nttElement is the NTT representation of a polynomial.
type nttElement [n]fieldElement

// Montgomery form constants.
const (
	// qNegInv = -q^(-1) mod 2^32
	qNegInv = 4236238847
	// montR2 = 2^64 mod q (Montgomery R^2)
	montR2 = 2365951
	// nInvMont = n^(-1) * R mod q, so fieldMul(x, nInvMont) = x/n.
	nInvMont = 16382
)

// fieldReduceOnce reduces a value < 2q to [0, q).
func fieldReduceOnce(a uint32) fieldElement {
	// If a >= q, subtract q
	x := a - q
	// If underflow (a < q), x has high bit set
	x += (x >> 31) * q
	return fieldElement(x)
}

// fieldAdd returns (a + b) mod q.
func fieldAdd(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) + uint32(b))
}

// fieldSub returns (a - b) mod q.
func fieldSub(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) - uint32(b) + q)
}

// fieldNeg returns -a mod q.
func fieldNeg(a fieldElement) fieldElement {
	return fieldSub(0, a)
}

// fieldReduce performs Montgomery reduction: returns a * R^(-1) mod q
// where a < q * 2^32.
func fieldReduce(a uint64) fieldElement {
	t := uint32(a) * qNegInv
	return fieldReduceOnce(uint32((a + uint64(t)*q) >> 32))
}

// fieldMul returns a * b * R^(-1) mod q.
func fieldMul(a, b fieldElement) fieldElement {
	return fieldReduce(uint64(a) * uint64(b))
}

// fieldFromInt maps a small signed integer into [0, q).
func fieldFromInt(v int32) fieldElement {
	return fieldReduceOnce(uint32(v + q))
}

// centered returns the representative of a in (-q/2, q/2].
func centered(a fieldElement) int32 {
	v := int32(a)
	// subtract q when a > (q-1)/2
	v -= ((qMinus1Div2 - v) >> 31) & q
	return v
}

// polyAdd adds two polynomials coefficient-wise.
func polyAdd[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

// polySub subtracts two polynomials coefficient-wise.
func polySub[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}

// polyNeg negates every coefficient.
func polyNeg[T ~[n]fieldElement](a T) (c T) {
	for i := range c {
		c[i] = fieldNeg(a[i])
	}
	return c
}
