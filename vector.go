package dilithium

// vectorNTT transforms every polynomial of v into the NTT domain.
func vectorNTT(v []ringElement) []nttElement {
	out := make([]nttElement, len(v))
	for i := range v {
		out[i] = ntt(v[i])
	}
	return out
}

// matrixVectorMul computes A·v for a row-major k x l matrix a in the NTT
// domain and returns the result in the coefficient domain.
func matrixVectorMul(a []nttElement, v []nttElement, k, l int) []ringElement {
	out := make([]ringElement, k)
	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < l; j++ {
			nttMulAcc(&acc, &a[i*l+j], &v[j])
		}
		out[i] = invNTT(acc)
	}
	return out
}

// scalarVectorMul multiplies every polynomial of v by the polynomial c.
// Both inputs are in the NTT domain; the result is in the coefficient domain.
func scalarVectorMul(c nttElement, v []nttElement) []ringElement {
	out := make([]ringElement, len(v))
	for i := range v {
		out[i] = invNTT(nttMul(c, v[i]))
	}
	return out
}

// vectorAdd adds two vectors of the same length.
func vectorAdd(a, b []ringElement) []ringElement {
	out := make([]ringElement, len(a))
	for i := range a {
		out[i] = polyAdd(a[i], b[i])
	}
	return out
}

// vectorSub subtracts b from a.
func vectorSub(a, b []ringElement) []ringElement {
	out := make([]ringElement, len(a))
	for i := range a {
		out[i] = polySub(a[i], b[i])
	}
	return out
}
