package dilithium

import (
	"encoding/binary"
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// newTestPRNG returns a reproducible byte stream keyed on label.
func newTestPRNG(t testing.TB, label string) *utils.KeyedPRNG {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte(label))
	if err != nil {
		t.Fatalf("NewKeyedPRNG: %v", err)
	}
	return prng
}

// randomPoly draws a polynomial with coefficients in [0, q).
func randomPoly(t testing.TB, prng *utils.KeyedPRNG) ringElement {
	t.Helper()
	var buf [4 * n]byte
	if _, err := prng.Read(buf[:]); err != nil {
		t.Fatalf("prng read: %v", err)
	}
	var f ringElement
	for i := range f {
		f[i] = fieldElement(binary.LittleEndian.Uint32(buf[4*i:]) % q)
	}
	return f
}

// randomSmallPoly draws a polynomial with coefficients in [-bound, bound].
func randomSmallPoly(t testing.TB, prng *utils.KeyedPRNG, bound int32) ringElement {
	t.Helper()
	var buf [4 * n]byte
	if _, err := prng.Read(buf[:]); err != nil {
		t.Fatalf("prng read: %v", err)
	}
	var f ringElement
	for i := range f {
		v := int32(binary.LittleEndian.Uint32(buf[4*i:])%uint32(2*bound+1)) - bound
		f[i] = fieldFromInt(v)
	}
	return f
}

// schoolbookMul multiplies in Z_q[X]/(X^n + 1) the slow way.
func schoolbookMul(a, b ringElement) ringElement {
	var acc [n]int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := int64(a[i]) * int64(b[j]) % q
			if i+j < n {
				acc[i+j] = (acc[i+j] + prod) % q
			} else {
				acc[i+j-n] = (acc[i+j-n] - prod + q) % q
			}
		}
	}
	var c ringElement
	for i := range c {
		c[i] = fieldElement(acc[i])
	}
	return c
}

// polyMul multiplies two polynomials in Z_q[X]/(X^n + 1).
func polyMul(a, b ringElement) ringElement {
	return invNTT(nttMul(ntt(a), ntt(b)))
}

func TestFieldArithmetic(t *testing.T) {
	if got := fieldAdd(q-1, 1); got != 0 {
		t.Errorf("fieldAdd(q-1, 1) = %d, want 0", got)
	}
	if got := fieldSub(0, 1); got != q-1 {
		t.Errorf("fieldSub(0, 1) = %d, want q-1", got)
	}
	if got := fieldNeg(0); got != 0 {
		t.Errorf("fieldNeg(0) = %d, want 0", got)
	}
	// fieldMul carries a factor R^-1; multiplying by R^2 mod q cancels it.
	if got := fieldMul(fieldMul(3, 5), montR2); got != 15 {
		t.Errorf("3*5 = %d, want 15", got)
	}
	if got := fieldMul(fieldMul(q-1, q-1), montR2); got != 1 {
		t.Errorf("(-1)*(-1) = %d, want 1", got)
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		in   fieldElement
		want int32
	}{
		{0, 0},
		{1, 1},
		{qMinus1Div2, qMinus1Div2},
		{qMinus1Div2 + 1, -qMinus1Div2},
		{q - 1, -1},
	}
	for _, tt := range tests {
		if got := centered(tt.in); got != tt.want {
			t.Errorf("centered(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	for _, v := range []int32{-5, 0, 7, -qMinus1Div2} {
		if got := centered(fieldFromInt(v)); got != v {
			t.Errorf("centered(fieldFromInt(%d)) = %d", v, got)
		}
	}
}

func TestNTTRoundTrip(t *testing.T) {
	prng := newTestPRNG(t, "ntt round trip")
	for i := 0; i < 50; i++ {
		f := randomPoly(t, prng)
		if got := invNTT(ntt(f)); got != f {
			t.Fatalf("invNTT(ntt(f)) != f on iteration %d", i)
		}
	}

	var one ringElement
	one[0] = 1
	if got := invNTT(ntt(one)); got != one {
		t.Error("invNTT(ntt(1)) != 1")
	}
}

func TestPolyMulSchoolbook(t *testing.T) {
	prng := newTestPRNG(t, "schoolbook")
	for i := 0; i < 5; i++ {
		a := randomPoly(t, prng)
		b := randomSmallPoly(t, prng, 4)
		if got, want := polyMul(a, b), schoolbookMul(a, b); got != want {
			t.Fatalf("polyMul disagrees with schoolbook on iteration %d", i)
		}
	}

	// X^255 * X = X^256 = -1
	var x, x255 ringElement
	x[1] = 1
	x255[n-1] = 1
	got := polyMul(x255, x)
	var want ringElement
	want[0] = q - 1
	if got != want {
		t.Error("X^255 * X != -1")
	}
}

func TestPolyMulLattigo(t *testing.T) {
	r, err := ring.NewRing(n, []uint64{q})
	if err != nil {
		t.Fatalf("ring.NewRing: %v", err)
	}

	prng := newTestPRNG(t, "lattigo")
	for iter := 0; iter < 20; iter++ {
		a := randomPoly(t, prng)
		b := randomPoly(t, prng)

		pa, pb, pc := r.NewPoly(), r.NewPoly(), r.NewPoly()
		for i := 0; i < n; i++ {
			pa.Coeffs[0][i] = uint64(a[i])
			pb.Coeffs[0][i] = uint64(b[i])
		}
		r.MForm(pa, pa)
		r.MForm(pb, pb)
		r.NTT(pa, pa)
		r.NTT(pb, pb)
		r.MulCoeffsMontgomery(pa, pb, pc)
		r.InvNTT(pc, pc)
		r.InvMForm(pc, pc)

		got := polyMul(a, b)
		for i := 0; i < n; i++ {
			if uint64(got[i]) != pc.Coeffs[0][i] {
				t.Fatalf("iteration %d coefficient %d: got %d, lattigo %d", iter, i, got[i], pc.Coeffs[0][i])
			}
		}
	}
}

func TestMatrixVectorMul(t *testing.T) {
	prng := newTestPRNG(t, "matrix")
	const k, l = 2, 3
	var a []nttElement
	var aCoeff []ringElement
	for i := 0; i < k*l; i++ {
		f := randomPoly(t, prng)
		aCoeff = append(aCoeff, f)
		a = append(a, ntt(f))
	}
	v := make([]ringElement, l)
	for j := range v {
		v[j] = randomSmallPoly(t, prng, 2)
	}

	got := matrixVectorMul(a, vectorNTT(v), k, l)
	for i := 0; i < k; i++ {
		var want ringElement
		for j := 0; j < l; j++ {
			want = polyAdd(want, schoolbookMul(aCoeff[i*l+j], v[j]))
		}
		if got[i] != want {
			t.Errorf("row %d mismatch", i)
		}
	}
}

func BenchmarkNTT(b *testing.B) {
	prng := newTestPRNG(b, "bench")
	f := randomPoly(b, prng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		invNTT(ntt(f))
	}
}
