package dilithium

import (
	"bytes"
	"testing"
)

func testSeed(b byte) []byte {
	seed := make([]byte, 64)
	for i := range seed {
		seed[i] = b + byte(i)
	}
	return seed
}

func TestExpandMatrix(t *testing.T) {
	p := Dilithium2()
	rho := testSeed(1)[:rhoSize]

	a1 := expandMatrix(rho, p)
	a2 := expandMatrix(rho, p)
	if len(a1) != p.k*p.l {
		t.Fatalf("matrix has %d cells, want %d", len(a1), p.k*p.l)
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatalf("cell %d differs between runs", i)
		}
		for _, c := range a1[i] {
			if c >= q {
				t.Fatalf("cell %d has coefficient %d >= q", i, c)
			}
		}
	}
	if a1[0] == a1[1] || a1[0] == a1[p.l] {
		t.Error("distinct cells produced identical polynomials")
	}

	other := expandMatrix(testSeed(2)[:rhoSize], p)
	if other[0] == a1[0] {
		t.Error("different rho produced identical matrix cell")
	}
}

func TestSampleBoundedPoly(t *testing.T) {
	seed := testSeed(7)
	for _, eta := range []int{2, 4} {
		seen := make(map[int32]bool)
		for nonce := uint16(0); nonce < 8; nonce++ {
			f := sampleBoundedPoly(seed, eta, nonce)
			if f != sampleBoundedPoly(seed, eta, nonce) {
				t.Fatalf("eta=%d nonce=%d not deterministic", eta, nonce)
			}
			for _, c := range f {
				v := centered(c)
				if v < -int32(eta) || v > int32(eta) {
					t.Fatalf("eta=%d: coefficient %d out of range", eta, v)
				}
				seen[v] = true
			}
		}
		if len(seen) != 2*eta+1 {
			t.Errorf("eta=%d: saw %d distinct values, want %d", eta, len(seen), 2*eta+1)
		}
	}
	if sampleBoundedPoly(seed, 2, 0) == sampleBoundedPoly(seed, 2, 1) {
		t.Error("different nonces produced identical polynomials")
	}
}

func TestExpandSecret(t *testing.T) {
	for _, p := range []*Params{Dilithium2(), Dilithium3(), Dilithium5()} {
		s1, s2 := expandSecret(testSeed(3), p)
		if len(s1) != p.l || len(s2) != p.k {
			t.Fatalf("%s: got lengths %d/%d", p, len(s1), len(s2))
		}
		if norm := vectorInfinityNorm(s1); norm > uint32(p.eta) {
			t.Errorf("%s: ‖s1‖ = %d", p, norm)
		}
		if norm := vectorInfinityNorm(s2); norm > uint32(p.eta) {
			t.Errorf("%s: ‖s2‖ = %d", p, norm)
		}
	}
}

func TestExpandMask(t *testing.T) {
	for _, p := range []*Params{Dilithium2(), Dilithium3()} {
		seed := testSeed(9)
		y0 := expandMask(seed, 0, p)
		y1 := expandMask(seed, 1, p)
		if len(y0) != p.l {
			t.Fatalf("%s: mask length %d", p, len(y0))
		}
		if y0[0] == y1[0] {
			t.Errorf("%s: attempts 0 and 1 produced the same mask", p)
		}
		again := expandMask(seed, 0, p)
		for i := range y0 {
			if y0[i] != again[i] {
				t.Fatalf("%s: mask not deterministic", p)
			}
			for _, c := range y0[i] {
				v := centered(c)
				if v <= -int32(p.gamma1()) || v > int32(p.gamma1()) {
					t.Fatalf("%s: mask coefficient %d out of range", p, v)
				}
			}
		}
	}
}

func TestSampleChallenge(t *testing.T) {
	for _, p := range []*Params{Dilithium2(), Dilithium3(), Dilithium5()} {
		for s := byte(0); s < 10; s++ {
			seed := testSeed(s)[:p.cTildeSize()]
			c := sampleChallenge(seed, p.tau)
			if c != sampleChallenge(seed, p.tau) {
				t.Fatalf("%s: challenge not deterministic", p)
			}
			weight := 0
			for _, v := range c {
				switch v {
				case 0:
				case 1, q - 1:
					weight++
				default:
					t.Fatalf("%s: challenge coefficient %d not in {-1, 0, 1}", p, v)
				}
			}
			if weight != p.tau {
				t.Errorf("%s: challenge weight %d, want %d", p, weight, p.tau)
			}
		}
	}
}

func TestHashCommit(t *testing.T) {
	p := Dilithium2()
	mu := testSeed(4)
	w1 := make([]ringElement, p.k)
	w1[0][0] = 43

	h1 := hashCommit(mu, w1, p)
	if len(h1) != p.cTildeSize() {
		t.Fatalf("commitment length %d, want %d", len(h1), p.cTildeSize())
	}
	if !bytes.Equal(h1, hashCommit(mu, w1, p)) {
		t.Error("commitment not deterministic")
	}
	w1[3][255] = 1
	if bytes.Equal(h1, hashCommit(mu, w1, p)) {
		t.Error("commitment ignores w1")
	}
	if len(hashCommit(mu, make([]ringElement, 8), Dilithium5())) != 64 {
		t.Error("Dilithium5 commitment should be 64 bytes")
	}
}

func TestFormatMessage(t *testing.T) {
	m, err := formatMessage([]byte("msg"), []byte("ctx"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(m, []byte("\x00\x03ctxmsg")) {
		t.Errorf("formatMessage = %q", m)
	}
	if _, err := formatMessage(nil, make([]byte, 256)); err != ErrContextTooLong {
		t.Errorf("got %v, want ErrContextTooLong", err)
	}
}
