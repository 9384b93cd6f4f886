package dilithium

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// SHAKE rates in bytes.
const (
	shake128Rate = 168
	shake256Rate = 136
)

// domainMatrix is appended to every matrix cell seed to separate it from
// other SHAKE128 inputs.
const domainMatrix = 0x01

// matrixRejectBound is the largest multiple of q not exceeding 2^32. 32-bit
// words at or above it are discarded so that w mod q is uniform.
const matrixRejectBound = (1 << 32) / q * q

// shake256 absorbs parts in order and squeezes len(out) bytes into out.
func shake256(out []byte, parts ...[]byte) {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	h.Read(out)
}

// expandSeed derives (rho, rho', K) from the key generation seed. The matrix
// dimensions are absorbed after the seed so that the same seed yields
// unrelated keys at different levels.
func expandSeed(seed []byte, p *Params) (rho [rhoSize]byte, rhoPrime [rhoPrimeSize]byte, key [keySize]byte) {
	var expanded [rhoSize + rhoPrimeSize + keySize]byte
	shake256(expanded[:], seed, []byte{byte(p.k), byte(p.l)})
	copy(rho[:], expanded[:rhoSize])
	copy(rhoPrime[:], expanded[rhoSize:rhoSize+rhoPrimeSize])
	copy(key[:], expanded[rhoSize+rhoPrimeSize:])
	return rho, rhoPrime, key
}

// sampleUniformPoly generates a uniformly random polynomial for matrix cell
// (row, col), using rejection sampling of 32-bit little-endian words from
// SHAKE128(rho || row || col || domainMatrix). The result is used directly
// as an NTT-domain element.
func sampleUniformPoly(rho []byte, row, col byte) nttElement {
	h := sha3.NewShake128()
	h.Write(rho)
	h.Write([]byte{row, col, domainMatrix})

	var buf [shake128Rate]byte
	var a nttElement
	j := 0

	for j < n {
		h.Read(buf[:])
		for i := 0; i+4 <= len(buf) && j < n; i += 4 {
			w := binary.LittleEndian.Uint32(buf[i:])
			if w < matrixRejectBound {
				a[j] = fieldElement(w % q)
				j++
			}
		}
	}
	return a
}

// expandMatrix derives the public k x l matrix A, row-major, in NTT form.
func expandMatrix(rho []byte, p *Params) []nttElement {
	a := make([]nttElement, p.k*p.l)
	for i := 0; i < p.k; i++ {
		for j := 0; j < p.l; j++ {
			a[i*p.l+j] = sampleUniformPoly(rho, byte(i), byte(j))
		}
	}
	return a
}

// sampleBoundedPoly generates a polynomial with coefficients in [-eta, eta]
// using rejection sampling of 4-bit nibbles from SHAKE256(seed || nonce).
func sampleBoundedPoly(seed []byte, eta int, nonce uint16) ringElement {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{byte(nonce), byte(nonce >> 8)})

	var buf [shake256Rate]byte
	var a ringElement
	j := 0
	offset := 0

	h.Read(buf[:])

	for j < n {
		if offset >= len(buf) {
			h.Read(buf[:])
			offset = 0
		}

		z0 := buf[offset] & 0x0f
		z1 := buf[offset] >> 4
		offset++

		if eta == 2 {
			// For eta=2: valid values are 0-14, taken mod 5 and mapped to 2,1,0,-1,-2
			if z0 < 15 {
				a[j] = fieldFromInt(2 - int32(z0%5))
				j++
			}
			if j < n && z1 < 15 {
				a[j] = fieldFromInt(2 - int32(z1%5))
				j++
			}
		} else { // eta == 4
			// For eta=4: valid values are 0-8 (mapped to 4,3,2,1,0,-1,-2,-3,-4)
			if z0 <= 8 {
				a[j] = fieldFromInt(4 - int32(z0))
				j++
			}
			if j < n && z1 <= 8 {
				a[j] = fieldFromInt(4 - int32(z1))
				j++
			}
		}
	}
	return a
}

// expandSecret derives the secret vectors s1 (length l) and s2 (length k).
func expandSecret(rhoPrime []byte, p *Params) (s1, s2 []ringElement) {
	s1 = make([]ringElement, p.l)
	s2 = make([]ringElement, p.k)
	for i := range s1 {
		s1[i] = sampleBoundedPoly(rhoPrime, p.eta, uint16(i))
	}
	for i := range s2 {
		s2[i] = sampleBoundedPoly(rhoPrime, p.eta, uint16(p.l+i))
	}
	return s1, s2
}

// expandMask derives the masking vector y for signing attempt kappa. Each
// coefficient lies in (-gamma1, gamma1].
func expandMask(rhoPrime []byte, kappa int, p *Params) []ringElement {
	y := make([]ringElement, p.l)
	buf := make([]byte, p.encodingSizeZ())
	for i := range y {
		nonce := uint16(kappa*p.l + i)
		shake256(buf, rhoPrime, []byte{byte(nonce), byte(nonce >> 8)})
		y[i] = unpackPolySigned(buf, p.zBits(), p.gamma1())
	}
	return y
}

// sampleChallenge generates the challenge polynomial c with tau non-zero
// coefficients in {-1, 1}, placed by a Fisher-Yates shuffle driven by
// SHAKE256(seed).
func sampleChallenge(seed []byte, tau int) ringElement {
	h := sha3.NewShake256()
	h.Write(seed)

	var buf [shake256Rate]byte
	h.Read(buf[:])

	// First 8 bytes encode sign bits
	signs := binary.LittleEndian.Uint64(buf[:8])
	offset := 8

	var c ringElement
	for i := n - tau; i < n; i++ {
		// Sample j uniformly from [0, i]
		var j byte
		for {
			if offset >= len(buf) {
				h.Read(buf[:])
				offset = 0
			}
			j = buf[offset]
			offset++
			if int(j) <= i {
				break
			}
		}

		// Swap c[i] and c[j], then set c[j] to ±1
		c[i] = c[j]
		c[j] = fieldFromInt(1 - 2*int32(signs&1))
		signs >>= 1
	}
	return c
}

// messageRepresentative computes mu = SHAKE256(tr || M').
func messageRepresentative(tr, mPrime []byte) [muSize]byte {
	var mu [muSize]byte
	shake256(mu[:], tr, mPrime)
	return mu
}

// hashCommit computes the commitment hash c-tilde = SHAKE256(mu || w1), where
// w1 is packed at the level's w1 width. It is used both to derive the
// challenge when signing and to recompute it when verifying.
func hashCommit(mu []byte, w1 []ringElement, p *Params) []byte {
	h := sha3.NewShake256()
	h.Write(mu)
	buf := make([]byte, p.encodingSizeW1())
	for i := range w1 {
		packPoly(buf, w1[i], p.w1Bits())
		h.Write(buf)
	}
	cTilde := make([]byte, p.cTildeSize())
	h.Read(cTilde)
	return cTilde
}

// formatMessage builds M' = 0 || len(ctx) || ctx || msg.
func formatMessage(message, context []byte) ([]byte, error) {
	if len(context) > 255 {
		return nil, ErrContextTooLong
	}
	mPrime := make([]byte, 2+len(context)+len(message))
	mPrime[0] = 0
	mPrime[1] = byte(len(context))
	copy(mPrime[2:], context)
	copy(mPrime[2+len(context):], message)
	return mPrime, nil
}
