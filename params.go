package dilithium

import "fmt"

// Params is an immutable Dilithium parameter set. The zero value is not
// usable; obtain a parameter set from Dilithium2, Dilithium3, Dilithium5 or
// ParamsForLevel.
type Params struct {
	name       string
	level      int
	k, l       int    // matrix A is k x l
	eta        int    // secret coefficient bound
	gamma1Bits int    // gamma1 = 2^gamma1Bits
	gamma2     uint32 // low-order rounding range
	tau        int    // number of ±1 coefficients in c
	omega      int    // maximum hint weight
	lambda     int    // collision strength of c-tilde, in bits
}

var (
	dilithium2 = &Params{
		name:       "Dilithium2",
		level:      2,
		k:          4,
		l:          4,
		eta:        2,
		gamma1Bits: 17,
		gamma2:     gamma2QMinus1Div88,
		tau:        39,
		omega:      80,
		lambda:     128,
	}
	dilithium3 = &Params{
		name:       "Dilithium3",
		level:      3,
		k:          6,
		l:          5,
		eta:        4,
		gamma1Bits: 19,
		gamma2:     gamma2QMinus1Div32,
		tau:        49,
		omega:      55,
		lambda:     192,
	}
	dilithium5 = &Params{
		name:       "Dilithium5",
		level:      5,
		k:          8,
		l:          7,
		eta:        2,
		gamma1Bits: 19,
		gamma2:     gamma2QMinus1Div32,
		tau:        60,
		omega:      75,
		lambda:     256,
	}
)

// Dilithium2 returns the parameter set for NIST security level 2.
func Dilithium2() *Params { return dilithium2 }

// Dilithium3 returns the parameter set for NIST security level 3.
func Dilithium3() *Params { return dilithium3 }

// Dilithium5 returns the parameter set for NIST security level 5.
func Dilithium5() *Params { return dilithium5 }

// ParamsForLevel returns the parameter set for the given NIST security level
// (2, 3 or 5).
func ParamsForLevel(level int) (*Params, error) {
	switch level {
	case 2:
		return dilithium2, nil
	case 3:
		return dilithium3, nil
	case 5:
		return dilithium5, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedLevel, level)
}

// Name returns the name of the parameter set, such as "Dilithium2".
func (p *Params) Name() string { return p.name }

// Level returns the NIST security level.
func (p *Params) Level() int { return p.level }

func (p *Params) String() string { return p.name }

// K returns the number of rows of the public matrix.
func (p *Params) K() int { return p.k }

// L returns the number of columns of the public matrix.
func (p *Params) L() int { return p.l }

// Eta returns the bound on secret key coefficients.
func (p *Params) Eta() int { return p.eta }

// Tau returns the number of non-zero coefficients of a challenge.
func (p *Params) Tau() int { return p.tau }

// Omega returns the maximum number of set hint bits in a signature.
func (p *Params) Omega() int { return p.omega }

// Gamma1 returns the masking range bound.
func (p *Params) Gamma1() int { return 1 << p.gamma1Bits }

// Gamma2 returns the low-order rounding range.
func (p *Params) Gamma2() int { return int(p.gamma2) }

// Beta returns tau*eta, the bound on ‖c·s‖∞.
func (p *Params) Beta() int { return p.tau * p.eta }

// D returns the number of bits dropped from t.
func (p *Params) D() int { return d }

func (p *Params) gamma1() uint32 { return 1 << p.gamma1Bits }

func (p *Params) beta() uint32 { return uint32(p.tau * p.eta) }

// cTildeSize is the size in bytes of the commitment hash.
func (p *Params) cTildeSize() int { return p.lambda / 4 }

// etaBits is the width of one packed secret coefficient.
func (p *Params) etaBits() int {
	if p.eta == 2 {
		return 3
	}
	return 4
}

// zBits is the width of one packed response coefficient.
func (p *Params) zBits() int { return p.gamma1Bits + 1 }

// w1Bits is the width of one packed HighBits coefficient.
func (p *Params) w1Bits() int {
	if p.gamma2 == gamma2QMinus1Div88 {
		return 6
	}
	return 4
}

func (p *Params) encodingSizeEta() int { return n * p.etaBits() / 8 }

func (p *Params) encodingSizeZ() int { return n * p.zBits() / 8 }

func (p *Params) encodingSizeW1() int { return n * p.w1Bits() / 8 }

// PublicKeySize returns the size in bytes of an encoded public key.
func (p *Params) PublicKeySize() int {
	return rhoSize + p.k*encodingSizeT1
}

// PrivateKeySize returns the size in bytes of an encoded private key.
func (p *Params) PrivateKeySize() int {
	return rhoSize + keySize + trSize + (p.l+p.k)*p.encodingSizeEta() + p.k*encodingSizeT0
}

// SignatureSize returns the size in bytes of an encoded signature.
func (p *Params) SignatureSize() int {
	return p.cTildeSize() + p.l*p.encodingSizeZ() + p.omega + p.k
}
