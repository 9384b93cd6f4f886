package dilithium

import (
	"errors"
	"fmt"
)

// ErrFormat is the parent of every decoding error: errors.Is(err, ErrFormat)
// reports whether err was caused by malformed input bytes rather than by a
// cryptographic condition.
var ErrFormat = errors.New("dilithium: malformed encoding")

// Decoding errors.
var (
	ErrInvalidSeedLength       = fmt.Errorf("%w: invalid seed length", ErrFormat)
	ErrInvalidPublicKeyLength  = fmt.Errorf("%w: invalid public key length", ErrFormat)
	ErrInvalidPrivateKeyLength = fmt.Errorf("%w: invalid private key length", ErrFormat)
	ErrInvalidSignatureLength  = fmt.Errorf("%w: invalid signature length", ErrFormat)
	ErrInvalidEtaEncoding      = fmt.Errorf("%w: invalid eta encoding", ErrFormat)
	ErrInvalidHintEncoding     = fmt.Errorf("%w: invalid hint encoding", ErrFormat)
	ErrInconsistentPrivateKey  = fmt.Errorf("%w: private key t0 or tr does not match s1, s2", ErrFormat)
)

var (
	// ErrContextTooLong is returned when a context string exceeds 255 bytes.
	ErrContextTooLong = errors.New("dilithium: context too long")

	// ErrPreHashed is returned when SignerOpts request a pre-hash function.
	ErrPreHashed = errors.New("dilithium: cannot sign pre-hashed messages")

	// ErrUnsupportedLevel is returned by ParamsForLevel for unknown levels.
	ErrUnsupportedLevel = errors.New("dilithium: unsupported security level")

	// ErrSignAttemptsExhausted means the signing loop ran maxSignAttempts
	// times without producing a signature. With correct parameters this is
	// unreachable in practice and indicates a defect, not a bad input.
	ErrSignAttemptsExhausted = errors.New("dilithium: signing attempts exhausted")
)

// lengthError wraps a sentinel length error with the observed and expected sizes.
func lengthError(err error, got, want int) error {
	return fmt.Errorf("%w: got %d bytes, want %d", err, got, want)
}
