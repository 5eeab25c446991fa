package sidh

import (
	"io"

	"github.com/cloudpeak-crypto/sidh751/internal/fp751"
	"github.com/cloudpeak-crypto/sidh751/internal/internalerr"
)

// GenerateAliceKeypair draws a fresh secret scalar from rnd and derives the
// corresponding public key. The keypair must be used for at most one
// subsequent SharedSecret computation.
func GenerateAliceKeypair(rnd io.Reader) (PublicKeyAlice, SecretKeyAlice, error) {
	var sk SecretKeyAlice
	if _, err := io.ReadFull(rnd, sk.Scalar[:]); err != nil {
		return PublicKeyAlice{}, SecretKeyAlice{}, err
	}

	// Bit-twiddle so the scalar lies in 2*[0,2^371): clear the top byte and
	// the high nibble of the byte below it so scalar < 2^372, then clear the
	// low bit so scalar is even. This can produce the scalar 0 with
	// probability 2^-371, which isn't worth checking for.
	sk.Scalar[47] = 0
	sk.Scalar[46] &= 15
	sk.Scalar[0] &= 254

	return sk.PublicKey(), sk, nil
}

// GenerateBobKeypair draws a fresh secret scalar from rnd, via rejection
// sampling against 3^238, and derives the corresponding public key. The
// keypair must be used for at most one subsequent SharedSecret computation.
func GenerateBobKeypair(rnd io.Reader) (PublicKeyBob, SecretKeyBob, error) {
	var sk SecretKeyBob

	accepted := false
	for attempt := 0; attempt < 102; attempt++ {
		if _, err := io.ReadFull(rnd, sk.Scalar[:]); err != nil {
			return PublicKeyBob{}, SecretKeyBob{}, err
		}
		// Mask the high bits to obtain a uniform value in [0,2^378).
		sk.Scalar[47] &= 3
		if fp751.ScalarLt3e238(sk.Scalar[:]) {
			accepted = true
			break
		}
	}
	// Each trial accepts with probability ~0.5828, so all 102 trials fail
	// with probability under 2^-128: this branch should never be taken.
	if !accepted {
		return PublicKeyBob{}, SecretKeyBob{}, internalerr.StateError("sidh: rejection sampling for Bob's secret scalar failed")
	}

	// Multiply by 3 to land in 3*[0,3^238). This can produce the scalar 0
	// with probability 3^-238, which isn't worth checking for.
	fp751.ScalarMul3(&sk.Scalar)

	return sk.PublicKey(), sk, nil
}
