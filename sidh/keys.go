// Package sidh implements ephemeral supersingular isogeny Diffie-Hellman key
// exchange over the 751-bit SIKE prime, following the usual convention of
// naming the party walking 2-isogenies "Alice" and the party walking
// 3-isogenies "Bob".
//
// This package does not implement any public-key validation, so a keypair
// must be used for at most one shared-secret computation: reusing a keypair
// across exchanges leaks the secret scalar to an active adversary.
package sidh

import (
	"github.com/cloudpeak-crypto/sidh751/internal/curve"
	"github.com/cloudpeak-crypto/sidh751/internal/field"
	"github.com/cloudpeak-crypto/sidh751/internal/internalerr"
	"github.com/cloudpeak-crypto/sidh751/internal/isogeny"
)

// Sizes of the wire-format encodings used throughout this package.
const (
	// SecretKeySize is the length, in bytes, of a secret scalar.
	SecretKeySize = 48
	// PublicKeySize is the length, in bytes, of a public key.
	PublicKeySize = 3 * field.EncodedLen
	// SharedSecretSize is the length, in bytes, of a computed shared secret.
	SharedSecretSize = field.EncodedLen
)

const (
	maxAlice = 185
	maxBob   = 239
)

// PublicKeyAlice is Alice's public key: the images, under her secret
// 2-isogeny, of Bob's public torsion basis.
type PublicKeyAlice struct {
	AffineXP, AffineXQ, AffineXQmP field.Elem
}

// PublicKeyBob is Bob's public key: the images, under his secret 3-isogeny,
// of Alice's public torsion basis.
type PublicKeyBob struct {
	AffineXP, AffineXQ, AffineXQmP field.Elem
}

// ToBytes writes the 564-byte wire encoding of pub into out.
func (pub *PublicKeyAlice) ToBytes(out []byte) {
	if len(out) < PublicKeySize {
		panic("sidh: output slice shorter than PublicKeySize")
	}
	field.ToBytes(out[0:field.EncodedLen], &pub.AffineXP)
	field.ToBytes(out[field.EncodedLen:2*field.EncodedLen], &pub.AffineXQ)
	field.ToBytes(out[2*field.EncodedLen:3*field.EncodedLen], &pub.AffineXQmP)
}

// PublicKeyAliceFromBytes parses a 564-byte wire encoding of an Alice public key.
func PublicKeyAliceFromBytes(in []byte) (PublicKeyAlice, error) {
	if len(in) < PublicKeySize {
		return PublicKeyAlice{}, internalerr.ParameterError("sidh: public key input too short")
	}
	return PublicKeyAlice{
		AffineXP:   field.FromBytes(in[0:field.EncodedLen]),
		AffineXQ:   field.FromBytes(in[field.EncodedLen : 2*field.EncodedLen]),
		AffineXQmP: field.FromBytes(in[2*field.EncodedLen : 3*field.EncodedLen]),
	}, nil
}

// ToBytes writes the 564-byte wire encoding of pub into out.
func (pub *PublicKeyBob) ToBytes(out []byte) {
	if len(out) < PublicKeySize {
		panic("sidh: output slice shorter than PublicKeySize")
	}
	field.ToBytes(out[0:field.EncodedLen], &pub.AffineXP)
	field.ToBytes(out[field.EncodedLen:2*field.EncodedLen], &pub.AffineXQ)
	field.ToBytes(out[2*field.EncodedLen:3*field.EncodedLen], &pub.AffineXQmP)
}

// PublicKeyBobFromBytes parses a 564-byte wire encoding of a Bob public key.
func PublicKeyBobFromBytes(in []byte) (PublicKeyBob, error) {
	if len(in) < PublicKeySize {
		return PublicKeyBob{}, internalerr.ParameterError("sidh: public key input too short")
	}
	return PublicKeyBob{
		AffineXP:   field.FromBytes(in[0:field.EncodedLen]),
		AffineXQ:   field.FromBytes(in[field.EncodedLen : 2*field.EncodedLen]),
		AffineXQmP: field.FromBytes(in[2*field.EncodedLen : 3*field.EncodedLen]),
	}, nil
}

// SecretKeyAlice is Alice's secret key: an even scalar in [0, 2^372).
type SecretKeyAlice struct {
	Scalar [SecretKeySize]byte
}

// SecretKeyBob is Bob's secret key: a multiple of 3 in [0, 3^239).
type SecretKeyBob struct {
	Scalar [SecretKeySize]byte
}

// PublicKey computes the public key corresponding to sk, by walking the
// 2-isogeny tree rooted at the kernel point generated by sk.Scalar using the
// precomputed optimal strategy, pushing Bob's public torsion basis through
// each isogeny in the walk.
func (sk *SecretKeyAlice) PublicKey() PublicKeyAlice {
	xP := curve.FromAffinePrimeField(&affineXPB)   // = (x_P : 1) = x(P_B)
	xQ := curve.FromAffinePrimeField(&affineXPB)
	field.Sub(&xQ.X, &field.Elem{}, &xQ.X)          // = (-x_P : 1) = x(Q_B)
	xQmP := curve.DistortAndDifference(&affineXPB) // = x(Q_B - P_B)

	xR := curve.SecretPoint(&affineXPA, &affineYPA, sk.Scalar[:])

	current := curve.Params{A: field.Zero(), C: field.One()}
	var firstPhi isogeny.FirstFourIsogeny
	current, firstPhi = isogeny.ComputeFirstFourIsogeny(&current)

	xP = firstPhi.Eval(&xP)
	xQ = firstPhi.Eval(&xQ)
	xQmP = firstPhi.Eval(&xQmP)
	xR = firstPhi.Eval(&xR)

	points := make([]curve.Point, 0, 8)
	indices := make([]int, 0, 8)
	i := 0
	for j := 1; j < maxAlice; j++ {
		for i < maxAlice-j {
			points = append(points, xR)
			indices = append(indices, i)
			k := aliceIsogenyStrategy[maxAlice-i-j]
			xR = xR.Pow2k(&current, uint32(2*k))
			i += int(k)
		}

		var phi isogeny.FourIsogeny
		current, phi = isogeny.ComputeFourIsogeny(&xR)

		for k := range points {
			points[k] = phi.Eval(&points[k])
		}

		xP = phi.Eval(&xP)
		xQ = phi.Eval(&xQ)
		xQmP = phi.Eval(&xQmP)

		xR, points = points[len(points)-1], points[:len(points)-1]
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}

	_, phi := isogeny.ComputeFourIsogeny(&xR)
	xP = phi.Eval(&xP)
	xQ = phi.Eval(&xQ)
	xQmP = phi.Eval(&xQmP)

	invZP, invZQ, invZQmP := field.Batch3Inv(&xP.Z, &xQ.Z, &xQmP.Z)
	var pub PublicKeyAlice
	field.Mul(&pub.AffineXP, &xP.X, &invZP)
	field.Mul(&pub.AffineXQ, &xQ.X, &invZQ)
	field.Mul(&pub.AffineXQmP, &xQmP.X, &invZQmP)
	return pub
}

// SharedSecret computes Alice's view of the shared secret, using her secret
// key and Bob's public key. Bob must compute the matching secret from the
// same two keypairs for the values to agree.
func (sk *SecretKeyAlice) SharedSecret(peer *PublicKeyBob) [SharedSecretSize]byte {
	current := curve.RecoverParams(&peer.AffineXP, &peer.AffineXQ, &peer.AffineXQmP)
	xP := curve.FromAffine(&peer.AffineXP)
	xQ := curve.FromAffine(&peer.AffineXQ)
	xQmP := curve.FromAffine(&peer.AffineXQmP)
	xR := curve.RightToLeftLadder(&xP, &xQ, &xQmP, &current, sk.Scalar[:])

	var firstPhi isogeny.FirstFourIsogeny
	current, firstPhi = isogeny.ComputeFirstFourIsogeny(&current)
	xR = firstPhi.Eval(&xR)

	points := make([]curve.Point, 0, 8)
	indices := make([]int, 0, 8)
	i := 0
	for j := 1; j < maxAlice; j++ {
		for i < maxAlice-j {
			points = append(points, xR)
			indices = append(indices, i)
			k := aliceIsogenyStrategy[maxAlice-i-j]
			xR = xR.Pow2k(&current, uint32(2*k))
			i += int(k)
		}

		var phi isogeny.FourIsogeny
		current, phi = isogeny.ComputeFourIsogeny(&xR)

		for k := range points {
			points[k] = phi.Eval(&points[k])
		}

		xR, points = points[len(points)-1], points[:len(points)-1]
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}

	current, _ = isogeny.ComputeFourIsogeny(&xR)

	j := current.JInvariant()
	var out [SharedSecretSize]byte
	field.ToBytes(out[:], &j)
	return out
}

// PublicKey computes the public key corresponding to sk, by walking the
// 3-isogeny tree rooted at the kernel point generated by sk.Scalar using the
// precomputed optimal strategy, pushing Alice's public torsion basis through
// each isogeny in the walk.
func (sk *SecretKeyBob) PublicKey() PublicKeyBob {
	xP := curve.FromAffinePrimeField(&affineXPA)   // = (x_P : 1) = x(P_A)
	xQ := curve.FromAffinePrimeField(&affineXPA)
	field.Sub(&xQ.X, &field.Elem{}, &xQ.X)          // = (-x_P : 1) = x(Q_A)
	xQmP := curve.DistortAndDifference(&affineXPA) // = x(Q_A - P_A)

	xR := curve.SecretPoint(&affineXPB, &affineYPB, sk.Scalar[:])

	current := curve.Params{A: field.Zero(), C: field.One()}

	points := make([]curve.Point, 0, 8)
	indices := make([]int, 0, 8)
	i := 0
	for j := 1; j < maxBob; j++ {
		for i < maxBob-j {
			points = append(points, xR)
			indices = append(indices, i)
			k := bobIsogenyStrategy[maxBob-i-j]
			xR = xR.Pow3k(&current, uint32(k))
			i += int(k)
		}

		var phi isogeny.ThreeIsogeny
		current, phi = isogeny.ComputeThreeIsogeny(&xR)

		for k := range points {
			points[k] = phi.Eval(&points[k])
		}

		xP = phi.Eval(&xP)
		xQ = phi.Eval(&xQ)
		xQmP = phi.Eval(&xQmP)

		xR, points = points[len(points)-1], points[:len(points)-1]
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}

	_, phi := isogeny.ComputeThreeIsogeny(&xR)
	xP = phi.Eval(&xP)
	xQ = phi.Eval(&xQ)
	xQmP = phi.Eval(&xQmP)

	invZP, invZQ, invZQmP := field.Batch3Inv(&xP.Z, &xQ.Z, &xQmP.Z)
	var pub PublicKeyBob
	field.Mul(&pub.AffineXP, &xP.X, &invZP)
	field.Mul(&pub.AffineXQ, &xQ.X, &invZQ)
	field.Mul(&pub.AffineXQmP, &xQmP.X, &invZQmP)
	return pub
}

// SharedSecret computes Bob's view of the shared secret, using his secret
// key and Alice's public key. Alice must compute the matching secret from
// the same two keypairs for the values to agree.
func (sk *SecretKeyBob) SharedSecret(peer *PublicKeyAlice) [SharedSecretSize]byte {
	current := curve.RecoverParams(&peer.AffineXP, &peer.AffineXQ, &peer.AffineXQmP)
	xP := curve.FromAffine(&peer.AffineXP)
	xQ := curve.FromAffine(&peer.AffineXQ)
	xQmP := curve.FromAffine(&peer.AffineXQmP)
	xR := curve.RightToLeftLadder(&xP, &xQ, &xQmP, &current, sk.Scalar[:])

	points := make([]curve.Point, 0, 8)
	indices := make([]int, 0, 8)
	i := 0
	for j := 1; j < maxBob; j++ {
		for i < maxBob-j {
			points = append(points, xR)
			indices = append(indices, i)
			k := bobIsogenyStrategy[maxBob-i-j]
			xR = xR.Pow3k(&current, uint32(k))
			i += int(k)
		}

		var phi isogeny.ThreeIsogeny
		current, phi = isogeny.ComputeThreeIsogeny(&xR)

		for k := range points {
			points[k] = phi.Eval(&points[k])
		}

		xR, points = points[len(points)-1], points[:len(points)-1]
		i, indices = indices[len(indices)-1], indices[:len(indices)-1]
	}

	current, _ = isogeny.ComputeThreeIsogeny(&xR)

	j := current.JInvariant()
	var out [SharedSecretSize]byte
	field.ToBytes(out[:], &j)
	return out
}
