// Package curve implements x-only (Kummer line) arithmetic on Montgomery
// curves E_(A:C): Cy^2 = Cx^3 + Ax^2 + Cx over F_p^2, as used by the 2- and
// 3-isogeny walks of the SIDH key exchange.
package curve

import "github.com/cloudpeak-crypto/sidh751/internal/field"

// Params holds the projective coefficients (A:C) of a Montgomery curve.
type Params struct {
	A, C field.Elem
}

// cached4 holds precomputed quantities used by repeated doublings.
type cached4 struct {
	APlus2C, C4 field.Elem
}

// cached3 holds precomputed quantities used by repeated triplings.
type cached3 struct {
	AMinus2C, C2 field.Elem
}

func (p *Params) cached4() cached4 {
	var c cached4
	field.Add(&c.APlus2C, &p.C, &p.C)
	field.Add(&c.APlus2C, &c.APlus2C, &p.A)
	field.Add(&c.C4, &p.C, &p.C)
	field.Add(&c.C4, &c.C4, &c.C4)
	return c
}

func (p *Params) cached3() cached3 {
	var c cached3
	field.Add(&c.C2, &p.C, &p.C)
	field.Sub(&c.AMinus2C, &p.A, &c.C2)
	return c
}

// RecoverParams recovers the Montgomery coefficients (A:C) of the curve on
// which xP, xQ and xQmP = x(Q-P) lie, given only their x-coordinates. This
// lets a party reconstruct the curve from a peer's public key instead of
// transmitting A explicitly.
func RecoverParams(xP, xQ, xQmP *field.Elem) Params {
	var t0, t1, a, c field.Elem
	one := field.One()

	t0 = one
	field.Mul(&t1, xP, xQ)
	field.Sub(&t0, &t0, &t1)
	field.Mul(&t1, xP, xQmP)
	field.Sub(&t0, &t0, &t1)
	field.Mul(&t1, xQ, xQmP)
	field.Sub(&t0, &t0, &t1)
	field.Square(&a, &t0)
	field.Mul(&t1, &t1, xP)
	field.Add(&t1, &t1, &t1)
	field.Add(&c, &t1, &t1)
	field.Add(&t0, xP, xQ)
	field.Add(&t0, &t0, xQmP)
	field.Mul(&t1, &c, &t0)
	field.Sub(&a, &a, &t1)

	return Params{A: a, C: c}
}

// const256 is 256, in Montgomery form, used only by JInvariant. Derived
// the same way as every other field constant, rather than carried as a
// second hand-transcribed literal.
var const256 = field.SetUint64(256)

// JInvariant computes the j-invariant of the curve, as an element of F_p^2.
func (p *Params) JInvariant() field.Elem {
	var v0, v1, v2, v3 field.Elem

	field.Square(&v0, &p.C)     // v0 = C^2
	field.Square(&v1, &p.A)     // v1 = A^2
	field.Add(&v2, &v0, &v0)    // v2 = 2C^2
	field.Add(&v3, &v2, &v0)    // v3 = 3C^2
	field.Add(&v2, &v2, &v2)    // v2 = 4C^2
	field.Sub(&v2, &v1, &v2)    // v2 = A^2 - 4C^2
	field.Sub(&v1, &v1, &v3)    // v1 = A^2 - 3C^2
	field.Square(&v3, &v1)      // v3 = (A^2 - 3C^2)^2
	field.Mul(&v3, &v3, &v1)    // v3 = (A^2 - 3C^2)^3
	field.Square(&v0, &v0)      // v0 = C^4
	field.Mul(&v3, &v3, &const256)
	field.Mul(&v2, &v2, &v0) // v2 = C^4 (A^2 - 4C^2)
	field.Inv(&v2, &v2)
	field.Mul(&v0, &v3, &v2)
	return v0
}
