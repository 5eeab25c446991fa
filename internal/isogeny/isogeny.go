// Package isogeny implements the 3- and 4-isogenies between Montgomery
// curves used to walk the SIDH isogeny graph, following Costello-Longa-
// Naehrig's formulas.
package isogeny

import (
	"github.com/cloudpeak-crypto/sidh751/internal/curve"
	"github.com/cloudpeak-crypto/sidh751/internal/field"
)

// ThreeIsogeny holds the data needed to evaluate a 3-isogeny phi once its
// codomain has been computed from a 3-torsion kernel point.
type ThreeIsogeny struct {
	X, Z field.Elem
}

// ComputeThreeIsogeny builds the 3-isogeny phi : E_(A:C) -> E_(A:C)/<P_3>
// with kernel generated by the 3-torsion point x3 = x(P_3), and returns the
// codomain curve parameters alongside phi.
func ComputeThreeIsogeny(x3 *curve.Point) (curve.Params, ThreeIsogeny) {
	var v0, v1, v2, v3, a, c field.Elem

	field.Square(&v1, &x3.X)          // X^2
	field.Add(&v0, &v1, &v1)
	field.Add(&v0, &v0, &v1)          // 3X^2
	field.Add(&v1, &v0, &v0)
	field.Add(&v1, &v1, &v0)          // 9X^2
	field.Square(&v2, &x3.Z)          // Z^2
	field.Square(&v3, &v2)            // Z^4
	field.Add(&v2, &v2, &v2)          // 2Z^2
	field.Sub(&v0, &v2, &v0)          // 2Z^2 - 3X^2
	field.Mul(&v1, &v1, &v0)          // 9X^2(2Z^2 - 3X^2)
	field.Mul(&v0, &x3.X, &x3.Z)      // XZ
	field.Add(&v0, &v0, &v0)          // 2XZ
	field.Add(&a, &v3, &v1)           // Z^4 + 9X^2(2Z^2 - 3X^2)
	field.Mul(&c, &v0, &v2)           // 4XZ^3

	return curve.Params{A: a, C: c}, ThreeIsogeny{X: x3.X, Z: x3.Z}
}

// Eval computes x(phi(P)) given xP = x(P), a point on the domain of phi.
func (phi *ThreeIsogeny) Eval(xP *curve.Point) curve.Point {
	var t0, t1, t2, x, z field.Elem

	field.Mul(&t0, &phi.X, &xP.X)
	field.Mul(&t1, &phi.Z, &xP.Z)
	field.Sub(&t2, &t0, &t1)
	field.Mul(&t0, &phi.Z, &xP.X)
	field.Mul(&t1, &phi.X, &xP.Z)
	field.Sub(&t0, &t0, &t1)
	field.Square(&t2, &t2)
	field.Square(&t0, &t0)
	field.Mul(&x, &t2, &xP.X)
	field.Mul(&z, &t0, &xP.Z)

	return curve.Point{X: x, Z: z}
}

// FourIsogeny holds the data needed to evaluate a 4-isogeny phi whose kernel
// does not contain the canonical point (1,...) — the general case of
// formula (7) in Costello-Longa-Naehrig. See FirstFourIsogeny for the case
// where (1,...) is in the kernel.
type FourIsogeny struct {
	XsqPlusZsq, XsqMinusZsq, XZ2, Xpow4, Zpow4 field.Elem
}

// ComputeFourIsogeny builds the 4-isogeny phi : E_(A:C) -> E_(A:C)/<P_4>
// with kernel generated by the 4-torsion point x4 = x(P_4).
func ComputeFourIsogeny(x4 *curve.Point) (curve.Params, FourIsogeny) {
	var v0, v1, xz2, a, c field.Elem

	field.Square(&v0, &x4.X) // X4^2
	field.Square(&v1, &x4.Z) // Z4^2
	xsqPlusZsq := field.Elem{}
	field.Add(&xsqPlusZsq, &v0, &v1)
	xsqMinusZsq := field.Elem{}
	field.Sub(&xsqMinusZsq, &v0, &v1)
	field.Add(&xz2, &x4.X, &x4.Z)
	field.Square(&xz2, &xz2)
	field.Sub(&xz2, &xz2, &xsqPlusZsq) // 2X4Z4

	var xpow4, zpow4 field.Elem
	field.Square(&xpow4, &v0) // X4^4
	field.Square(&zpow4, &v1) // Z4^4
	field.Add(&v0, &xpow4, &xpow4)
	field.Sub(&v0, &v0, &zpow4) // 2X4^4 - Z4^4
	field.Add(&a, &v0, &v0)     // 2(2X4^4 - Z4^4)
	c = zpow4

	return curve.Params{A: a, C: c}, FourIsogeny{
		XsqPlusZsq:  xsqPlusZsq,
		XsqMinusZsq: xsqMinusZsq,
		XZ2:         xz2,
		Xpow4:       xpow4,
		Zpow4:       zpow4,
	}
}

// Eval computes x(phi(P)) given xP = x(P), a point on the domain of phi,
// via formula (7) of Costello-Longa-Naehrig.
func (phi *FourIsogeny) Eval(xP *curve.Point) curve.Point {
	var t0, t1, t2, x, z field.Elem

	field.Mul(&t0, &xP.X, &phi.XZ2)          // 2*X*X4*Z4
	field.Mul(&t1, &xP.Z, &phi.XsqPlusZsq)   // (X4^2+Z4^2)*Z
	field.Sub(&t0, &t0, &t1)
	field.Mul(&t1, &xP.Z, &phi.XsqMinusZsq)  // (X4^2-Z4^2)*Z
	field.Sub(&t2, &t0, &t1)
	field.Square(&t2, &t2)
	field.Mul(&t0, &t0, &t1)
	field.Add(&t0, &t0, &t0)
	field.Add(&t0, &t0, &t0)
	field.Add(&t1, &t0, &t2)
	field.Mul(&t0, &t0, &t2)
	field.Mul(&z, &t0, &phi.Zpow4)
	field.Mul(&t2, &t2, &phi.Zpow4)
	field.Mul(&t0, &t1, &phi.Xpow4)
	field.Sub(&t0, &t2, &t0)
	field.Mul(&x, &t1, &t0)

	return curve.Point{X: x, Z: z}
}

// FirstFourIsogeny holds the data needed to evaluate the 4-isogeny whose
// kernel is generated by the canonical 4-torsion point (1,...), which
// Costello-Longa-Naehrig treat as a special case with its own formulas.
type FirstFourIsogeny struct {
	A, C field.Elem
}

// ComputeFirstFourIsogeny builds the 4-isogeny whose kernel is generated by
// the point (1,...) on domain.
func ComputeFirstFourIsogeny(domain *curve.Params) (curve.Params, FirstFourIsogeny) {
	var t0, t1, a, c field.Elem

	field.Add(&t0, &domain.C, &domain.C) // 2C
	field.Sub(&c, &domain.A, &t0)        // A - 2C
	field.Add(&t1, &t0, &t0)             // 4C
	field.Add(&t1, &t1, &t0)             // 6C
	field.Add(&t0, &t1, &domain.A)       // A + 6C
	field.Add(&a, &t0, &t0)              // 2(A + 6C)

	return curve.Params{A: a, C: c}, FirstFourIsogeny{A: domain.A, C: domain.C}
}

// Eval computes x(phi(P)) given xP = x(P), a point on the domain of phi.
func (phi *FirstFourIsogeny) Eval(xP *curve.Point) curve.Point {
	var t0, t1, t2, t3, x, z field.Elem

	field.Add(&t0, &xP.X, &xP.Z)
	field.Square(&t0, &t0) // (X+Z)^2
	field.Mul(&t2, &xP.X, &xP.Z)
	field.Add(&t1, &t2, &t2)
	field.Sub(&t1, &t0, &t1) // X^2+Z^2
	field.Mul(&x, &phi.A, &t2)
	field.Mul(&t3, &phi.C, &t1)
	field.Add(&x, &x, &t3)
	field.Mul(&x, &x, &t0)
	field.Sub(&t0, &xP.X, &xP.Z)
	field.Square(&t0, &t0) // (X-Z)^2
	field.Mul(&t0, &t0, &t2)
	field.Add(&t1, &phi.C, &phi.C)
	field.Sub(&t1, &t1, &phi.A) // 2C-A
	field.Mul(&z, &t1, &t0)

	return curve.Point{X: x, Z: z}
}
