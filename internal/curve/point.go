package curve

import "github.com/cloudpeak-crypto/sidh751/internal/fp751"
import "github.com/cloudpeak-crypto/sidh751/internal/field"

// Point is a point on the projective line P^1(F_p^2), used to represent the
// x-coordinate of a point on the Kummer line of a Montgomery curve E_(A:C).
type Point struct {
	X, Z field.Elem
}

// NewPoint returns the point at infinity, (1:0).
func NewPoint() Point {
	return Point{X: field.One()}
}

// FromAffine lifts an affine x-coordinate to projective form (x:1).
func FromAffine(x *field.Elem) Point {
	return Point{X: *x, Z: field.One()}
}

// FromAffinePrimeField lifts an x-coordinate known to lie in the prime
// subfield F_p to projective form (x:1) in F_p^2.
func FromAffinePrimeField(x *fp751.Elem) Point {
	return Point{X: field.Elem{A: *x}, Z: field.One()}
}

// ToAffine returns X/Z.
func (p *Point) ToAffine() field.Elem {
	var zInv, x field.Elem
	field.Inv(&zInv, &p.Z)
	field.Mul(&x, &p.X, &zInv)
	return x
}

// VartimeEq reports whether p and q represent the same projective point.
// Takes variable time; use only on public data.
func (p *Point) VartimeEq(q *Point) bool {
	var t0, t1 field.Elem
	field.Mul(&t0, &p.X, &q.Z)
	field.Mul(&t1, &p.Z, &q.X)
	return field.VartimeEq(&t0, &t1)
}

// CondSwap swaps the contents of p and q in constant time if choice&1 == 1.
func (p *Point) CondSwap(q *Point, choice uint64) {
	field.CondSwap(&p.X, &q.X, choice)
	field.CondSwap(&p.Z, &q.Z, choice)
}

// Add computes xR = x(P+Q) given xP = x(P), xQ = x(Q) and xPmQ = x(P-Q).
// This is Algorithm 1 of Costello-Smith.
func (xP *Point) Add(xQ, xPmQ *Point) Point {
	var v0, v1, v2, v3, v4, x, z field.Elem

	field.Add(&v0, &xP.X, &xP.Z)       // X_P + Z_P
	field.Sub(&v1, &xQ.X, &xQ.Z)       // X_Q - Z_Q
	field.Mul(&v1, &v1, &v0)           // (X_Q - Z_Q)(X_P + Z_P)
	field.Sub(&v0, &xP.X, &xP.Z)       // X_P - Z_P
	field.Add(&v2, &xQ.X, &xQ.Z)       // X_Q + Z_Q
	field.Mul(&v2, &v2, &v0)           // (X_Q + Z_Q)(X_P - Z_P)
	field.Add(&v3, &v1, &v2)
	field.Square(&v3, &v3)             // 4(X_Q X_P - Z_Q Z_P)^2
	field.Sub(&v4, &v1, &v2)
	field.Square(&v4, &v4)             // 4(X_Q Z_P - Z_Q X_P)^2
	field.Mul(&x, &xPmQ.Z, &v3)
	field.Mul(&z, &xPmQ.X, &v4)

	return Point{X: x, Z: z}
}

// Double computes xQ = x([2]P) given the cached curve parameters.
// This is Algorithm 2 of Costello-Smith, amended for projective coefficients.
func (xP *Point) Double(c *cached4) Point {
	var v1, v2, xz4, v3, x, z field.Elem

	field.Add(&v1, &xP.X, &xP.Z)
	field.Square(&v1, &v1) // (X+Z)^2
	field.Sub(&v2, &xP.X, &xP.Z)
	field.Square(&v2, &v2)              // (X-Z)^2
	field.Sub(&xz4, &v1, &v2)           // 4XZ
	field.Mul(&v2, &v2, &c.C4)          // 4C(X-Z)^2
	field.Mul(&x, &v1, &v2)             // 4C(X+Z)^2(X-Z)^2
	field.Mul(&v3, &xz4, &c.APlus2C)    // 4XZ(A+2C)
	field.Add(&v3, &v3, &v2)
	field.Mul(&z, &v3, &xz4)

	return Point{X: x, Z: z}
}

// DblAdd computes x([2]P) and x(P+Q) together, given xP, xQ and xPmQ = x(P-Q),
// using 8M+4S+8A in F_p^2.
func (xP *Point) DblAdd(xQ, xPmQ *Point, c *cached4) (x2P, xPaddQ Point) {
	x1, z1 := &xPmQ.X, &xPmQ.Z
	x2, z2 := &xP.X, &xP.Z
	x3, z3 := &xQ.X, &xQ.Z

	var t0, t1, t2, t3, x, z field.Elem
	field.Add(&t0, x2, z2) // A = x2+z2
	field.Sub(&t1, x2, z2) // B = x2-z2
	field.Add(&t3, x3, z3) // C = x3+z3
	field.Sub(&t2, x3, z3) // D = x3-z3
	field.Mul(&t2, &t2, &t0) // DA
	field.Mul(&t3, &t3, &t1) // CB

	field.Add(&x, &t2, &t3) // DA+CB
	field.Sub(&z, &t2, &t3) // DA-CB
	field.Square(&x, &x)
	field.Square(&z, &z)
	field.Mul(&x, &x, z1)
	field.Mul(&z, &z, x1)
	xPaddQ = Point{X: x, Z: z}

	field.Square(&t0, &t0) // AA
	field.Square(&t1, &t1) // BB
	field.Sub(&t2, &t0, &t1) // E = AA-BB
	field.Mul(&t3, &t1, &c.C4)
	field.Mul(&z, &t2, &c.APlus2C)
	field.Add(&z, &z, &t3)
	field.Mul(&x, &t0, &t3)
	field.Mul(&z, &z, &t2)
	x2P = Point{X: x, Z: z}

	return
}

// Pow2k computes x([2^k]P).
func (xP *Point) Pow2k(params *Params, k uint32) Point {
	c := params.cached4()
	xQ := *xP
	for i := uint32(0); i < k; i++ {
		xQ = xQ.Double(&c)
	}
	return xQ
}

// Triple computes xQ = x([3]P) using the efficient Montgomery tripling
// formulas from FLOR-SIDH-x64 (github.com/armfazh/flor-sidh-x64).
func (xP *Point) Triple(c *cached3) Point {
	x1, z1 := &xP.X, &xP.Z

	var t0, t1, t2, t3, t4, t5, x, z field.Elem
	field.Square(&t0, x1)     // x1^2
	field.Square(&t1, z1)     // z1^2
	field.Add(&t2, x1, z1)
	field.Square(&t2, &t2)    // (x1+z1)^2
	field.Add(&t3, &t0, &t1)
	field.Sub(&t4, &t2, &t3)
	field.Mul(&t5, &c.AMinus2C, &t4)
	field.Mul(&t2, &c.C2, &t2)
	field.Add(&t5, &t5, &t2)
	field.Add(&t5, &t5, &t5)
	field.Add(&t5, &t5, &t5)
	field.Mul(&t0, &t0, &t5)
	field.Mul(&t1, &t1, &t5)
	field.Sub(&t4, &t3, &t4)
	field.Mul(&t2, &t2, &t4)
	field.Sub(&t0, &t2, &t0)
	field.Sub(&t1, &t2, &t1)
	field.Square(&t0, &t0)
	field.Square(&t1, &t1)
	field.Mul(&x, x1, &t1)
	field.Mul(&z, z1, &t0)

	return Point{X: x, Z: z}
}

// Pow3k computes x([3^k]P).
func (xP *Point) Pow3k(params *Params, k uint32) Point {
	c := params.cached3()
	xQ := *xP
	for i := uint32(0); i < k; i++ {
		xQ = xQ.Triple(&c)
	}
	return xQ
}

// ScalarMul computes x([m]P) via the Montgomery ladder (Algorithm 8 of
// Costello-Smith), processing the little-endian scalar from its most
// significant bit down to its least significant bit. Its running time
// depends only on the bit length of scalar, never on its value.
func (xP *Point) ScalarMul(params *Params, scalar []byte) Point {
	c := params.cached4()
	x0 := Point{X: field.One()}
	x1 := *xP

	var prevBit uint64
	for i := len(scalar) - 1; i >= 0; i-- {
		scalarByte := scalar[i]
		for j := 7; j >= 0; j-- {
			bit := uint64(scalarByte>>uint(j)) & 1
			x0.CondSwap(&x1, bit^prevBit)
			tmp := x0.Double(&c)
			x1 = x0.Add(&x1, xP)
			x0 = tmp
			prevBit = bit
		}
	}
	x0.CondSwap(&x1, prevBit)
	return x0
}

// OkeyaSakuraiRecover recovers the full projective point [m]Q = (X:Y:Z), Y in
// the prime field, given the affine base point P = (x_P, y_P), x(Q) and
// x(Q+P), all in the prime-field subgroup of the starting curve. This is
// Algorithm 5 of Costello-Smith with the Montgomery constants a=0, b=1
// hardcoded.
func OkeyaSakuraiRecover(affineXP, affineYP *fp751.Elem, xQ, xR *PrimeFieldPoint) (X, Y, Z fp751.Elem) {
	var v1, v2, v3, v4 fp751.Elem

	fp751.MulReduced(&v1, affineXP, &xQ.Z)  // x_P*Z_Q
	fp751.Add(&v2, &xQ.X, &v1)              // X_Q + x_P*Z_Q
	fp751.Sub(&v3, &xQ.X, &v1)
	fp751.MulReduced(&v3, &v3, &v3)         // (X_Q - x_P*Z_Q)^2
	fp751.MulReduced(&v3, &v3, &xR.X)       // X_R*(X_Q - x_P*Z_Q)^2

	fp751.MulReduced(&v4, affineXP, &xQ.X)  // x_P*X_Q
	fp751.Add(&v4, &v4, &xQ.Z)              // x_P*X_Q + Z_Q
	fp751.MulReduced(&v2, &v2, &v4)
	fp751.MulReduced(&v2, &v2, &xR.Z)
	fp751.Sub(&Y, &v2, &v3)

	fp751.Add(&v1, affineYP, affineYP)      // 2*y_P
	fp751.MulReduced(&v1, &v1, &xQ.Z)
	fp751.MulReduced(&v1, &v1, &xR.Z)        // 2*y_P*Z_Q*Z_R
	fp751.MulReduced(&X, &v1, &xQ.X)
	fp751.MulReduced(&Z, &v1, &xQ.Z)

	return
}

// ThreePointLadder computes x(P + [m]Q) given x(P), x(Q), x(P-Q) and a
// little-endian scalar m, using the three-point ladder of de Feo, Jao, and
// Plut.
func ThreePointLadder(xP, xQ, xPmQ *Point, params *Params, scalar []byte) Point {
	c := params.cached4()

	x0 := Point{X: field.One()}
	x1 := *xQ
	x2 := *xP
	y0 := *xP
	y1 := *xPmQ

	var prevBit uint64
	for i := len(scalar) - 1; i >= 0; i-- {
		scalarByte := scalar[i]
		for j := 7; j >= 0; j-- {
			bit := uint64(scalarByte>>uint(j)) & 1
			x0.CondSwap(&x1, bit^prevBit)
			y0.CondSwap(&y1, bit^prevBit)
			x1 = x1.Add(&x0, xQ)
			x0, x2 = x0.DblAdd(&x2, &y0, &c)
			prevBit = bit
		}
	}

	return x2
}

// RightToLeftLadder computes x(P + [m]Q) given x(P), x(Q), x(P-Q) and a
// little-endian scalar m, processing the scalar's bits bottom to top.
func RightToLeftLadder(xP, xQ, xPmQ *Point, params *Params, scalar []byte) Point {
	c := params.cached4()

	R1 := *xP
	R2 := *xPmQ
	R0 := *xQ

	var prevBit uint64
	for i := 0; i < len(scalar); i++ {
		scalarByte := scalar[i]
		for j := 0; j < 8; j++ {
			bit := uint64(scalarByte>>uint(j)) & 1
			R1.CondSwap(&R2, bit^prevBit)
			R0, R2 = R0.DblAdd(&R2, &R1, &c)
			prevBit = bit
		}
	}
	R1.CondSwap(&R2, prevBit)
	return R1
}

// DistortAndDifference computes x(tau(P)-P), given the affine x-coordinate
// of P in the prime-field subgroup of the base curve E_0, where tau is the
// distortion map (x,y) |-> (-x, iy).
func DistortAndDifference(affineXP *fp751.Elem) Point {
	var t0, t1, a, b fp751.Elem
	fp751.MulReduced(&t0, affineXP, affineXP) // x_P^2
	fp751.Add(&t1, &t0, &fp751.R)             // x_P^2 + 1 (Montgomery one)
	b = t1
	fp751.Add(&t0, affineXP, affineXP) // 2*x_P
	a = t0

	return Point{
		X: field.Elem{B: b},
		Z: field.Elem{A: a},
	}
}

// SecretPoint computes x(P + [m]Q), where P = (affineXP, affineYP) is an
// affine point in the prime-field subgroup of the base curve E_0, Q = tau(P)
// is its image under the distortion map, and m is a secret scalar in
// little-endian bytes.
//
// The computation keeps the Montgomery ladder entirely within F_p, since the
// x-coordinate of every point in the trace-zero subgroup generated by tau
// lies in the prime subfield, and only lifts to F_p^2 for the final
// coordinate recovery.
func SecretPoint(affineXP, affineYP *fp751.Elem, scalar []byte) Point {
	var negX fp751.Elem
	fp751.Sub(&negX, &negX, affineXP)
	xQ := PrimeFieldPoint{X: negX, Z: fp751.R}

	xmQ, xm1Q := xQ.ScalarMulPrimeField(&aPlus2Over4, scalar)

	var t0, t1, YmQ fp751.Elem
	fp751.MulReduced(&t0, affineXP, &xmQ.X) // x_P*X_{mQ}
	fp751.Sub(&YmQ, &xmQ.Z, &t0)
	fp751.MulReduced(&t1, affineXP, &xmQ.Z) // x_P*Z_{mQ}
	fp751.Sub(&t0, &xmQ.X, &t1)
	fp751.MulReduced(&YmQ, &YmQ, &t0)
	fp751.MulReduced(&YmQ, &YmQ, &xm1Q.Z)
	fp751.Add(&t1, &t1, &xmQ.X)
	fp751.MulReduced(&t1, &t1, &t1)
	fp751.MulReduced(&t1, &t1, &xm1Q.X)
	fp751.Sub(&YmQ, &YmQ, &t1)

	// t0 = -2*(Z_{mQ}*Z_{m1Q}*y_P); the Okeya-Sakurai denominator picks up
	// this extra factor, so it is carried into both Z_{mQ} and X_{mQ}.
	var zero, ZmQ, XmQ fp751.Elem
	fp751.MulReduced(&t0, &xmQ.Z, &xm1Q.Z)
	fp751.MulReduced(&t0, &t0, affineYP)
	fp751.Sub(&t0, &zero, &t0)
	fp751.Add(&t0, &t0, &t0)

	fp751.MulReduced(&ZmQ, &xmQ.Z, &t0)
	fp751.MulReduced(&XmQ, &xmQ.X, &t0)

	var xrb, xra, zr fp751.Elem
	fp751.MulReduced(&xrb, &ZmQ, &ZmQ)
	fp751.MulReduced(&xrb, &xrb, &YmQ)
	fp751.MulReduced(&xrb, &xrb, affineYP)
	fp751.Add(&xrb, &xrb, &xrb)
	fp751.Sub(&xrb, &zero, &xrb)

	fp751.MulReduced(&t0, affineYP, &ZmQ)
	fp751.MulReduced(&t0, &t0, &t0) // (y_P*Z_{mQ})^2
	fp751.MulReduced(&t1, &YmQ, &YmQ)
	fp751.Sub(&xra, &t0, &t1)
	fp751.MulReduced(&xra, &xra, &ZmQ)

	fp751.MulReduced(&t0, affineXP, &ZmQ)
	var sum, diff fp751.Elem
	fp751.Add(&sum, &XmQ, &t0)
	fp751.Sub(&diff, &XmQ, &t0)
	fp751.MulReduced(&diff, &diff, &diff)
	fp751.MulReduced(&sum, &sum, &diff)
	fp751.Sub(&xra, &xra, &sum)

	fp751.MulReduced(&zr, &ZmQ, &diff)

	return Point{
		X: field.Elem{A: xra, B: xrb},
		Z: field.Elem{A: zr},
	}
}

// PrimeFieldPoint is a point on the projective line P^1(F_p), used for the
// x-only ladder on the base curve E_0 : y^2 = x^3 + x, whose x-coordinates
// of trace-zero-subgroup points stay in the prime subfield.
type PrimeFieldPoint struct {
	X, Z fp751.Elem
}

// aPlus2Over4 is (a+2)/4 for the base curve E_0 (a=0), i.e. 1/2 in F_p,
// computed once at init instead of carried as a hand-transcribed literal.
var aPlus2Over4 fp751.Elem

func init() {
	var twoPlain, twoMont fp751.Elem
	twoPlain[0] = 2
	fp751.MulReduced(&twoMont, &twoPlain, &fp751.RSquared)
	fp751.Inverse(&aPlus2Over4, &twoMont)
}

func (xP *PrimeFieldPoint) add(xQ, xPmQ *PrimeFieldPoint) PrimeFieldPoint {
	var v0, v1, v2, v3, v4, x, z fp751.Elem

	fp751.Add(&v0, &xP.X, &xP.Z)
	fp751.Sub(&v1, &xQ.X, &xQ.Z)
	fp751.MulReduced(&v1, &v1, &v0)
	fp751.Sub(&v0, &xP.X, &xP.Z)
	fp751.Add(&v2, &xQ.X, &xQ.Z)
	fp751.MulReduced(&v2, &v2, &v0)
	fp751.Add(&v3, &v1, &v2)
	fp751.MulReduced(&v3, &v3, &v3)
	fp751.Sub(&v4, &v1, &v2)
	fp751.MulReduced(&v4, &v4, &v4)
	fp751.MulReduced(&x, &xPmQ.Z, &v3)
	fp751.MulReduced(&z, &xPmQ.X, &v4)

	return PrimeFieldPoint{X: x, Z: z}
}

func (xP *PrimeFieldPoint) dblAdd(xQ, xPmQ *PrimeFieldPoint, a24 *fp751.Elem) (x2P, xPaddQ PrimeFieldPoint) {
	x1 := &xPmQ.X
	x2, z2 := &xP.X, &xP.Z
	x3, z3 := &xQ.X, &xQ.Z

	var t0, t1, t2, t3, x, z fp751.Elem
	fp751.Add(&t0, x2, z2)
	fp751.Sub(&t1, x2, z2)
	fp751.Add(&t3, x3, z3)
	fp751.Sub(&t2, x3, z3)
	fp751.MulReduced(&t2, &t2, &t0)
	fp751.MulReduced(&t3, &t3, &t1)

	fp751.Add(&x, &t2, &t3)
	fp751.Sub(&z, &t2, &t3)
	fp751.MulReduced(&x, &x, &x)
	fp751.MulReduced(&z, &z, &z)
	fp751.MulReduced(&z, &z, x1)
	xPaddQ = PrimeFieldPoint{X: x, Z: z}

	fp751.MulReduced(&t0, &t0, &t0)
	fp751.MulReduced(&t1, &t1, &t1)
	fp751.MulReduced(&x, &t0, &t1)
	fp751.Sub(&t0, &t0, &t1)
	fp751.MulReduced(&z, &t0, a24)
	fp751.Add(&z, &z, &t1)
	fp751.MulReduced(&z, &z, &t0)
	x2P = PrimeFieldPoint{X: x, Z: z}

	return
}

// CondSwap swaps the contents of p and q in constant time if choice&1 == 1.
func (p *PrimeFieldPoint) CondSwap(q *PrimeFieldPoint, choice uint64) {
	fp751.CondSwap(&p.X, &q.X, choice)
	fp751.CondSwap(&p.Z, &q.Z, choice)
}

// ScalarMulPrimeField computes x([m]P) and x([m+1]P) via the Montgomery
// ladder (Algorithm 8 of Costello-Smith), returning both so the caller can
// later recover a full y-coordinate.
func (xP *PrimeFieldPoint) ScalarMulPrimeField(a24 *fp751.Elem, scalar []byte) (x0, x1 PrimeFieldPoint) {
	x0 = PrimeFieldPoint{X: fp751.R}
	x1 = *xP

	var prevBit uint64
	for i := len(scalar) - 1; i >= 0; i-- {
		scalarByte := scalar[i]
		for j := 7; j >= 0; j-- {
			bit := uint64(scalarByte>>uint(j)) & 1
			x0.CondSwap(&x1, bit^prevBit)
			x0, x1 = x0.dblAdd(&x1, xP, a24)
			prevBit = bit
		}
	}
	x0.CondSwap(&x1, prevBit)
	return
}
