// Package field implements F_p^2 = F_p[i]/(i^2+1) arithmetic on top of the
// constant-time F_p primitives in internal/fp751.
package field

import "github.com/cloudpeak-crypto/sidh751/internal/fp751"

// Elem is an element A + B*i of F_p^2, with A and B in Montgomery domain.
type Elem struct {
	A, B fp751.Elem
}

// Zero returns the additive identity.
func Zero() Elem { return Elem{} }

// One returns the multiplicative identity.
func One() Elem { return Elem{A: fp751.R} }

// SetUint64 returns the field element corresponding to the small integer x.
func SetUint64(x uint64) Elem {
	var plain fp751.Elem
	plain[0] = x
	var mont fp751.Elem
	fp751.MulReduced(&mont, &plain, &fp751.RSquared)
	return Elem{A: mont}
}

// Add sets dest = lhs + rhs.
func Add(dest, lhs, rhs *Elem) {
	fp751.Add(&dest.A, &lhs.A, &rhs.A)
	fp751.Add(&dest.B, &lhs.B, &rhs.B)
}

// Sub sets dest = lhs - rhs.
func Sub(dest, lhs, rhs *Elem) {
	fp751.Sub(&dest.A, &lhs.A, &rhs.A)
	fp751.Sub(&dest.B, &lhs.B, &rhs.B)
}

// Mul sets dest = lhs * rhs using Karatsuba's trick:
//
//	(a+bi)*(c+di) = (ac-bd) + (ad+bc)i
//	ad+bc = (b-a)*(c-d) + ac + bd
//
// which needs 3 base-field multiplications instead of 4.
func Mul(dest, lhs, rhs *Elem) {
	a, b := &lhs.A, &lhs.B
	c, d := &rhs.A, &rhs.B

	var ac, bd fp751.Wide
	fp751.Mul(&ac, a, c)
	fp751.Mul(&bd, b, d)

	var bMinusA, cMinusD fp751.Elem
	fp751.Sub(&bMinusA, b, a)
	fp751.Sub(&cMinusD, c, d)

	var adPlusBc fp751.Wide
	fp751.Mul(&adPlusBc, &bMinusA, &cMinusD)
	fp751.AddWide(&adPlusBc, &adPlusBc, &ac)
	fp751.AddWide(&adPlusBc, &adPlusBc, &bd)
	fp751.MontgomeryReduce(&dest.B, &adPlusBc)

	var acMinusBd fp751.Wide
	fp751.SubWide(&acMinusBd, &ac, &bd)
	fp751.MontgomeryReduce(&dest.A, &acMinusBd)
}

// Square sets dest = x*x. (a+bi)^2 = (a^2-b^2) + 2ab*i.
func Square(dest, x *Elem) {
	a, b := &x.A, &x.B

	var a2, aPlusB, aMinusB fp751.Elem
	fp751.Add(&a2, a, a)
	fp751.Add(&aPlusB, a, b)
	fp751.Sub(&aMinusB, a, b)

	var a2MinusB2, ab2 fp751.Wide
	fp751.Mul(&a2MinusB2, &aPlusB, &aMinusB)
	fp751.Mul(&ab2, &a2, b)

	fp751.MontgomeryReduce(&dest.A, &a2MinusB2)
	fp751.MontgomeryReduce(&dest.B, &ab2)
}

// Inv sets dest = 1/x. If x is zero, dest is set to zero.
//
//	1/(a+bi) = (a-bi)/(a^2+b^2)
func Inv(dest, x *Elem) {
	a, b := &x.A, &x.B

	var asq, bsq fp751.Wide
	fp751.Mul(&asq, a, a)
	fp751.Mul(&bsq, b, b)
	fp751.AddWide(&asq, &asq, &bsq)

	var normSq fp751.Elem
	fp751.MontgomeryReduce(&normSq, &asq)

	var invNorm fp751.Elem
	fp751.MulReduced(&invNorm, &normSq, &normSq)
	fp751.P34(&invNorm, &invNorm)
	fp751.MulReduced(&invNorm, &invNorm, &invNorm)
	fp751.MulReduced(&invNorm, &invNorm, &normSq)

	var minusB fp751.Elem
	fp751.Sub(&minusB, &minusB, b)

	fp751.MulReduced(&dest.A, a, &invNorm)
	fp751.MulReduced(&dest.B, &minusB, &invNorm)
}

// CondSwap swaps the contents of x and y in constant time if choice&1 == 1,
// and leaves them unchanged if choice&1 == 0.
func CondSwap(x, y *Elem, choice uint64) {
	fp751.CondSwap(&x.A, &y.A, choice)
	fp751.CondSwap(&x.B, &y.B, choice)
}

// VartimeEq reports whether lhs and rhs represent the same field element.
// Takes variable time in the values, for use on public data only (e.g. test
// assertions and wire-format round trips, never on secret scalars).
func VartimeEq(lhs, rhs *Elem) bool {
	var lr, rr Elem
	lr, rr = *lhs, *rhs
	fp751.StrongReduce(&lr.A)
	fp751.StrongReduce(&lr.B)
	fp751.StrongReduce(&rr.A)
	fp751.StrongReduce(&rr.B)
	return lr.A == rr.A && lr.B == rr.B
}

// Batch3Inv computes the inverses of x1, x2, x3 using a single field
// inversion and six multiplications (Montgomery's trick).
func Batch3Inv(x1, x2, x3 *Elem) (inv1, inv2, inv3 Elem) {
	var x1x2, x1x2x3 Elem
	Mul(&x1x2, x1, x2)
	Mul(&x1x2x3, &x1x2, x3)

	var x1x2x3Inv Elem
	Inv(&x1x2x3Inv, &x1x2x3)

	var x1x2Inv Elem
	Mul(&x1x2Inv, &x1x2x3Inv, x3)
	Mul(&inv1, &x1x2Inv, x2)
	Mul(&inv2, &x1x2Inv, x1)
	Mul(&inv3, &x1x2x3Inv, &x1x2)
	return
}

// EncodedLen is the length, in bytes, of the little-endian wire encoding
// of an F_p^2 element: the A and B coordinates, each fp751.EncodedLen long.
const EncodedLen = 2 * fp751.EncodedLen

// ToBytes writes the wire encoding of x into out, which must be at least
// EncodedLen bytes long.
func ToBytes(out []byte, x *Elem) {
	if len(out) < EncodedLen {
		panic("field: output slice shorter than EncodedLen")
	}
	fp751.ToBytes(out[:fp751.EncodedLen], &x.A)
	fp751.ToBytes(out[fp751.EncodedLen:EncodedLen], &x.B)
}

// FromBytes reads EncodedLen bytes of wire-format input and returns the
// corresponding field element.
func FromBytes(in []byte) Elem {
	if len(in) < EncodedLen {
		panic("field: input slice shorter than EncodedLen")
	}
	return Elem{
		A: fp751.FromBytes(in[:fp751.EncodedLen]),
		B: fp751.FromBytes(in[fp751.EncodedLen:EncodedLen]),
	}
}
