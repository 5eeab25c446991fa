package sidh

import (
	"math/big"

	"github.com/cloudpeak-crypto/sidh751/internal/fp751"
)

// The base curve E_0 : y^2 = x^3 + x over F_p is fixed, and so are Alice's
// and Bob's public torsion-basis generators on it. Rather than carry their
// coordinates as hand-transcribed 751-bit hex literals, they are derived
// once at init from the closed-form recipe used to generate them:
//
//	x_PA = 11, y_PA = odd sqrt(11^3 + 11), P_A = [3^239](x_PA, y_PA)
//	x_PB = 6,  y_PB = odd sqrt(6^3 + 6),   P_B = [2^372](x_PB, y_PB)
//
// AFFINE_X_PA/AFFINE_Y_PA and AFFINE_X_PB/AFFINE_Y_PB are the affine
// coordinates of P_A and P_B, i.e. already scaled by the cofactors above.
var (
	affineXPA fp751.Elem
	affineYPA fp751.Elem
	affineXPB fp751.Elem
	affineYPB fp751.Elem
)

// ecPoint is an affine point on E_0 : y^2 = x^3 + x over F_p, used only for
// the one-time, variable-time derivation of the fixed generator constants
// above; every other elliptic-curve operation in this package is the
// constant-time x-only arithmetic in internal/curve.
type ecPoint struct {
	x, y     *big.Int
	infinity bool
}

func ecDouble(p ecPoint, mod *big.Int) ecPoint {
	if p.infinity || p.y.Sign() == 0 {
		return ecPoint{infinity: true}
	}
	// lambda = (3x^2 + 1) / (2y), since E_0 has a = 1, b = 0.
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, big.NewInt(1))
	den := new(big.Int).Lsh(p.y, 1)
	den.ModInverse(den, mod)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, mod)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, p.x)
	x3.Mod(x3, mod)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, mod)

	return ecPoint{x: x3, y: y3}
}

func ecAdd(p, q ecPoint, mod *big.Int) ecPoint {
	if p.infinity {
		return q
	}
	if q.infinity {
		return p
	}
	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) == 0 {
			return ecDouble(p, mod)
		}
		return ecPoint{infinity: true}
	}

	num := new(big.Int).Sub(q.y, p.y)
	den := new(big.Int).Sub(q.x, p.x)
	den.Mod(den, mod)
	den.ModInverse(den, mod)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, mod)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, q.x)
	x3.Mod(x3, mod)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, mod)

	return ecPoint{x: x3, y: y3}
}

func ecScalarMul(p ecPoint, k *big.Int, mod *big.Int) ecPoint {
	result := ecPoint{infinity: true}
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = ecAdd(result, addend, mod)
		}
		addend = ecDouble(addend, mod)
	}
	return result
}

// liftX returns the odd square root of x^3 + x mod p, the y-coordinate the
// generator recipe prescribes for a given x on E_0.
func liftX(x int64, mod *big.Int) *big.Int {
	xb := big.NewInt(x)
	rhs := new(big.Int).Mul(xb, xb)
	rhs.Mul(rhs, xb)
	rhs.Add(rhs, xb)
	rhs.Mod(rhs, mod)

	y := new(big.Int).ModSqrt(rhs, mod)
	if y.Bit(0) == 0 {
		y.Sub(mod, y)
	}
	return y
}

func init() {
	// p = 2^372 * 3^239 - 1, recomputed here (rather than read back out of
	// fp751.P, which is held in a representation internal to that package)
	// purely to get a plain math/big modulus for the affine EC arithmetic
	// below.
	p := new(big.Int).Lsh(big.NewInt(1), 372)
	p.Mul(p, new(big.Int).Exp(big.NewInt(3), big.NewInt(239), nil))
	p.Sub(p, big.NewInt(1))

	three239 := new(big.Int).Exp(big.NewInt(3), big.NewInt(239), nil)
	xPA := int64(11)
	yPA := liftX(xPA, p)
	PA := ecScalarMul(ecPoint{x: big.NewInt(xPA), y: yPA}, three239, p)
	affineXPA = fp751.FromBigInt(PA.x)
	affineYPA = fp751.FromBigInt(PA.y)

	two372 := new(big.Int).Lsh(big.NewInt(1), 372)
	xPB := int64(6)
	yPB := liftX(xPB, p)
	PB := ecScalarMul(ecPoint{x: big.NewInt(xPB), y: yPB}, two372, p)
	affineXPB = fp751.FromBigInt(PB.x)
	affineYPB = fp751.FromBigInt(PB.y)
}
