package isogeny

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudpeak-crypto/sidh751/internal/curve"
	"github.com/cloudpeak-crypto/sidh751/internal/field"
	"github.com/cloudpeak-crypto/sidh751/internal/fp751"
)

func fp751Modulus() *big.Int {
	modulus := new(big.Int).Lsh(big.NewInt(1), 372)
	modulus.Mul(modulus, new(big.Int).Exp(big.NewInt(3), big.NewInt(239), nil))
	modulus.Sub(modulus, big.NewInt(1))
	return modulus
}

func randFp751(t *testing.T) fp751.Elem {
	t.Helper()
	x, err := rand.Int(rand.Reader, fp751Modulus())
	if err != nil {
		t.Fatal(err)
	}
	return fp751.FromBigInt(x)
}

func randFieldElem(t *testing.T) field.Elem {
	t.Helper()
	return field.Elem{A: randFp751(t), B: randFp751(t)}
}

func randPoint(t *testing.T) curve.Point {
	t.Helper()
	return curve.Point{X: randFieldElem(t), Z: randFieldElem(t)}
}

// A kernel generator's image under its own isogeny is the point at infinity,
// i.e. has Z = 0: this holds independent of whether the underlying (A:C)
// describes a genuine elliptic curve, since the isogeny formulas are purely
// rational maps in X and Z.

func TestThreeIsogenyKillsItsKernel(t *testing.T) {
	x3 := randPoint(t)
	_, phi := ComputeThreeIsogeny(&x3)

	image := phi.Eval(&x3)
	var zero field.Elem
	assert.True(t, field.VartimeEq(&image.Z, &zero))
}

func TestFourIsogenyKillsItsKernel(t *testing.T) {
	x4 := randPoint(t)
	_, phi := ComputeFourIsogeny(&x4)

	image := phi.Eval(&x4)
	var zero field.Elem
	assert.True(t, field.VartimeEq(&image.Z, &zero))
}

func TestFirstFourIsogenyKillsItsKernel(t *testing.T) {
	domain := curve.Params{A: randFieldElem(t), C: randFieldElem(t)}
	_, phi := ComputeFirstFourIsogeny(&domain)

	kernelPoint := curve.Point{X: field.One(), Z: field.One()}
	image := phi.Eval(&kernelPoint)

	var zero field.Elem
	assert.True(t, field.VartimeEq(&image.Z, &zero))
}
