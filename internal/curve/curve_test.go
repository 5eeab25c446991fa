package curve

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

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

func randPoint(t *testing.T) Point {
	t.Helper()
	return Point{X: randFieldElem(t), Z: randFieldElem(t)}
}

func randParams(t *testing.T) Params {
	t.Helper()
	return Params{A: randFieldElem(t), C: randFieldElem(t)}
}

// DblAdd is an independently-coded combination of Double and Add; it must
// agree with calling them separately.
func TestDblAddMatchesDoubleAndAdd(t *testing.T) {
	for i := 0; i < 8; i++ {
		xP := randPoint(t)
		xQ := randPoint(t)
		xPmQ := randPoint(t)
		params := randParams(t)
		c := params.cached4()

		x2P, xPaddQ := xP.DblAdd(&xQ, &xPmQ, &c)

		want2P := xP.Double(&c)
		wantPaddQ := xP.Add(&xQ, &xPmQ)

		assert.True(t, x2P.VartimeEq(&want2P))
		assert.True(t, xPaddQ.VartimeEq(&wantPaddQ))
	}
}

func TestPow2kZeroIsIdentity(t *testing.T) {
	xP := randPoint(t)
	params := randParams(t)

	xQ := xP.Pow2k(&params, 0)
	assert.True(t, xP.VartimeEq(&xQ))
}

func TestPow3kZeroIsIdentity(t *testing.T) {
	xP := randPoint(t)
	params := randParams(t)

	xQ := xP.Pow3k(&params, 0)
	assert.True(t, xP.VartimeEq(&xQ))
}

func TestScalarMulByTwoMatchesDouble(t *testing.T) {
	xP := randPoint(t)
	params := randParams(t)
	c := params.cached4()

	want := xP.Double(&c)
	got := xP.ScalarMul(&params, []byte{2})

	assert.True(t, got.VartimeEq(&want))
}

func TestFromAffineToAffineRoundTrip(t *testing.T) {
	x := randFieldElem(t)
	p := FromAffine(&x)
	back := p.ToAffine()

	assert.True(t, field.VartimeEq(&x, &back))
}

func TestCondSwap(t *testing.T) {
	p := randPoint(t)
	q := randPoint(t)
	origP, origQ := p, q

	p.CondSwap(&q, 0)
	assert.True(t, p.VartimeEq(&origP))
	assert.True(t, q.VartimeEq(&origQ))

	p.CondSwap(&q, 1)
	assert.True(t, p.VartimeEq(&origQ))
	assert.True(t, q.VartimeEq(&origP))
}

func TestJInvariantIsIsomorphismInvariant(t *testing.T) {
	// Scaling (A:C) by a nonzero lambda represents the same curve, so the
	// j-invariant must be unchanged.
	params := randParams(t)
	lambda := randFieldElem(t)

	var scaled Params
	field.Mul(&scaled.A, &params.A, &lambda)
	field.Mul(&scaled.C, &params.C, &lambda)

	j1 := params.JInvariant()
	j2 := scaled.JInvariant()

	assert.True(t, field.VartimeEq(&j1, &j2))
}
