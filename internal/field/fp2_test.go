package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudpeak-crypto/sidh751/internal/fp751"
)

// fp751Modulus is p = 2^372*3^239 - 1, recomputed here rather than imported
// so this test doesn't need an exported modulus from fp751.
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

func randElem(t *testing.T) Elem {
	t.Helper()
	return Elem{A: randFp751(t), B: randFp751(t)}
}

func TestMulMatchesSquare(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)

		var bySquare, byMul Elem
		Square(&bySquare, &a)
		Mul(&byMul, &a, &a)

		assert.True(t, VartimeEq(&bySquare, &byMul))
	}
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)
		if VartimeEq(&a, &Elem{}) {
			continue
		}

		var inv, product Elem
		Inv(&inv, &a)
		Mul(&product, &a, &inv)

		one := One()
		assert.True(t, VartimeEq(&product, &one))
	}
}

func TestBatch3Inv(t *testing.T) {
	x1 := randElem(t)
	x2 := randElem(t)
	x3 := randElem(t)

	inv1, inv2, inv3 := Batch3Inv(&x1, &x2, &x3)

	var want1, want2, want3 Elem
	Inv(&want1, &x1)
	Inv(&want2, &x2)
	Inv(&want3, &x3)

	assert.True(t, VartimeEq(&inv1, &want1))
	assert.True(t, VartimeEq(&inv2, &want2))
	assert.True(t, VartimeEq(&inv3, &want3))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	a := randElem(t)

	buf := make([]byte, EncodedLen)
	ToBytes(buf, &a)
	back := FromBytes(buf)

	assert.True(t, VartimeEq(&a, &back))
}

func TestCondSwap(t *testing.T) {
	a := randElem(t)
	b := randElem(t)
	origA, origB := a, b

	CondSwap(&a, &b, 0)
	assert.True(t, VartimeEq(&a, &origA))
	assert.True(t, VartimeEq(&b, &origB))

	CondSwap(&a, &b, 1)
	assert.True(t, VartimeEq(&a, &origB))
	assert.True(t, VartimeEq(&b, &origA))
}
