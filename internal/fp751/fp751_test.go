package fp751

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randElem returns a uniformly random element of F_p, in Montgomery domain,
// via a reduced math/big value rather than raw random limbs: Add/Sub and the
// Montgomery reduction assume their inputs already lie in [0, 2p), so a
// properly reduced value is needed to exercise them meaningfully.
func randElem(t *testing.T) Elem {
	t.Helper()
	p := elemToBig(P)
	x, err := rand.Int(rand.Reader, p)
	if err != nil {
		t.Fatal(err)
	}
	return FromBigInt(x)
}

func TestAddSubRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)
		b := randElem(t)

		var sum, back Elem
		Add(&sum, &a, &b)
		Sub(&back, &sum, &b)

		StrongReduce(&back)
		expect := a
		StrongReduce(&expect)
		assert.Equal(t, expect, back)
	}
}

func TestMulReducedIsCommutative(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)
		b := randElem(t)

		var ab, ba Elem
		MulReduced(&ab, &a, &b)
		MulReduced(&ba, &b, &a)

		StrongReduce(&ab)
		StrongReduce(&ba)
		assert.Equal(t, ab, ba)
	}
}

func TestInverseIsMultiplicativeInverse(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)
		var strong Elem = a
		StrongReduce(&strong)
		if strong == (Elem{}) {
			continue
		}

		var inv, product Elem
		Inverse(&inv, &a)
		MulReduced(&product, &a, &inv)
		StrongReduce(&product)

		assert.Equal(t, oneMont, product)
	}
}

func TestSqrtProducesASquareRoot(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)
		var square Elem
		MulReduced(&square, &a, &a)

		var root, back Elem
		Sqrt(&root, &square)
		MulReduced(&back, &root, &root)

		StrongReduce(&square)
		StrongReduce(&back)
		assert.Equal(t, square, back)
	}
}

func TestCondSwap(t *testing.T) {
	a := randElem(t)
	b := randElem(t)
	origA, origB := a, b

	CondSwap(&a, &b, 0)
	assert.Equal(t, origA, a)
	assert.Equal(t, origB, b)

	CondSwap(&a, &b, 1)
	assert.Equal(t, origB, a)
	assert.Equal(t, origA, b)
}

func TestBytesRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		a := randElem(t)

		var buf [EncodedLen]byte
		ToBytes(buf[:], &a)
		back := FromBytes(buf[:])

		aStrong, backStrong := a, back
		StrongReduce(&aStrong)
		StrongReduce(&backStrong)
		assert.Equal(t, aStrong, backStrong)
	}
}

func TestScalarLt3e238(t *testing.T) {
	var zero [ScalarBytes]byte
	assert.True(t, ScalarLt3e238(zero[:]))

	var max [ScalarBytes]byte
	for i := range max {
		max[i] = 0xff
	}
	assert.False(t, ScalarLt3e238(max[:]))
}

func TestScalarMul3(t *testing.T) {
	var s [ScalarBytes]byte
	s[0] = 5
	ScalarMul3(&s)
	assert.Equal(t, byte(15), s[0])
}
