// Package fp751 implements constant-time arithmetic in the prime field
// F_p, for the SIDH-751 prime p = 2^372*3^239 - 1, in Montgomery form.
//
// Elements are represented as 12 64-bit words (768 bits), little-endian,
// holding a value in [0, 2p). All exported functions expect and produce
// values in that range; callers that need a canonical representative in
// [0, p) must call StrongReduce.
package fp751

import "math/big"

// Words is the number of 64-bit limbs used to represent a field element.
const Words = 12

// Elem is a field element, little-endian limbs, Montgomery domain unless
// documented otherwise.
type Elem [Words]uint64

// Wide is the double-width accumulator produced by Mul, before Montgomery
// reduction folds it back down to a Elem.
type Wide [2 * Words]uint64

// p751, in the usual sense, and derived Montgomery machinery. These are
// computed once at package init from the closed-form definition of the
// prime, rather than hand-transcribed as 768-bit hex literals: a single
// digit mismatch in a hand-copied limb array would silently corrupt every
// downstream computation.
var (
	P         Elem // p, canonical representative
	P2        Elem // 2p
	Pp1       Elem // p+1, used by Montgomery reduction
	R         Elem // 2^768 mod p
	RSquared  Elem // (2^768)^2 mod p
	oneMont   Elem // 1 in Montgomery form, i.e. R mod p
	zeroWords int  // number of all-zero trailing words in p+1
)

func bigP() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 372)
	three239 := new(big.Int).Exp(big.NewInt(3), big.NewInt(239), nil)
	p.Mul(p, three239)
	p.Sub(p, big.NewInt(1))
	return p
}

// bigToElem converts a non-negative big.Int < 2^(64*Words) into limb form.
// Uses Bytes() rather than Bits() so the result doesn't depend on whether
// big.Word is 32 or 64 bits on the host platform.
func bigToElem(x *big.Int) Elem {
	var e Elem
	b := x.Bytes() // big-endian
	for i := 0; i < len(b); i++ {
		byteIdx := len(b) - 1 - i
		e[i/8] |= uint64(b[byteIdx]) << (8 * uint(i%8))
	}
	return e
}

func elemToBig(e Elem) *big.Int {
	buf := make([]byte, Words*8)
	for i := 0; i < Words; i++ {
		for k := 0; k < 8; k++ {
			buf[i*8+k] = byte(e[i] >> (8 * uint(k)))
		}
	}
	// buf is little-endian; big.Int.SetBytes wants big-endian.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return new(big.Int).SetBytes(buf)
}

func init() {
	p := bigP()
	P = bigToElem(p)

	two := new(big.Int).Lsh(p, 1)
	P2 = bigToElem(two)

	pp1 := new(big.Int).Add(p, big.NewInt(1))
	Pp1 = bigToElem(pp1)

	zeroWords = 0
	for i := 0; i < Words; i++ {
		if Pp1[i] != 0 {
			break
		}
		zeroWords++
	}

	rMod := new(big.Int).Lsh(big.NewInt(1), 768)
	rMod.Mod(rMod, p)
	R = bigToElem(rMod)

	rsq := new(big.Int).Mul(rMod, rMod)
	rsq.Mod(rsq, p)
	RSquared = bigToElem(rsq)

	oneMont = R
}
