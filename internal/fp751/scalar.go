package fp751

import "math/big"

// ScalarBytes is the length, in bytes, of Bob's secret scalar before
// rejection sampling against 3^238.
const ScalarBytes = 48

// three238 holds 3^238 as a little-endian byte string, derived once at
// init from the closed-form exponent rather than transcribed by hand.
var three238 [ScalarBytes]byte

func init() {
	v := new(big.Int).Exp(big.NewInt(3), big.NewInt(238), nil)
	b := v.Bytes() // big-endian
	for i := 0; i < len(b); i++ {
		three238[i] = b[len(b)-1-i]
	}
}

// ScalarLt3e238 reports, in constant time with respect to the value of
// scalar, whether the little-endian scalar (exactly ScalarBytes long) is
// strictly less than 3^238. It computes scalar - 3^238 as a borrow chain
// and inspects only the final borrow, so no branch depends on a scalar byte.
func ScalarLt3e238(scalar []byte) bool {
	var borrow uint64
	for i := 0; i < ScalarBytes; i++ {
		_, borrow = subc64(borrow, uint64(scalar[i]), uint64(three238[i]))
	}
	return borrow == 1
}

// ScalarMul3 multiplies the little-endian scalar in place by 3.
func ScalarMul3(scalar *[ScalarBytes]byte) {
	var carry uint16
	for i := 0; i < ScalarBytes; i++ {
		v := uint16(scalar[i])*3 + carry
		scalar[i] = byte(v)
		carry = v >> 8
	}
}
