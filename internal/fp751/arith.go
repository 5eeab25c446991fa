package fp751

// uint128 holds the double-word result of a 64x64 multiply.
type uint128 struct {
	H, L uint64
}

func addc64(cin, a, b uint64) (ret, cout uint64) {
	ret = cin
	ret = ret + a
	if ret < a {
		cout = 1
	}
	ret = ret + b
	if ret < b {
		cout = 1
	}
	return
}

func subc64(bIn, a, b uint64) (ret, bOut uint64) {
	tmp := a - bIn
	if tmp > a {
		bOut = 1
	}
	ret = tmp - b
	if ret > tmp {
		bOut = 1
	}
	return
}

func mul64(a, b uint64) (res uint128) {
	var al, bl, ah, bh, albl, albh, ahbl, ahbh uint64
	var res1, res2, res3 uint64
	var carry, maskL, maskH, temp uint64

	maskL = (^maskL) >> 32
	maskH = ^maskL

	al = a & maskL
	ah = a >> 32
	bl = b & maskL
	bh = b >> 32

	albl = al * bl
	albh = al * bh
	ahbl = ah * bl
	ahbh = ah * bh
	res.L = albl & maskL

	res1 = albl >> 32
	res2 = ahbl & maskL
	res3 = albh & maskL
	temp = res1 + res2 + res3
	carry = temp >> 32
	res.L ^= temp << 32

	res1 = ahbl >> 32
	res2 = albh >> 32
	res3 = ahbh & maskL
	temp = res1 + res2 + res3 + carry
	res.H = temp & maskL
	carry = temp & maskH
	res.H ^= (ahbh & maskH) + carry
	return
}

// Add sets z = x + y (mod 2p). Inputs and output lie in [0, 2p).
func Add(z, x, y *Elem) {
	var carry uint64
	for i := 0; i < Words; i++ {
		z[i], carry = addc64(carry, x[i], y[i])
	}
	carry = 0
	for i := 0; i < Words; i++ {
		z[i], carry = subc64(carry, z[i], P2[i])
	}
	mask := uint64(0 - carry)
	carry = 0
	for i := 0; i < Words; i++ {
		z[i], carry = addc64(carry, z[i], P2[i]&mask)
	}
}

// Sub sets z = x - y (mod 2p).
func Sub(z, x, y *Elem) {
	var borrow uint64
	for i := 0; i < Words; i++ {
		z[i], borrow = subc64(borrow, x[i], y[i])
	}
	mask := uint64(0 - borrow)
	borrow = 0
	for i := 0; i < Words; i++ {
		z[i], borrow = addc64(borrow, z[i], P2[i]&mask)
	}
}

// StrongReduce reduces x in [0, 2p) to its canonical representative in [0, p).
func StrongReduce(x *Elem) {
	var borrow, mask uint64
	for i := 0; i < Words; i++ {
		x[i], borrow = subc64(borrow, x[i], P[i])
	}
	mask = 0 - borrow
	borrow = 0
	for i := 0; i < Words; i++ {
		x[i], borrow = addc64(borrow, x[i], P[i]&mask)
	}
}

// CondSwap conditionally swaps x and y in constant time: every limb is
// touched regardless of mask, so the memory access pattern and timing do
// not depend on the secret bit. mask must be 0 or 1.
func CondSwap(x, y *Elem, mask uint64) {
	m := uint64(0) - (mask & 1)
	for i := 0; i < Words; i++ {
		t := m & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// Mul sets z = x * y as a double-width product, not reduced mod p.
func Mul(z *Wide, x, y *Elem) {
	var u, v, t uint64
	var carry uint64
	var uv uint128

	for i := uint64(0); i < Words; i++ {
		for j := uint64(0); j <= i; j++ {
			uv = mul64(x[j], y[i-j])
			v, carry = addc64(0, uv.L, v)
			u, carry = addc64(carry, uv.H, u)
			t += carry
		}
		z[i] = v
		v = u
		u = t
		t = 0
	}

	for i := Words; i < (2*Words)-1; i++ {
		for j := i - Words + 1; j < Words; j++ {
			uv = mul64(x[j], y[i-j])
			v, carry = addc64(0, uv.L, v)
			u, carry = addc64(carry, uv.H, u)
			t += carry
		}
		z[i] = v
		v = u
		u = t
		t = 0
	}
	z[2*Words-1] = v
}

// MontgomeryReduce sets z = x * R^-1 (mod 2p), with R = 2^768. x is not
// modified.
func MontgomeryReduce(z *Elem, x *Wide) {
	var carry, t, u, v uint64
	var uv uint128
	count := zeroWords

	for i := 0; i < Words; i++ {
		for j := 0; j < i; j++ {
			if j < (i - count + 1) {
				uv = mul64(z[j], Pp1[i-j])
				v, carry = addc64(0, uv.L, v)
				u, carry = addc64(carry, uv.H, u)
				t += carry
			}
		}
		v, carry = addc64(0, v, x[i])
		u, carry = addc64(carry, u, 0)
		t += carry

		z[i] = v
		v = u
		u = t
		t = 0
	}

	for i := Words; i < 2*Words-1; i++ {
		if count > 0 {
			count--
		}
		for j := i - Words + 1; j < Words; j++ {
			if j < (Words - count) {
				uv = mul64(z[j], Pp1[i-j])
				v, carry = addc64(0, uv.L, v)
				u, carry = addc64(carry, uv.H, u)
				t += carry
			}
		}
		v, carry = addc64(0, v, x[i])
		u, carry = addc64(carry, u, 0)

		t += carry
		z[i-Words] = v
		v = u
		u = t
		t = 0
	}
	v, carry = addc64(0, v, x[2*Words-1])
	z[Words-1] = v
}

// AddWide sets z = x + y for double-width accumulators, without reduction.
func AddWide(z, x, y *Wide) {
	var carry uint64
	for i := 0; i < 2*Words; i++ {
		z[i], carry = addc64(carry, x[i], y[i])
	}
}

// SubWide sets z = x - y for double-width accumulators. If the result is
// negative, p is added back into the high half so that, after a later
// Montgomery reduction, the value is congruent to x-y mod p.
func SubWide(z, x, y *Wide) {
	var borrow, mask uint64
	for i := 0; i < 2*Words; i++ {
		z[i], borrow = subc64(borrow, x[i], y[i])
	}
	mask = 0 - borrow
	borrow = 0
	for i := Words; i < 2*Words; i++ {
		z[i], borrow = addc64(borrow, z[i], P[i-Words]&mask)
	}
}

// MulReduced sets dest = lhs * rhs mod p, all values in Montgomery domain.
func MulReduced(dest, lhs, rhs *Elem) {
	var ab Wide
	Mul(&ab, lhs, rhs)
	MontgomeryReduce(dest, &ab)
}
