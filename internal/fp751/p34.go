package fp751

// powStrategy and mulStrategy implement a fixed sliding-window addition
// chain for x^((p-3)/4), computed offline for this specific prime. They
// perform sum(powStrategy) squarings and len(mulStrategy) multiplications,
// plus one squaring and 15 multiplications to build the odd-power lookup
// table: 745 squarings, 152 multiplications in total.
//
// lookup[i] holds x^(2*i+1), so lookup[k/2] = x^k for odd k.
var (
	powStrategy = [137]uint8{
		5, 7, 6, 2, 10, 4, 6, 9, 8, 5, 9, 4, 7, 5, 5, 4, 8, 3, 9, 5,
		5, 4, 10, 4, 6, 6, 6, 5, 8, 9, 3, 4, 9, 4, 5, 6, 6, 2, 9, 4,
		5, 5, 5, 7, 7, 9, 4, 6, 4, 8, 5, 8, 6, 6, 2, 9, 7, 4, 8, 8,
		8, 4, 6, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 2,
	}
	mulStrategy = [137]uint8{
		31, 23, 21, 1, 31, 7, 7, 7, 9, 9, 19, 15, 23, 23, 11, 7, 25, 5, 21, 17,
		11, 5, 17, 7, 11, 9, 23, 9, 1, 19, 5, 3, 25, 15, 11, 29, 31, 1, 29, 11,
		13, 9, 11, 27, 13, 19, 15, 31, 3, 29, 23, 31, 25, 11, 1, 21, 19, 15, 15, 21,
		29, 13, 23, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 3,
	}
	initialMul = uint8(27)
)

func pow2k(dest, x *Elem, k uint8) {
	MulReduced(dest, x, x)
	for i := uint8(1); i < k; i++ {
		MulReduced(dest, dest, dest)
	}
}

// P34 sets dest = x^((p-3)/4). If x is a nonzero square, this is 1/sqrt(x).
// Both x and dest are in Montgomery domain. dest may alias x.
func P34(dest, x *Elem) {
	var lookup [16]Elem
	var xx Elem
	MulReduced(&xx, x, x)
	lookup[0] = *x
	for i := 1; i < 16; i++ {
		MulReduced(&lookup[i], &lookup[i-1], &xx)
	}

	*dest = lookup[initialMul/2]
	for i := 0; i < len(powStrategy); i++ {
		pow2k(dest, dest, powStrategy[i])
		MulReduced(dest, dest, &lookup[mulStrategy[i]/2])
	}
}
