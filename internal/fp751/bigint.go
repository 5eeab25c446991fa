package fp751

import "math/big"

// FromBigInt reduces x modulo p and returns it as a Montgomery-domain Elem.
// Used for one-time derivation of the generator-point coordinates from their
// closed-form definitions and for building test values, never on secret
// data.
func FromBigInt(x *big.Int) Elem {
	p := elemToBig(P)
	reduced := new(big.Int).Mod(x, p)
	plain := bigToElem(reduced)
	var mont Elem
	MulReduced(&mont, &plain, &RSquared)
	return mont
}

// ToBigInt converts a Montgomery-domain Elem to its canonical big.Int
// representative in [0, p).
func ToBigInt(e *Elem) *big.Int {
	var plain Elem
	one := Elem{1}
	MulReduced(&plain, e, &one)
	StrongReduce(&plain)
	return elemToBig(plain)
}
