package fp751

// Sqrt sets dest = sqrt(x), assuming x is a nonzero square in F_p. Behavior
// is undefined if x is not a square. Since p = 3 (mod 4), sqrt(x) =
// x^((p+1)/4) = x^((p-3)/4) * x.
func Sqrt(dest, x *Elem) {
	var r Elem
	P34(&r, x)
	MulReduced(dest, &r, x)
}

// Inverse sets dest = 1/x in F_p (not F_p^2), assuming x is nonzero.
// 1/x = x^(p-2) = (x^2)^((p-3)/2) * x = ((x^2)^((p-3)/4))^2 * x.
func Inverse(dest, x *Elem) {
	var r Elem
	MulReduced(&r, x, x)
	P34(&r, &r)
	MulReduced(&r, &r, &r)
	MulReduced(dest, &r, x)
}
