package rational

import "ratio/src/math/scalar"

// Equal reports whether x and y denote the same rational, canonical or not.
func (x Rational[S]) Equal(y Rational[S]) bool {
	return scalar.Equal(x.n.Mul(y.den()), x.den().Mul(y.n))
}

// Cmp compares x and y and returns -1, 0 or +1. Both denominators must be
// positive, which holds for every value not built with Raw.
func (x Rational[S]) Cmp(y Rational[S]) int {
	return scalar.Sign(x.n.Mul(y.den()).Sub(x.den().Mul(y.n)))
}

func (x Rational[S]) Less(y Rational[S]) bool {
	return x.Cmp(y) < 0
}
