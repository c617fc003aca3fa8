package rational

import "ratio/src/math/scalar"

// Rational is a scalar in its own right.
var (
	_ scalar.Scalar[Rational[scalar.Int64]]      = Rational[scalar.Int64]{}
	_ scalar.Inverse[Rational[scalar.Int64]]     = Rational[scalar.Int64]{}
	_ scalar.PowersOfTen[Rational[scalar.Int64]] = Rational[scalar.Int64]{}
	_ scalar.MagSquarer[Rational[scalar.Int64]]  = Rational[scalar.Int64]{}
	_ scalar.LaTeXer                             = Rational[scalar.Int64]{}
	_ scalar.Floater                             = Rational[scalar.Int64]{}

	_ scalar.Scalar[Rational[Rational[scalar.Int64]]] = Rational[Rational[scalar.Int64]]{}
)

func (x Rational[S]) Zero() Rational[S] {
	var s S
	return Rational[S]{n: s.Zero(), d: s.One()}
}

func (x Rational[S]) One() Rational[S] {
	var s S
	return Rational[S]{n: s.One(), d: s.One()}
}

// Float64 returns the nearest float64 to n/d as computed by the scalar's own
// conversions. It panics with ErrUnsupported if S does not implement
// scalar.Floater.
func (x Rational[S]) Float64() float64 {
	n, ok := any(x.n).(scalar.Floater)
	if !ok {
		panic(unsupported[S]("float64 conversion"))
	}
	d := any(x.den()).(scalar.Floater)
	return n.Float64() / d.Float64()
}
