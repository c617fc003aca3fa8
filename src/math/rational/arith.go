package rational

import "ratio/src/math/scalar"

// Neg returns -x. Flipping the sign keeps x canonical, so no reduction is
// done.
func (x Rational[S]) Neg() Rational[S] {
	return Rational[S]{n: x.n.Neg(), d: x.den()}
}

func (x Rational[S]) Add(y Rational[S]) Rational[S] {
	xd, yd := x.den(), y.den()
	return New(x.n.Mul(yd).Add(y.n.Mul(xd)), xd.Mul(yd))
}

func (x Rational[S]) Sub(y Rational[S]) Rational[S] {
	xd, yd := x.den(), y.den()
	return New(x.n.Mul(yd).Sub(y.n.Mul(xd)), xd.Mul(yd))
}

func (x Rational[S]) Mul(y Rational[S]) Rational[S] {
	return New(x.n.Mul(y.n), x.den().Mul(y.den()))
}

// Quo returns x/y. It panics with ErrDivisionByZero if y is zero.
func (x Rational[S]) Quo(y Rational[S]) Rational[S] {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	return New(x.n.Mul(y.den()), x.den().Mul(y.n))
}

// Rem returns the remainder of x/y, using the truncated remainder of the
// underlying scalar on the cross products. It panics with ErrDivisionByZero
// if y is zero.
func (x Rational[S]) Rem(y Rational[S]) Rational[S] {
	if y.IsZero() {
		panic(ErrDivisionByZero)
	}
	xd, yd := x.den(), y.den()
	return New(x.n.Mul(yd).Rem(xd.Mul(y.n)), xd.Mul(yd))
}

// Inv returns 1/x. It panics with ErrDivisionByZero if x is zero.
func (x Rational[S]) Inv() Rational[S] {
	if x.IsZero() {
		panic(ErrDivisionByZero)
	}
	return New(x.den(), x.n)
}

// MagSquare returns x*x.
func (x Rational[S]) MagSquare() Rational[S] {
	return x.Mul(x)
}

func (z *Rational[S]) AddAssign(y Rational[S]) { *z = z.Add(y) }
func (z *Rational[S]) SubAssign(y Rational[S]) { *z = z.Sub(y) }
func (z *Rational[S]) MulAssign(y Rational[S]) { *z = z.Mul(y) }
func (z *Rational[S]) QuoAssign(y Rational[S]) { *z = z.Quo(y) }
func (z *Rational[S]) RemAssign(y Rational[S]) { *z = z.Rem(y) }

// OrderOf returns 10**power. Negative powers produce 1/10**-power. It panics
// with ErrUnsupported if S does not implement scalar.PowersOfTen.
func (x Rational[S]) OrderOf(power int) Rational[S] {
	var s S
	p, ok := any(s).(scalar.PowersOfTen[S])
	if !ok {
		panic(unsupported[S]("powers of ten"))
	}
	if power < 0 {
		return Rational[S]{n: s.One(), d: p.OrderOf(-power)}
	}
	return Rational[S]{n: p.OrderOf(power), d: s.One()}
}
