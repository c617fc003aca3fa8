// Package rational implements exact rational numbers over any scalar type
// that satisfies scalar.Scalar.
//
// A Rational[S] produced by New, Whole or any arithmetic method is in
// canonical form: the denominator is positive, numerator and denominator
// share no factor other than one, and the sign is carried by the numerator.
// Equality and ordering are computed by cross-multiplication, so no division
// or rounding takes place.
//
// Rational[S] is itself a scalar.Scalar[Rational[S]], so rationals of
// rationals (and deeper) are valid:
//
//	half := rational.New[scalar.Int64](1, 2)
//	three := rational.Whole[scalar.Int64](3)
//	x := rational.New(half, three) // a Rational[Rational[scalar.Int64]] equal to 1/6
//
// Misuse (a zero denominator, division by zero, a missing optional
// capability) panics with one of the Err* values; Try and Recover turn those
// into ordinary errors.
package rational

import (
	"ratio/src/math/scalar"
)

// Rational is the ratio n/d of two scalars. Values are immutable.
// The zero value is 0.
type Rational[S scalar.Scalar[S]] struct {
	n S
	d S // zero only in the zero value, where it reads as one
}

// Whole returns n/1.
func Whole[S scalar.Scalar[S]](n S) Rational[S] {
	return Rational[S]{n: n, d: n.One()}
}

// New returns n/d in canonical form. It panics with ErrZeroDenominator if d
// is zero.
//
// Reduction negates negative operands. For a fixed-width scalar whose
// minimum value negates to itself, such as math.MinInt64 as scalar.Int64,
// the magnitude stays negative and New panics with ErrNegativeOperand.
func New[S scalar.Scalar[S]](n, d S) Rational[S] {
	if scalar.IsZero(d) {
		panic(ErrZeroDenominator)
	}

	positive := true
	if scalar.Sign(n) < 0 {
		positive = !positive
		n = n.Neg()
	}
	if scalar.Sign(d) < 0 {
		positive = !positive
		d = d.Neg()
	}

	factor := gcf(n, d)
	n = n.Quo(factor)
	d = d.Quo(factor)
	if !positive {
		n = n.Neg()
	}
	return Rational[S]{n: n, d: d}
}

// Try is like New but returns ErrZeroDenominator instead of panicking.
func Try[S scalar.Scalar[S]](n, d S) (Rational[S], error) {
	if scalar.IsZero(d) {
		return Rational[S]{}, ErrZeroDenominator
	}
	return New(n, d), nil
}

// Raw returns n/d exactly as given, without reduction.
//
// The result is not guaranteed to be canonical. Equality still holds for any
// representation, but ordering assumes a positive denominator: never pass a
// Raw value with a negative denominator to Cmp or Less. Use Canonical to
// reduce it. Raw panics with ErrZeroDenominator if d is zero.
func Raw[S scalar.Scalar[S]](n, d S) Rational[S] {
	if scalar.IsZero(d) {
		panic(ErrZeroDenominator)
	}
	return Rational[S]{n: n, d: d}
}

// gcf returns the greatest common factor of two non-negative scalars.
func gcf[S scalar.Scalar[S]](a, b S) S {
	if scalar.Sign(a) < 0 || scalar.Sign(b) < 0 {
		panic(ErrNegativeOperand)
	}
	for {
		if scalar.IsZero(a) {
			return b
		}
		if scalar.IsZero(b) {
			return a
		}
		switch a.Cmp(b) {
		case 1:
			a = a.Rem(b)
		case -1:
			b = b.Rem(a)
		default:
			return a
		}
	}
}

func (x Rational[S]) den() S {
	if scalar.IsZero(x.d) {
		return x.d.One()
	}
	return x.d
}

// Num returns the numerator of x.
func (x Rational[S]) Num() S { return x.n }

// Den returns the denominator of x.
func (x Rational[S]) Den() S { return x.den() }

// IsCanonical reports whether x is in canonical form. Only values built
// with Raw can fail this.
func (x Rational[S]) IsCanonical() bool {
	d := x.den()
	if scalar.Sign(d) <= 0 {
		return false
	}
	return scalar.Equal(gcf(scalar.Abs(x.n), d), d.One())
}

// Canonical returns x reduced to canonical form.
func (x Rational[S]) Canonical() Rational[S] {
	return New(x.n, x.den())
}

func (x Rational[S]) IsZero() bool { return scalar.IsZero(x.n) }

// IsInt reports whether the denominator of x is one.
func (x Rational[S]) IsInt() bool {
	return scalar.Equal(x.den(), x.n.One())
}

// Sign returns -1, 0 or +1. x must have a positive denominator.
func (x Rational[S]) Sign() int { return scalar.Sign(x.n) }

func (x Rational[S]) Abs() Rational[S] {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}
