package geometry

import (
	"ratio/src/math/rational"
	"ratio/src/math/scalar"
)

type (
	Int32  = scalar.Int32
	Int64  = scalar.Int64
	Int128 = scalar.Int128

	Rational64  = rational.Rational[Int64]
	Rational128 = rational.Rational[Int128]
)

func NewRational128(numerator, denominator Int128) Rational128 {
	return rational.New(numerator, denominator)
}

func Rational128FromInt64(v Int64) Rational128 {
	return rational.Whole(scalar.Int128From64(int64(v)))
}

func widen(v Int64) Int128 {
	return scalar.Int128From64(int64(v))
}
