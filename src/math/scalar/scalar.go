// Package scalar defines the capability contract a numeric type must satisfy
// to be used as the numerator and denominator of a rational, along with the
// machine and arbitrary-precision integers that satisfy it.
//
// The contract is a self-referential method set: a type T is a scalar when it
// implements Scalar[T]. Because the methods return T rather than an interface,
// generic code bounded by Scalar[T] is dispatched at compile time.
package scalar

// Identity supplies the additive and multiplicative identities. Both methods
// must work on the zero value of T.
type Identity[T any] interface {
	Zero() T
	One() T
}

// Ordered is a total order consistent with the ring structure.
// Cmp returns -1, 0 or +1.
type Ordered[T any] interface {
	Cmp(y T) int
}

// Ring is the arithmetic needed by a scalar. Rem is the truncated remainder:
// its sign follows the dividend, as with Go's % operator.
type Ring[T any] interface {
	Neg() T
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	Rem(y T) T
}

// Scalar is an ordered ring with identities and remainder.
type Scalar[T any] interface {
	Identity[T]
	Ordered[T]
	Ring[T]
}

// Inverse is implemented by scalars with a reciprocal.
type Inverse[T any] interface {
	Inv() T
}

// PowersOfTen is implemented by scalars that can produce 10**power.
type PowersOfTen[T any] interface {
	OrderOf(power int) T
}

// MagSquarer is implemented by scalars that report their squared magnitude.
type MagSquarer[T any] interface {
	MagSquare() T
}

// LaTeXer is implemented by scalars with a typeset representation.
type LaTeXer interface {
	LaTeX() string
}

// Floater is implemented by scalars with a (possibly lossy) float64 value.
type Floater interface {
	Float64() float64
}

// Zero returns the additive identity of T.
func Zero[T Identity[T]]() T {
	var t T
	return t.Zero()
}

// One returns the multiplicative identity of T.
func One[T Identity[T]]() T {
	var t T
	return t.One()
}

// OrderOf returns 10**power in T.
func OrderOf[T PowersOfTen[T]](power int) T {
	var t T
	return t.OrderOf(power)
}

func IsZero[T Scalar[T]](x T) bool {
	return x.Cmp(x.Zero()) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func Sign[T Scalar[T]](x T) int {
	return x.Cmp(x.Zero())
}

func Abs[T Scalar[T]](x T) T {
	if Sign(x) < 0 {
		return x.Neg()
	}
	return x
}

func Equal[T Scalar[T]](x, y T) bool {
	return x.Cmp(y) == 0
}

func Less[T Scalar[T]](x, y T) bool {
	return x.Cmp(y) < 0
}

func Max[T Scalar[T]](x, y T) T {
	if x.Cmp(y) < 0 {
		return y
	}
	return x
}

func Min[T Scalar[T]](x, y T) T {
	if y.Cmp(x) < 0 {
		return y
	}
	return x
}
