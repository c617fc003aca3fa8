package scalar

import (
	"fmt"
	"math/big"
)

// BigInt is an arbitrary-precision integer with value semantics. The wrapped
// *big.Int is never modified after construction, so BigInt values may be
// copied and shared freely. The zero value is 0.
type BigInt struct {
	v *big.Int
}

var (
	_ Scalar[BigInt]      = BigInt{}
	_ PowersOfTen[BigInt] = BigInt{}
	_ MagSquarer[BigInt]  = BigInt{}
	_ LaTeXer             = BigInt{}
	_ Floater             = BigInt{}

	bigZero = new(big.Int)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)
)

func NewBigInt(v int64) BigInt {
	return BigInt{v: big.NewInt(v)}
}

// BigIntFrom copies v.
func BigIntFrom(v *big.Int) BigInt {
	return BigInt{v: new(big.Int).Set(v)}
}

// ParseBigInt parses a base 10 integer.
func ParseBigInt(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return BigInt{v: v}, nil
}

func (x BigInt) int() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// Int returns a copy of x as a *big.Int.
func (x BigInt) Int() *big.Int {
	return new(big.Int).Set(x.int())
}

func (x BigInt) Zero() BigInt { return BigInt{} }

func (x BigInt) One() BigInt { return BigInt{v: bigOne} }

func (x BigInt) Cmp(y BigInt) int { return x.int().Cmp(y.int()) }

func (x BigInt) Sign() int { return x.int().Sign() }

func (x BigInt) Neg() BigInt {
	return BigInt{v: new(big.Int).Neg(x.int())}
}

func (x BigInt) Add(y BigInt) BigInt {
	return BigInt{v: new(big.Int).Add(x.int(), y.int())}
}

func (x BigInt) Sub(y BigInt) BigInt {
	return BigInt{v: new(big.Int).Sub(x.int(), y.int())}
}

func (x BigInt) Mul(y BigInt) BigInt {
	return BigInt{v: new(big.Int).Mul(x.int(), y.int())}
}

// Quo returns x/y truncated toward zero. It panics with ErrDivideByZero if y
// is 0.
func (x BigInt) Quo(y BigInt) BigInt {
	if y.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	return BigInt{v: new(big.Int).Quo(x.int(), y.int())}
}

// Rem returns the truncated remainder of x/y. It panics with ErrDivideByZero
// if y is 0.
func (x BigInt) Rem(y BigInt) BigInt {
	if y.Sign() == 0 {
		panic(ErrDivideByZero)
	}
	return BigInt{v: new(big.Int).Rem(x.int(), y.int())}
}

func (x BigInt) MagSquare() BigInt { return x.Mul(x) }

func (x BigInt) OrderOf(power int) BigInt {
	if power < 0 {
		panic(ErrNegativePower)
	}
	return BigInt{v: new(big.Int).Exp(bigTen, big.NewInt(int64(power)), nil)}
}

func (x BigInt) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.int()).Float64()
	return f
}

func (x BigInt) String() string { return x.int().String() }

func (x BigInt) LaTeX() string { return x.String() }

func (x BigInt) Format(s fmt.State, c rune) {
	x.int().Format(s, c)
}
