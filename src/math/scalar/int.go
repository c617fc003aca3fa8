package scalar

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

type Int32 int32
type Int64 int64

var (
	_ Scalar[Int32]      = Int32(0)
	_ PowersOfTen[Int32] = Int32(0)
	_ MagSquarer[Int32]  = Int32(0)
	_ LaTeXer            = Int32(0)
	_ Floater            = Int32(0)

	_ Scalar[Int64]      = Int64(0)
	_ PowersOfTen[Int64] = Int64(0)
	_ MagSquarer[Int64]  = Int64(0)
	_ LaTeXer            = Int64(0)
	_ Floater            = Int64(0)
)

func cmpInt[I constraints.Signed](x, y I) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// powInt computes 10**power with wraparound on overflow.
func powInt[I constraints.Signed](power int) I {
	if power < 0 {
		panic(ErrNegativePower)
	}
	v := I(1)
	for ; power > 0; power-- {
		v *= 10
	}
	return v
}

func (x Int32) Zero() Int32         { return 0 }
func (x Int32) One() Int32          { return 1 }
func (x Int32) Cmp(y Int32) int     { return cmpInt(x, y) }
func (x Int32) Neg() Int32          { return -x }
func (x Int32) Add(y Int32) Int32   { return x + y }
func (x Int32) Sub(y Int32) Int32   { return x - y }
func (x Int32) Mul(y Int32) Int32   { return x * y }
func (x Int32) Quo(y Int32) Int32   { return x / y }
func (x Int32) Rem(y Int32) Int32   { return x % y }
func (x Int32) MagSquare() Int32    { return x * x }
func (x Int32) OrderOf(p int) Int32 { return powInt[Int32](p) }
func (x Int32) Float64() float64    { return float64(x) }
func (x Int32) String() string      { return strconv.FormatInt(int64(x), 10) }
func (x Int32) LaTeX() string       { return x.String() }

func (x Int64) Zero() Int64         { return 0 }
func (x Int64) One() Int64          { return 1 }
func (x Int64) Cmp(y Int64) int     { return cmpInt(x, y) }
func (x Int64) Neg() Int64          { return -x }
func (x Int64) Add(y Int64) Int64   { return x + y }
func (x Int64) Sub(y Int64) Int64   { return x - y }
func (x Int64) Mul(y Int64) Int64   { return x * y }
func (x Int64) Quo(y Int64) Int64   { return x / y }
func (x Int64) Rem(y Int64) Int64   { return x % y }
func (x Int64) MagSquare() Int64    { return x * x }
func (x Int64) OrderOf(p int) Int64 { return powInt[Int64](p) }
func (x Int64) Float64() float64    { return float64(x) }
func (x Int64) String() string      { return strconv.FormatInt(int64(x), 10) }
func (x Int64) LaTeX() string       { return x.String() }

// ParseInt64 parses a base 10 integer.
func ParseInt64(s string) (Int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrRange, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return Int64(v), nil
}
