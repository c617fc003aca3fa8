package scalar

import (
	"fmt"
	"math/big"
	"strconv"

	"lukechampine.com/uint128"
)

// Int128 is a signed two's complement 128-bit integer. Arithmetic wraps on
// overflow, like the built-in integer types. The bits are held in a
// uint128.Uint128, whose wrapping addition, subtraction and multiplication
// are also correct for two's complement.
type Int128 struct {
	v uint128.Uint128
}

var (
	_ Scalar[Int128]      = Int128{}
	_ PowersOfTen[Int128] = Int128{}
	_ MagSquarer[Int128]  = Int128{}
	_ LaTeXer             = Int128{}
	_ Floater             = Int128{}
)

func Int128From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return Int128{uint128.New(uint64(v), hi)}
}

func Int128From8(v int8) Int128   { return Int128From64(int64(v)) }
func Int128From16(v int16) Int128 { return Int128From64(int64(v)) }
func Int128From32(v int32) Int128 { return Int128From64(int64(v)) }

func Int128FromRaw(hi, lo uint64) Int128 {
	return Int128{uint128.New(lo, hi)}
}

// Int128FromBigInt converts v, reporting whether the conversion is exact.
// Out of range values saturate at MinInt128 or MaxInt128.
func Int128FromBigInt(v *big.Int) (out Int128, accurate bool) {
	if v.Cmp(minBigInt128) < 0 {
		return MinInt128, false
	}
	if v.Cmp(maxBigInt128) > 0 {
		return MaxInt128, false
	}
	if v.Sign() >= 0 {
		u, _ := Uint128FromBigInt(v)
		return Int128{u.v}, true
	}
	u, _ := Uint128FromBigInt(new(big.Int).Neg(v))
	return Int128{u.v}.Neg(), true
}

// ParseInt128 parses a base 10 integer.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	v, acc := Int128FromBigInt(b)
	if !acc {
		return Int128{}, fmt.Errorf("%w: %q", ErrRange, s)
	}
	return v, nil
}

func (i Int128) Raw() (hi, lo uint64) { return i.v.Hi, i.v.Lo }

func (i Int128) IsZero() bool { return i.v.IsZero() }

func (i Int128) Sign() int {
	if i.v.IsZero() {
		return 0
	} else if int64(i.v.Hi) < 0 {
		return -1
	}
	return 1
}

func (i Int128) Equal(n Int128) bool { return i.v.Equals(n.v) }

func (i Int128) Cmp(n Int128) int {
	if i.v.Hi == n.v.Hi {
		return i.v.Cmp(n.v)
	}
	if int64(i.v.Hi) > int64(n.v.Hi) {
		return 1
	}
	return -1
}

func (i Int128) Add(n Int128) Int128 { return Int128{i.v.AddWrap(n.v)} }

func (i Int128) Add64(n int64) Int128 { return i.Add(Int128From64(n)) }

func (i Int128) Sub(n Int128) Int128 { return Int128{i.v.SubWrap(n.v)} }

func (i Int128) Sub64(n int64) Int128 { return i.Sub(Int128From64(n)) }

func (i Int128) Inc() Int128 { return i.Add(oneInt128) }

func (i Int128) Dec() Int128 { return i.Sub(oneInt128) }

// Neg returns -i. Negating MinInt128 yields MinInt128.
func (i Int128) Neg() Int128 {
	return Int128{uint128.Zero.SubWrap(i.v)}
}

// Abs returns |i|. The absolute value of MinInt128 overflows to MinInt128;
// use AbsUint128 to get it exactly.
func (i Int128) Abs() Int128 {
	if i.Sign() < 0 {
		return i.Neg()
	}
	return i
}

func (i Int128) AbsUint128() Uint128 {
	if i.Equal(MinInt128) {
		return minInt128AsUint128
	}
	return Uint128{i.Abs().v}
}

// Mul returns i*n. Two's complement multiplication is the same as unsigned
// multiplication modulo 2**128.
func (i Int128) Mul(n Int128) Int128 { return Int128{i.v.MulWrap(n.v)} }

func (i Int128) Mul64(n int64) Int128 { return i.Mul(Int128From64(n)) }

// QuoRem returns the truncated quotient and remainder of i/by: the quotient
// rounds toward zero and the remainder takes the sign of i. It panics with
// ErrDivideByZero if by is 0.
func (i Int128) QuoRem(by Int128) (q, r Int128) {
	if by.IsZero() {
		panic(ErrDivideByZero)
	}
	uq, ur := i.AbsUint128().QuoRem(by.AbsUint128())
	q, r = Int128{uq.v}, Int128{ur.v}
	if (i.Sign() < 0) != (by.Sign() < 0) {
		q = q.Neg()
	}
	if i.Sign() < 0 {
		r = r.Neg()
	}
	return q, r
}

func (i Int128) QuoRem64(by int64) (q Int128, r int64) {
	qq, rr := i.QuoRem(Int128From64(by))
	return qq, int64(rr.v.Lo)
}

func (i Int128) Quo(by Int128) Int128 {
	q, _ := i.QuoRem(by)
	return q
}

func (i Int128) Rem(by Int128) Int128 {
	_, r := i.QuoRem(by)
	return r
}

func (i Int128) Zero() Int128 { return Int128{} }

func (i Int128) One() Int128 { return oneInt128 }

func (i Int128) MagSquare() Int128 { return i.Mul(i) }

// OrderOf returns 10**power, wrapping past 10**38. It panics with
// ErrNegativePower if power < 0.
func (i Int128) OrderOf(power int) Int128 {
	if power < 0 {
		panic(ErrNegativePower)
	}
	v := oneInt128
	for ; power > 0; power-- {
		v = v.Mul(tenInt128)
	}
	return v
}

func (i Int128) IsInt64() bool {
	if int64(i.v.Hi) < 0 {
		return i.v.Hi == maxUint64 && i.v.Lo >= 1<<63
	}
	return i.v.Hi == 0 && i.v.Lo <= maxInt64
}

// AsInt64 truncates i to its low 64 bits.
func (i Int128) AsInt64() int64 { return int64(i.v.Lo) }

// MustInt64 panics with ErrRange if i does not fit in an int64.
func (i Int128) MustInt64() int64 {
	if !i.IsInt64() {
		panic(fmt.Errorf("%w: %s does not fit in int64", ErrRange, i))
	}
	return int64(i.v.Lo)
}

func (i Int128) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i Int128) IntoBigInt(b *big.Int) {
	i.AbsUint128().IntoBigInt(b)
	if i.Sign() < 0 {
		b.Neg(b)
	}
}

func (i Int128) AsFloat64() float64 {
	if i.Sign() < 0 {
		return -i.AbsUint128().AsFloat64()
	}
	return Uint128{i.v}.AsFloat64()
}

func (i Int128) Float64() float64 { return i.AsFloat64() }

func (i Int128) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(int64(i.v.Lo), 10)
	}
	return i.AsBigInt().String()
}

func (i Int128) LaTeX() string { return i.String() }

func (i Int128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// Scan implements fmt.Scanner. Only base 10 is accepted.
func (i *Int128) Scan(state fmt.ScanState, verb rune) error {
	t, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	v, err := ParseInt128(string(t))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int128) UnmarshalText(bts []byte) error {
	v, err := ParseInt128(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string.
func (i Int128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int128) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' && bts[len(bts)-1] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	return i.UnmarshalText(bts)
}
