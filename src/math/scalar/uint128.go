package scalar

import (
	"fmt"
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// Uint128 is an unsigned 128-bit integer. Arithmetic wraps on overflow.
// It backs the magnitude computations of Int128 and is not itself a Scalar,
// since it has no negation.
type Uint128 struct {
	v uint128.Uint128
}

func Uint128From64(v uint64) Uint128 {
	return Uint128{uint128.From64(v)}
}

func Uint128FromRaw(hi, lo uint64) Uint128 {
	return Uint128{uint128.New(lo, hi)}
}

// Uint128FromBigInt converts v, reporting whether the conversion is exact.
// Out of range values saturate at 0 or MaxUint128.
func Uint128FromBigInt(v *big.Int) (out Uint128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.Cmp(maxBigUint128) > 0 {
		return MaxUint128, false
	}
	// FromBig shifts its argument in place.
	return Uint128{uint128.FromBig(new(big.Int).Set(v))}, true
}

func (u Uint128) Raw() (hi, lo uint64) { return u.v.Hi, u.v.Lo }

func (u Uint128) IsZero() bool { return u.v.IsZero() }

func (u Uint128) Equal(n Uint128) bool { return u.v.Equals(n.v) }

func (u Uint128) Cmp(n Uint128) int { return u.v.Cmp(n.v) }

func (u Uint128) LessThan(n Uint128) bool { return u.v.Cmp(n.v) < 0 }

func (u Uint128) Add(n Uint128) Uint128 { return Uint128{u.v.AddWrap(n.v)} }

func (u Uint128) Add64(n uint64) Uint128 { return Uint128{u.v.AddWrap64(n)} }

func (u Uint128) Sub(n Uint128) Uint128 { return Uint128{u.v.SubWrap(n.v)} }

func (u Uint128) Sub64(n uint64) Uint128 { return Uint128{u.v.SubWrap64(n)} }

func (u Uint128) Inc() Uint128 { return u.Add64(1) }

func (u Uint128) Dec() Uint128 { return u.Sub64(1) }

func (u Uint128) Mul(n Uint128) Uint128 { return Uint128{u.v.MulWrap(n.v)} }

func (u Uint128) Mul64(n uint64) Uint128 { return Uint128{u.v.MulWrap64(n)} }

func (u Uint128) Lsh(n uint) Uint128 {
	if n >= 128 {
		return Uint128{}
	}
	return Uint128{u.v.Lsh(n)}
}

func (u Uint128) Rsh(n uint) Uint128 {
	if n >= 128 {
		return Uint128{}
	}
	return Uint128{u.v.Rsh(n)}
}

func (u Uint128) LeadingZeros() uint { return uint(u.v.LeadingZeros()) }

func (u Uint128) BitLen() int { return u.v.Len() }

// QuoRem64 returns u/by and u%by. It panics with ErrDivideByZero if by is 0.
func (u Uint128) QuoRem64(by uint64) (q Uint128, r uint64) {
	if by == 0 {
		panic(ErrDivideByZero)
	}
	q.v, r = u.v.QuoRem64(by)
	return q, r
}

// QuoRem returns u/by and u%by. It panics with ErrDivideByZero if by is 0.
func (u Uint128) QuoRem(by Uint128) (q, r Uint128) {
	if by.IsZero() {
		panic(ErrDivideByZero)
	}
	q.v, r.v = u.v.QuoRem(by.v)
	return q, r
}

func (u Uint128) Quo(by Uint128) Uint128 {
	q, _ := u.QuoRem(by)
	return q
}

func (u Uint128) Rem(by Uint128) Uint128 {
	_, r := u.QuoRem(by)
	return r
}

func (u Uint128) AsBigInt() *big.Int { return u.v.Big() }

func (u Uint128) IntoBigInt(b *big.Int) { b.Set(u.v.Big()) }

func (u Uint128) AsFloat64() float64 {
	if u.v.Hi == 0 {
		return float64(u.v.Lo)
	}
	return math.Ldexp(float64(u.v.Hi), 64) + float64(u.v.Lo)
}

func (u Uint128) IsUint64() bool { return u.v.Hi == 0 }

func (u Uint128) String() string { return u.v.String() }

func (u Uint128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}
