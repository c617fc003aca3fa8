package rational

import (
	"math/big"
	"testing"

	"ratio/src/math/scalar"
)

var (
	benchQ64Result  Rational[scalar.Int64]
	benchQ128Result Rational[scalar.Int128]
	benchQBigResult Rational[scalar.BigInt]
	benchRatResult  *big.Rat
	benchBoolResult bool
)

func BenchmarkAddInt64(b *testing.B) {
	x, y := New[scalar.Int64](355, 113), New[scalar.Int64](-22, 7)
	for i := 0; i < b.N; i++ {
		benchQ64Result = x.Add(y)
	}
}

func BenchmarkAddInt128(b *testing.B) {
	x := New(scalar.Int128From64(355), scalar.Int128From64(113))
	y := New(scalar.Int128From64(-22), scalar.Int128From64(7))
	for i := 0; i < b.N; i++ {
		benchQ128Result = x.Add(y)
	}
}

func BenchmarkAddBigInt(b *testing.B) {
	x := New(scalar.NewBigInt(355), scalar.NewBigInt(113))
	y := New(scalar.NewBigInt(-22), scalar.NewBigInt(7))
	for i := 0; i < b.N; i++ {
		benchQBigResult = x.Add(y)
	}
}

func BenchmarkAddBigRat(b *testing.B) {
	x, y := big.NewRat(355, 113), big.NewRat(-22, 7)
	for i := 0; i < b.N; i++ {
		benchRatResult = new(big.Rat).Add(x, y)
	}
}

func BenchmarkCmpInt64(b *testing.B) {
	x, y := New[scalar.Int64](355, 113), New[scalar.Int64](22, 7)
	for i := 0; i < b.N; i++ {
		benchBoolResult = x.Less(y)
	}
}

func BenchmarkMulNested(b *testing.B) {
	x := Whole(New[scalar.Int64](355, 113))
	y := New(New[scalar.Int64](-22, 7), New[scalar.Int64](3, 5))
	var r Rational[Rational[scalar.Int64]]
	for i := 0; i < b.N; i++ {
		r = x.Mul(y)
	}
	benchBoolResult = r.IsZero()
}
