package scalar

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntRing(t *testing.T) {
	for _, tc := range []struct {
		x, y                      Int64
		sum, diff, prod, quo, rem Int64
	}{
		{7, 2, 9, 5, 14, 3, 1},
		{-7, 2, -5, -9, -14, -3, -1},
		{7, -2, 5, 9, -14, -3, 1},
		{-7, -2, -9, -5, 14, 3, -1},
		{0, 5, 5, -5, 0, 0, 0},
	} {
		t.Run(fmt.Sprintf("%d,%d", tc.x, tc.y), func(t *testing.T) {
			require.Equal(t, tc.sum, tc.x.Add(tc.y))
			require.Equal(t, tc.diff, tc.x.Sub(tc.y))
			require.Equal(t, tc.prod, tc.x.Mul(tc.y))
			require.Equal(t, tc.quo, tc.x.Quo(tc.y))
			require.Equal(t, tc.rem, tc.x.Rem(tc.y))

			x32, y32 := Int32(tc.x), Int32(tc.y)
			require.Equal(t, Int32(tc.quo), x32.Quo(y32))
			require.Equal(t, Int32(tc.rem), x32.Rem(y32))
		})
	}
}

func TestIntCmp(t *testing.T) {
	require.Equal(t, -1, Int64(-3).Cmp(2))
	require.Equal(t, 0, Int64(2).Cmp(2))
	require.Equal(t, 1, Int32(3).Cmp(2))
	require.Equal(t, -1, Int64(math.MinInt64).Cmp(math.MaxInt64))
}

func TestIntOrderOf(t *testing.T) {
	require.Equal(t, Int64(1), OrderOf[Int64](0))
	require.Equal(t, Int64(1000), OrderOf[Int64](3))
	require.Equal(t, Int32(1000000000), OrderOf[Int32](9))
	require.PanicsWithValue(t, ErrNegativePower, func() { OrderOf[Int64](-1) })
	require.PanicsWithValue(t, ErrNegativePower, func() { OrderOf[Int32](-2) })
}

func TestIntFormat(t *testing.T) {
	require.Equal(t, "-42", Int64(-42).String())
	require.Equal(t, "-42", Int64(-42).LaTeX())
	require.Equal(t, "7", Int32(7).String())
	require.Equal(t, "(7)", fmt.Sprintf("(%v)", Int32(7)))
	require.Equal(t, 2.0, Int64(2).Float64())
	require.Equal(t, Int64(9), Int64(-3).MagSquare())
}

func TestParseInt64(t *testing.T) {
	v, err := ParseInt64("-9223372036854775808")
	require.NoError(t, err)
	require.Equal(t, Int64(math.MinInt64), v)

	_, err = ParseInt64("9223372036854775808")
	require.ErrorIs(t, err, ErrRange)

	_, err = ParseInt64("three")
	require.ErrorIs(t, err, ErrSyntax)

	_, err = ParseInt64("")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestHelpers(t *testing.T) {
	require.Equal(t, Int64(0), Zero[Int64]())
	require.Equal(t, Int64(1), One[Int64]())
	require.True(t, IsZero(Int64(0)))
	require.False(t, IsZero(Int32(-1)))
	require.Equal(t, -1, Sign(Int64(-5)))
	require.Equal(t, 0, Sign(Int64(0)))
	require.Equal(t, Int64(5), Abs(Int64(-5)))
	require.Equal(t, Int64(5), Abs(Int64(5)))
	require.True(t, Equal(i64(3), i64(3)))
	require.True(t, Less(i64(-3), i64(3)))
	require.Equal(t, Int64(4), Max(Int64(4), Int64(-4)))
	require.Equal(t, Int64(-4), Min(Int64(4), Int64(-4)))
	require.True(t, Max(NewBigInt(2), NewBigInt(9)).Cmp(NewBigInt(9)) == 0)
}
