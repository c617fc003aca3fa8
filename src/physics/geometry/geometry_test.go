package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ratio/src/math/rational"
	"ratio/src/math/scalar"
)

var i128 = scalar.Int128From64

func r128(n, d int64) Rational128 { return NewRational128(i128(n), i128(d)) }

func TestPoint32Cross(t *testing.T) {
	for idx, tc := range []struct {
		a, b Point32
		out  Point64
	}{
		{NewPoint32(1, 0, 0), NewPoint32(0, 1, 0), Point64{0, 0, 1}},
		{NewPoint32(0, 1, 0), NewPoint32(1, 0, 0), Point64{0, 0, -1}},
		{NewPoint32(2, 3, 4), NewPoint32(5, 6, 7), Point64{-3, 6, -3}},

		// Products overflow 32 bits.
		{NewPoint32(math.MaxInt32, 0, 0), NewPoint32(0, math.MaxInt32, 0), Point64{0, 0, math.MaxInt32 * math.MaxInt32}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			require.Equal(t, tc.out, tc.a.Cross32(tc.b))
			require.Equal(t, tc.out, tc.a.Cross64(Point64{Int64(tc.b.X), Int64(tc.b.Y), Int64(tc.b.Z)}))
		})
	}
}

func TestPoint32Dot(t *testing.T) {
	a := NewPoint32(math.MaxInt32, -2, 3)
	b := NewPoint32(math.MaxInt32, 5, 7)
	want := Int64(math.MaxInt32)*math.MaxInt32 - 10 + 21
	require.Equal(t, want, a.Dot32(b))
	require.Equal(t, want, a.Dot64(Point64{math.MaxInt32, 5, 7}))

	big := Point64{X: math.MaxInt64, Y: math.MaxInt64}
	d := NewPoint32(2, 2, 0).Dot128(big)
	require.Equal(t, "36893488147419103228", d.String())
}

func TestPoint32Ops(t *testing.T) {
	a, b := NewPoint32(1, 2, 3), NewPoint32(4, 5, 6)
	require.True(t, a.Add(b).Equals(NewPoint32(5, 7, 9)))
	require.True(t, b.Subtract(a).Equals(NewPoint32(3, 3, 3)))
	require.True(t, a.NotEquals(b))
	require.True(t, a.Subtract(a).IsZero())
	require.Equal(t, -1, a.Index())
}

func TestPoint64(t *testing.T) {
	require.True(t, Point64{}.IsZero())
	require.Equal(t, Int64(32), Point64{1, 2, 3}.Dot(Point64{4, 5, 6}))

	r := Point64{1, 1, 0}.Ratio(Point64{3, 3, 0}, Point64{2, 2, 0})
	require.True(t, r.Equal(rational.New[Int64](3, 2)), "found %s", r)
	require.PanicsWithValue(t, rational.ErrZeroDenominator, func() {
		Point64{1, 0, 0}.Ratio(Point64{1, 0, 0}, Point64{0, 1, 0})
	})
}

func TestPointRational128(t *testing.T) {
	p := NewPointRational128(i128(2), i128(-3), i128(0), i128(4))
	require.Equal(t, "(1/2)", p.Coord(0).String())
	require.Equal(t, "(-3/4)", p.Coord(1).String())
	require.Equal(t, "(0/1)", p.Coord(2).String())
	require.Panics(t, func() { p.Coord(3) })

	require.Equal(t, Vector3{X: 0.5, Y: -0.75, Z: 0}, p.Vector3())
	require.Equal(t, "-1", p.Dot(Point64{1, 1, 1}).String())
}

func TestVertexDot(t *testing.T) {
	n := Point64{1, 2, 3}

	iv := NewIntegerVertex(NewPoint32(1, 1, 1), 0)
	require.True(t, iv.IsInteger())
	require.True(t, iv.Dot(n).Equal(r128(6, 1)))

	rv := NewRationalVertex(NewPointRational128(i128(1), i128(1), i128(1), i128(2)))
	require.False(t, rv.IsInteger())
	require.True(t, rv.Dot(n).Equal(r128(3, 1)))

	rv = NewRationalVertex(NewPointRational128(i128(1), i128(0), i128(0), i128(-3)))
	require.True(t, rv.Dot(n).Equal(r128(-1, 3)))

	// The integer and rational views of an integer vertex agree.
	require.True(t, iv.Dot(n).Equal(rational.New(iv.Point128.Dot(n), iv.Point128.Denominator)))
}

func TestVertexSubtract(t *testing.T) {
	a := NewIntegerVertex(NewPoint32(1, 2, 3), 0)
	b := NewIntegerVertex(NewPoint32(4, 4, 4), 1)
	require.True(t, b.Subtract(a).Equals(NewPoint32(3, 2, 1)))
}

func TestFace(t *testing.T) {
	a := NewIntegerVertex(NewPoint32(0, 0, 0), 0)
	b := NewIntegerVertex(NewPoint32(1, 0, 0), 1)
	c := NewIntegerVertex(NewPoint32(0, 1, 0), 2)
	f := NewFace(a, b, c)

	require.Equal(t, Point64{0, 0, 1}, f.Normal())
	require.Same(t, f, a.FirstNearbyFace)
	require.Same(t, f, a.LastNearbyFace)

	g := NewFace(a, c, b)
	require.Same(t, f, a.FirstNearbyFace)
	require.Same(t, g, a.LastNearbyFace)
	require.Same(t, g, f.NextWithSameNearbyVertex)

	for _, tc := range []struct {
		v    *Vertex
		side int
	}{
		{NewIntegerVertex(NewPoint32(5, 5, 1), 3), 1},
		{NewIntegerVertex(NewPoint32(5, 5, -1), 3), -1},
		{NewIntegerVertex(NewPoint32(5, 5, 0), 3), 0},
		{NewRationalVertex(NewPointRational128(i128(1), i128(1), i128(1), i128(1<<40))), 1},
		{NewRationalVertex(NewPointRational128(i128(1), i128(1), i128(-1), i128(1<<40))), -1},
		{NewRationalVertex(NewPointRational128(i128(1), i128(1), i128(1), i128(-7))), -1},
	} {
		require.Equal(t, tc.side, f.Side(tc.v))
		require.Equal(t, -tc.side, g.Side(tc.v))
	}
}

func TestPlanes(t *testing.T) {
	// Unit cube [0, 1]^3 with outward normals.
	planes := []Plane{
		{Normal: Point64{1, 0, 0}, Offset: r128(-1, 1)},
		{Normal: Point64{-1, 0, 0}},
		{Normal: Point64{0, 1, 0}, Offset: r128(-1, 1)},
		{Normal: Point64{0, -1, 0}},
		{Normal: Point64{0, 0, 1}, Offset: r128(-1, 1)},
		{Normal: Point64{0, 0, -1}},
	}
	zero := Rational128{}
	pt := func(x, y, z, d int64) PointRational128 {
		return NewPointRational128(i128(x), i128(y), i128(z), i128(d))
	}

	for _, tc := range []struct {
		p      PointRational128
		margin Rational128
		inside bool
	}{
		{pt(1, 1, 1, 2), zero, true},
		{pt(1, 1, 1, 1), zero, true}, // on the boundary
		{pt(3, 1, 1, 2), zero, false},
		{pt(3, 1, 1, 2), r128(1, 2), true},
		{pt(1, 1, 1, 2), r128(-1, 1), false},

		// Beyond float64 resolution.
		{pt(1<<60+1, 1, 1, 1<<60), zero, false},
		{pt(1<<60-1, 1, 1, 1<<60), zero, true},
	} {
		t.Run(fmt.Sprintf("%s,%s,%s", tc.p.Coord(0), tc.p.Coord(1), tc.p.Coord(2)), func(t *testing.T) {
			require.Equal(t, tc.inside, IsPointInsidePlanes(planes, tc.p, tc.margin))
		})
	}

	top := planes[4]
	require.True(t, AreVerticesBehindPlane(top, []PointRational128{pt(0, 0, 0, 1), pt(1, 1, 1, 1), pt(1, 1, 1, 3)}, zero))
	require.False(t, AreVerticesBehindPlane(top, []PointRational128{pt(0, 0, 0, 1), pt(0, 0, 4, 3)}, zero))
	require.True(t, AreVerticesBehindPlane(top, []PointRational128{pt(0, 0, 4, 3)}, r128(1, 3)))
	require.True(t, AreVerticesBehindPlane(top, nil, zero))
}

func TestPlaneFromPoints(t *testing.T) {
	pl := PlaneFromPoints(NewPoint32(0, 0, 2), NewPoint32(1, 0, 2), NewPoint32(0, 1, 2))
	require.Equal(t, Point64{0, 0, 1}, pl.Normal)
	require.True(t, pl.Offset.Equal(r128(-2, 1)))
	require.True(t, pl.Distance(NewPointRational128(i128(9), i128(9), i128(5), i128(2))).Equal(r128(1, 2)))

	a := NewIntegerVertex(NewPoint32(0, 0, 2), 0)
	b := NewIntegerVertex(NewPoint32(1, 0, 2), 1)
	c := NewIntegerVertex(NewPoint32(0, 1, 2), 2)
	fp := NewFace(a, b, c).Plane()
	require.Equal(t, pl.Normal, fp.Normal)
	require.True(t, pl.Offset.Equal(fp.Offset))
}

func TestRationalAliases(t *testing.T) {
	require.True(t, Rational128FromInt64(-4).Equal(r128(-8, 2)))
	require.Equal(t, "(1/3)", rational.New[Int64](2, 6).String())
	var r Rational64
	require.True(t, r.IsZero())
}
