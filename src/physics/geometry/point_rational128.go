package geometry

import "ratio/src/math/rational"

// PointRational128 is the homogeneous point (X, Y, Z) / Denominator.
type PointRational128 struct {
	X, Y, Z, Denominator Int128
}

func NewPointRational128(x Int128, y Int128, z Int128, denominator Int128) PointRational128 {
	return PointRational128{X: x, Y: y, Z: z, Denominator: denominator}
}

// Coord returns coordinate i (0, 1 or 2) in lowest terms.
func (r PointRational128) Coord(i int) Rational128 {
	switch i {
	case 0:
		return rational.New(r.X, r.Denominator)
	case 1:
		return rational.New(r.Y, r.Denominator)
	case 2:
		return rational.New(r.Z, r.Denominator)
	}
	panic("geometry: coordinate index out of range")
}

// Dot returns the numerator of r . p; the denominator is r.Denominator.
func (r PointRational128) Dot(p Point64) Int128 {
	return r.X.Mul(widen(p.X)).Add(r.Y.Mul(widen(p.Y))).Add(r.Z.Mul(widen(p.Z)))
}

func (r PointRational128) Vector3() Vector3 {
	return Vector3{
		X: r.Coord(0).Float64(),
		Y: r.Coord(1).Float64(),
		Z: r.Coord(2).Float64(),
	}
}
