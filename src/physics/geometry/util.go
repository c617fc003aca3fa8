package geometry

import "ratio/src/math/rational"

// Plane is the set of points x with Normal . x + Offset == 0. Points with a
// positive distance are outside.
type Plane struct {
	Normal Point64
	Offset Rational128
}

func PlaneFromPoints(a, b, c Point32) Plane {
	n := b.Subtract(a).Cross32(c.Subtract(a))
	return Plane{Normal: n, Offset: rational.Whole(a.Dot128(n).Neg())}
}

// Distance returns Normal . p + Offset, scaled by the length of Normal.
func (pl Plane) Distance(p PointRational128) Rational128 {
	return rational.New(p.Dot(pl.Normal), p.Denominator).Add(pl.Offset)
}

func IsPointInsidePlanes(planes []Plane, point PointRational128, margin Rational128) bool {
	for i := 0; i < len(planes); i++ {
		dist := planes[i].Distance(point).Sub(margin)
		if dist.Sign() > 0 {
			return false
		}
	}
	return true
}

func AreVerticesBehindPlane(plane Plane, vertices []PointRational128, margin Rational128) bool {
	for i := 0; i < len(vertices); i++ {
		dist := plane.Distance(vertices[i]).Sub(margin)
		if dist.Sign() > 0 {
			return false
		}
	}
	return true
}
