package geometry

import (
	"ratio/src/math/rational"
	"ratio/src/math/scalar"
)

// Vertex is either an integer vertex (Point.Index() >= 0) or a rational one
// whose position is Point128.
type Vertex struct {
	Next, Previous                  *Vertex
	FirstNearbyFace, LastNearbyFace *Face
	Point128                        PointRational128
	Point                           Point32
}

func NewIntegerVertex(p Point32, index int) *Vertex {
	p.index = index
	one := scalar.Int128From64(1)
	return &Vertex{
		Point:    p,
		Point128: NewPointRational128(widen(Int64(p.X)), widen(Int64(p.Y)), widen(Int64(p.Z)), one),
	}
}

func NewRationalVertex(p PointRational128) *Vertex {
	return &Vertex{Point: NewPoint32(0, 0, 0), Point128: p}
}

func (vx *Vertex) IsInteger() bool {
	return vx.Point.index >= 0
}

func (vx *Vertex) Subtract(vy *Vertex) Point32 {
	return vx.Point.Subtract(vy.Point)
}

// Dot returns the exact value of vx . p.
func (vx *Vertex) Dot(p Point64) Rational128 {
	if vx.IsInteger() {
		return rational.Whole(vx.Point.Dot128(p))
	}
	return rational.New(vx.Point128.Dot(p), vx.Point128.Denominator)
}
