package geometry

import "ratio/src/math/rational"

type Face struct {
	Next                     *Face
	NearbyVertex             *Vertex
	NextWithSameNearbyVertex *Face
	Origin                   Point32
	Dir0                     Point32
	Dir1                     Point32
}

// NewFace builds the face spanned by a, b and c and links it into a's list
// of nearby faces. All three vertices must be integer vertices.
func NewFace(a, b, c *Vertex) *Face {
	f := &Face{}
	f.init(a, b, c)
	return f
}

func (f *Face) init(a, b, c *Vertex) {
	f.NearbyVertex = a
	f.Origin = a.Point
	f.Dir0 = b.Subtract(a)
	f.Dir1 = c.Subtract(a)

	if a.LastNearbyFace != nil {
		a.LastNearbyFace.NextWithSameNearbyVertex = f
	} else {
		a.FirstNearbyFace = f
	}
	a.LastNearbyFace = f
}

func (f *Face) Normal() Point64 {
	return f.Dir0.Cross32(f.Dir1)
}

// Side reports whether v lies in front of (+1), on (0) or behind (-1) the
// plane of f, with the normal orienting the front.
func (f *Face) Side(v *Vertex) int {
	n := f.Normal()
	return v.Dot(n).Cmp(rational.Whole(f.Origin.Dot128(n)))
}

func (f *Face) Plane() Plane {
	n := f.Normal()
	return Plane{Normal: n, Offset: rational.Whole(f.Origin.Dot128(n).Neg())}
}
