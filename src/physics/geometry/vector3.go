package geometry

// Vector3 is a lossy floating point view of a point, for consumers outside
// the exact predicates.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func (v3 Vector3) Dot(v Vector3) float64 {
	return v3.X*v.X +
		v3.Y*v.Y +
		v3.Z*v.Z
}
