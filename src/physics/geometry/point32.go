package geometry

// Point32 is an integer point. index is the position of the owning vertex in
// its hull, or -1 when the point is not attached to an integer vertex.
type Point32 struct {
	X, Y, Z Int32
	index   int
}

func NewPoint32(x Int32, y Int32, z Int32) Point32 {
	return Point32{X: x, Y: y, Z: z, index: -1}
}

func (p Point32) IsZero() bool {
	return (p.X == 0) && (p.Y == 0) && (p.Z == 0)
}

func (p Point32) Index() int {
	return p.index
}

// Products are taken in 64 bits so that 32-bit inputs never overflow.
func (p Point32) Cross32(b Point32) Point64 {
	return Point64{
		X: Int64(p.Y)*Int64(b.Z) - Int64(p.Z)*Int64(b.Y), // y * b.z - z * b.y
		Y: Int64(p.Z)*Int64(b.X) - Int64(p.X)*Int64(b.Z), // z * b.x - x * b.z
		Z: Int64(p.X)*Int64(b.Y) - Int64(p.Y)*Int64(b.X), // x * b.y - y * b.x
	}
}

func (p Point32) Cross64(b Point64) Point64 {
	return Point64{
		X: Int64(p.Y)*b.Z - Int64(p.Z)*b.Y,
		Y: Int64(p.Z)*b.X - Int64(p.X)*b.Z,
		Z: Int64(p.X)*b.Y - Int64(p.Y)*b.X,
	}
}

func (p Point32) Dot32(b Point32) Int64 {
	return Int64(p.X)*Int64(b.X) + Int64(p.Y)*Int64(b.Y) + Int64(p.Z)*Int64(b.Z)
}

func (p Point32) Dot64(b Point64) Int64 {
	return Int64(p.X)*b.X + Int64(p.Y)*b.Y + Int64(p.Z)*b.Z
}

// Dot128 is Dot64 without the risk of overflowing 64 bits.
func (p Point32) Dot128(b Point64) Int128 {
	return widen(Int64(p.X)).Mul(widen(b.X)).
		Add(widen(Int64(p.Y)).Mul(widen(b.Y))).
		Add(widen(Int64(p.Z)).Mul(widen(b.Z)))
}

func (p Point32) Equals(b Point32) bool {
	return (p.X == b.X) && (p.Y == b.Y) && (p.Z == b.Z)
}

func (p Point32) NotEquals(b Point32) bool {
	return !p.Equals(b)
}

func (p Point32) Add(b Point32) Point32 {
	return NewPoint32(p.X+b.X, p.Y+b.Y, p.Z+b.Z)
}

func (p Point32) Subtract(b Point32) Point32 {
	return NewPoint32(p.X-b.X, p.Y-b.Y, p.Z-b.Z)
}
