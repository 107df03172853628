package adage

// Vector4 is a point in homogeneous coordinates. W is 1 for positions and 0
// for directions; after a perspective projection W carries the divisor for
// the perspective divide.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

func (v Vector4) Dot(other Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Vec3 drops the W component without dividing.
func (v Vector4) Vec3() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
