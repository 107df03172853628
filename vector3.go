package adage

import "math"

// Vector3 is a 3D point or direction. All operations are pure and return
// new values; nothing here mutates the receiver.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul multiplies component-wise. Used for combining light and material
// colors, which are stored as Vector3 with channels in [0,1].
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit-length copy of v. A zero vector stays zero
// rather than dividing by zero.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Length()
}

// TriangleNormal computes the unit normal of the triangle v0,v1,v2 from its
// winding, via (v1-v0) x (v2-v0). Counter-clockwise winding as seen from
// outside gives an outward-facing normal.
func TriangleNormal(v0, v1, v2 Vector3) Vector3 {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	return edge1.Cross(edge2).Normalize()
}
