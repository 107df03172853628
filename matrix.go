package adage

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4x4 is a 4x4 transform stored as 16 floats in row-major order.
// Points are treated as column vectors, so transforms compose left to
// right as A.Multiply(B) meaning "apply B, then A".
type Matrix4x4 [16]float64

// singularTolerance is the pivot magnitude below which Inverse gives up.
const singularTolerance = 1e-10

func IdentityMatrix() Matrix4x4 {
	return Matrix4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Matrix4x4) At(row, col int) float64 {
	return m[row*4+col]
}

func (m *Matrix4x4) Set(row, col int, value float64) {
	m[row*4+col] = value
}

// TranslationMatrix builds a transform that moves points by (x, y, z).
func TranslationMatrix(x, y, z float64) Matrix4x4 {
	m := IdentityMatrix()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// ScaleMatrix builds a transform that scales each axis independently.
func ScaleMatrix(x, y, z float64) Matrix4x4 {
	m := IdentityMatrix()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// RotationXMatrix is a right-handed rotation of theta radians about the X axis.
func RotationXMatrix(theta float64) Matrix4x4 {
	c, s := math.Cos(theta), math.Sin(theta)
	m := IdentityMatrix()
	m.Set(1, 1, c)
	m.Set(1, 2, -s)
	m.Set(2, 1, s)
	m.Set(2, 2, c)
	return m
}

// RotationYMatrix is a right-handed rotation of theta radians about the Y axis.
func RotationYMatrix(theta float64) Matrix4x4 {
	c, s := math.Cos(theta), math.Sin(theta)
	m := IdentityMatrix()
	m.Set(0, 0, c)
	m.Set(0, 2, s)
	m.Set(2, 0, -s)
	m.Set(2, 2, c)
	return m
}

// RotationZMatrix is a right-handed rotation of theta radians about the Z axis.
func RotationZMatrix(theta float64) Matrix4x4 {
	c, s := math.Cos(theta), math.Sin(theta)
	m := IdentityMatrix()
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// PerspectiveMatrix builds an OpenGL-style perspective projection. fovY is
// the vertical field of view in radians. Row 3 encodes -1 so the homogeneous
// W of a projected point carries -z for the perspective divide.
func PerspectiveMatrix(fovY, aspect, near, far float64) Matrix4x4 {
	f := 1.0 / math.Tan(fovY/2.0)
	var m Matrix4x4
	m.Set(0, 0, f/aspect)
	m.Set(1, 1, f)
	m.Set(2, 2, (far+near)/(near-far))
	m.Set(2, 3, (2*far*near)/(near-far))
	m.Set(3, 2, -1)
	return m
}

// LookAtMatrix builds a view matrix for a camera at eye looking toward
// target. The camera looks down its local negative Z axis (right-handed).
func LookAtMatrix(eye, target, up Vector3) Matrix4x4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	cameraUp := right.Cross(forward)

	m := IdentityMatrix()
	m.Set(0, 0, right.X)
	m.Set(0, 1, right.Y)
	m.Set(0, 2, right.Z)
	m.Set(0, 3, -right.Dot(eye))

	m.Set(1, 0, cameraUp.X)
	m.Set(1, 1, cameraUp.Y)
	m.Set(1, 2, cameraUp.Z)
	m.Set(1, 3, -cameraUp.Dot(eye))

	m.Set(2, 0, -forward.X)
	m.Set(2, 1, -forward.Y)
	m.Set(2, 2, -forward.Z)
	m.Set(2, 3, forward.Dot(eye))
	return m
}

// Multiply composes m with other as standard row-by-column multiplication.
func (m Matrix4x4) Multiply(other Matrix4x4) Matrix4x4 {
	var result Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.At(row, k) * other.At(k, col)
			}
			result.Set(row, col, sum)
		}
	}
	return result
}

// MultiplyPoint transforms a position, using homogeneous w=1 so translation
// applies. If the result has a non-unit w it is divided back out.
func (m Matrix4x4) MultiplyPoint(v Vector3) Vector3 {
	x := m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]
	y := m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]
	z := m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]
	w := m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]
	if w != 0 && w != 1 {
		return Vector3{X: x / w, Y: y / w, Z: z / w}
	}
	return Vector3{X: x, Y: y, Z: z}
}

// MultiplyVector transforms a direction or normal, using homogeneous w=0 so
// translation is ignored.
func (m Matrix4x4) MultiplyVector(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// MultiplyPoint4 transforms a position with w=1 and keeps the full
// homogeneous result, leaving the perspective divide to the caller.
func (m Matrix4x4) MultiplyPoint4(v Vector3) Vector4 {
	return Vector4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15],
	}
}

// Inverse computes the inverse by Gauss-Jordan elimination on the augmented
// matrix [A|I] with partial pivoting. The second return is false when the
// matrix is singular, i.e. the best pivot in some column is below tolerance.
func (m Matrix4x4) Inverse() (Matrix4x4, bool) {
	// 4 rows x 8 cols, left half starts as m and the right half as identity.
	var aug [32]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			aug[row*8+col] = m.At(row, col)
		}
		aug[row*8+4+row] = 1
	}

	for col := 0; col < 4; col++ {
		// Partial pivoting: pick the row with the largest magnitude in
		// this column.
		pivotRow := col
		maxVal := math.Abs(aug[col*8+col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(aug[row*8+col]); v > maxVal {
				maxVal = v
				pivotRow = row
			}
		}
		if maxVal < singularTolerance {
			return Matrix4x4{}, false
		}
		if pivotRow != col {
			for k := 0; k < 8; k++ {
				aug[col*8+k], aug[pivotRow*8+k] = aug[pivotRow*8+k], aug[col*8+k]
			}
		}

		pivot := aug[col*8+col]
		for k := 0; k < 8; k++ {
			aug[col*8+k] /= pivot
		}

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := aug[row*8+col]
			for k := 0; k < 8; k++ {
				aug[row*8+k] -= factor * aug[col*8+k]
			}
		}
	}

	var result Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.Set(row, col, aug[row*8+4+col])
		}
	}
	return result, true
}

func (m Matrix4x4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%f %f %f %f", m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
	return sb.String()
}

// FromMGL64 converts an mgl64 matrix (column-major storage) into the
// row-major layout used here.
func FromMGL64(m mgl64.Mat4) Matrix4x4 {
	var result Matrix4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.Set(row, col, m.At(row, col))
		}
	}
	return result
}

// ToMGL64 is the reverse conversion.
func (m Matrix4x4) ToMGL64() mgl64.Mat4 {
	var result mgl64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.Set(row, col, m.At(row, col))
		}
	}
	return result
}
