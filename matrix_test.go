package adage

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func matricesAlmostEqual(t *testing.T, a, b Matrix4x4, tolerance float64) bool {
	t.Helper()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(a.At(row, col)-b.At(row, col)) > tolerance {
				t.Logf("matrices differ at [%d,%d]: %v vs %v", row, col, a.At(row, col), b.At(row, col))
				return false
			}
		}
	}
	return true
}

func vectorsAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestIdentityInverse(t *testing.T) {
	identity := IdentityMatrix()
	inverse, ok := identity.Inverse()
	if !ok {
		t.Fatal("identity should be invertible")
	}
	if !matricesAlmostEqual(t, identity, inverse, 1e-6) {
		t.Error("inverse of identity should be identity")
	}
}

func TestDiagonalInverse(t *testing.T) {
	matrix := Matrix4x4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 5,
	}
	expected := Matrix4x4{
		0.5, 0, 0, 0,
		0, 1.0 / 3.0, 0, 0,
		0, 0, 0.25, 0,
		0, 0, 0, 0.2,
	}

	inverse, ok := matrix.Inverse()
	if !ok {
		t.Fatal("diagonal matrix should be invertible")
	}
	if !matricesAlmostEqual(t, inverse, expected, 1e-6) {
		t.Error("diagonal inverse incorrect")
	}
}

func TestMultiplyByInverseIsIdentity(t *testing.T) {
	matrices := []Matrix4x4{
		{
			1, 2, 0, 1,
			0, 1, 1, 2,
			1, 0, 1, 0,
			0, 1, 0, 2,
		},
		{
			2, 1, 0, 0,
			1, 2, 1, 0,
			0, 1, 2, 1,
			0, 0, 1, 2,
		},
	}

	for i, m := range matrices {
		inverse, ok := m.Inverse()
		if !ok {
			t.Fatalf("matrix %d should be invertible", i)
		}
		if !matricesAlmostEqual(t, m.Multiply(inverse), IdentityMatrix(), 1e-5) {
			t.Errorf("matrix %d: A * A^-1 should be identity", i)
		}
		if !matricesAlmostEqual(t, inverse.Multiply(m), IdentityMatrix(), 1e-5) {
			t.Errorf("matrix %d: A^-1 * A should be identity", i)
		}
	}
}

func TestSingularMatricesHaveNoInverse(t *testing.T) {
	testCases := []struct {
		name   string
		matrix Matrix4x4
	}{
		{
			name: "identical rows",
			matrix: Matrix4x4{
				1, 2, 3, 4,
				1, 2, 3, 4,
				1, 2, 3, 4,
				1, 2, 3, 4,
			},
		},
		{
			name: "zero row",
			matrix: Matrix4x4{
				1, 0, 0, 0,
				0, 1, 0, 0,
				0, 0, 1, 0,
				0, 0, 0, 0,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := tc.matrix.Inverse(); ok {
				t.Error("singular matrix should not be invertible")
			}
		})
	}
}

func TestKnownInverse(t *testing.T) {
	matrix := Matrix4x4{
		4, 0, 0, 0,
		0, 0, 2, 0,
		0, 1, 2, 0,
		1, 0, 0, 1,
	}
	expected := Matrix4x4{
		0.25, 0, 0, 0,
		0, -1, 1, 0,
		0, 0.5, 0, 0,
		-0.25, 0, 0, 1,
	}

	inverse, ok := matrix.Inverse()
	if !ok {
		t.Fatal("matrix should be invertible")
	}
	if !matricesAlmostEqual(t, inverse, expected, 1e-5) {
		t.Error("known inverse does not match")
	}
}

// The transform builders should agree with mathgl's, which use the same
// OpenGL conventions.
func TestBuildersMatchMGL64(t *testing.T) {
	testCases := []struct {
		name string
		ours Matrix4x4
		mgl  mgl64.Mat4
	}{
		{"translation", TranslationMatrix(1, -2, 3), mgl64.Translate3D(1, -2, 3)},
		{"scale", ScaleMatrix(2, 3, 4), mgl64.Scale3D(2, 3, 4)},
		{"rotation x", RotationXMatrix(0.7), mgl64.HomogRotate3DX(0.7)},
		{"rotation y", RotationYMatrix(-1.2), mgl64.HomogRotate3DY(-1.2)},
		{"rotation z", RotationZMatrix(2.5), mgl64.HomogRotate3DZ(2.5)},
		{
			"perspective",
			PerspectiveMatrix(math.Pi/4, 4.0/3.0, 0.1, 100),
			mgl64.Perspective(math.Pi/4, 4.0/3.0, 0.1, 100),
		},
		{
			"look at",
			LookAtMatrix(Vector3{X: 1, Y: 2, Z: 3}, Vector3{Y: 1}, Vector3{Y: 1}),
			mgl64.LookAtV(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !matricesAlmostEqual(t, tc.ours, FromMGL64(tc.mgl), 1e-6) {
				t.Errorf("%s does not match mgl64", tc.name)
			}
		})
	}
}

func TestMGL64RoundTrip(t *testing.T) {
	m := LookAtMatrix(Vector3{X: 3, Y: 1, Z: -2}, Vector3{}, Vector3{Y: 1})
	if !matricesAlmostEqual(t, m, FromMGL64(m.ToMGL64()), 1e-12) {
		t.Error("ToMGL64/FromMGL64 round trip changed the matrix")
	}
}

func TestMultiplyPointAppliesTranslation(t *testing.T) {
	m := TranslationMatrix(1, 2, 3)
	got := m.MultiplyPoint(Vector3{X: 10, Y: 20, Z: 30})
	if !vectorsAlmostEqual(got, Vector3{X: 11, Y: 22, Z: 33}) {
		t.Errorf("got %v", got)
	}
}

func TestMultiplyVectorIgnoresTranslation(t *testing.T) {
	m := TranslationMatrix(1, 2, 3)
	got := m.MultiplyVector(Vector3{X: 10, Y: 20, Z: 30})
	if !vectorsAlmostEqual(got, Vector3{X: 10, Y: 20, Z: 30}) {
		t.Errorf("got %v", got)
	}
}

func TestMatrixMultiplyComposesRightToLeft(t *testing.T) {
	// Translate after scaling: the scale must not touch the translation.
	m := TranslationMatrix(1, 0, 0).Multiply(ScaleMatrix(2, 2, 2))
	got := m.MultiplyPoint(Vector3{X: 1, Y: 1, Z: 1})
	if !vectorsAlmostEqual(got, Vector3{X: 3, Y: 2, Z: 2}) {
		t.Errorf("got %v", got)
	}
}

// A camera at (0,0,5) looking at the origin maps the origin to a camera-
// space point five units down the negative Z axis.
func TestLookAtMapsWorldOrigin(t *testing.T) {
	view := LookAtMatrix(Vector3{Z: 5}, Vector3{}, Vector3{Y: 1})

	got := view.MultiplyPoint(Vector3{})
	if !vectorsAlmostEqual(got, Vector3{Z: -5}) {
		t.Errorf("origin should map to (0,0,-5), got %v", got)
	}

	eye := view.MultiplyPoint(Vector3{Z: 5})
	if !vectorsAlmostEqual(eye, Vector3{}) {
		t.Errorf("eye should map to the origin, got %v", eye)
	}
}

func TestPerspectiveCarriesNegativeZInW(t *testing.T) {
	projection := PerspectiveMatrix(math.Pi/4, 1, 0.1, 100)
	projected := projection.MultiplyPoint4(Vector3{Z: -10})
	if !almostEqual(projected.W, 10) {
		t.Errorf("w should be -z, got %v", projected.W)
	}
}
