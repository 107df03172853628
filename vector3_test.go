package adage

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input Vector3
	}{
		{"unit x", Vector3{X: 1}},
		{"diagonal", Vector3{X: 1, Y: 1, Z: 1}},
		{"long", Vector3{X: 300, Y: -400, Z: 12}},
		{"tiny", Vector3{X: 1e-8, Y: 2e-8}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.input.Normalize()
			if !almostEqual(n.Length(), 1) {
				t.Errorf("normalized length = %v, want 1", n.Length())
			}
		})
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Vector3{}.Normalize()
	if n != (Vector3{}) {
		t.Errorf("normalizing the zero vector should give the zero vector, got %v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
		t.Error("normalizing the zero vector must not produce NaN")
	}
}

func TestCross(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}
	z := x.Cross(y)
	if !vectorsAlmostEqual(z, Vector3{Z: 1}) {
		t.Errorf("x cross y = %v, want +z", z)
	}

	a := Vector3{X: 2, Y: -1, Z: 3}
	b := Vector3{X: 1, Y: 4, Z: -2}
	c := a.Cross(b)
	if !almostEqual(c.Dot(a), 0) || !almostEqual(c.Dot(b), 0) {
		t.Error("cross product should be orthogonal to both inputs")
	}
}

func TestDot(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: -5, Z: 6}
	if got := a.Dot(b); !almostEqual(got, 12) {
		t.Errorf("dot = %v, want 12", got)
	}
}

func TestDistanceTo(t *testing.T) {
	a := Vector3{X: 1}
	b := Vector3{X: 4, Y: 4}
	if got := a.DistanceTo(b); !almostEqual(got, 5) {
		t.Errorf("distance = %v, want 5", got)
	}
}

// Counter-clockwise winding in the XY plane, seen from +Z, gives a +Z
// normal.
func TestTriangleNormalWinding(t *testing.T) {
	n := TriangleNormal(Vector3{}, Vector3{X: 1}, Vector3{Y: 1})
	if !vectorsAlmostEqual(n, Vector3{Z: 1}) {
		t.Errorf("normal = %v, want +z", n)
	}

	reversed := TriangleNormal(Vector3{}, Vector3{Y: 1}, Vector3{X: 1})
	if !vectorsAlmostEqual(reversed, Vector3{Z: -1}) {
		t.Errorf("reversed winding normal = %v, want -z", reversed)
	}
}

func TestVector2Normalize(t *testing.T) {
	n := Vector2{X: 3, Y: 4}.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("length = %v, want 1", n.Length())
	}
	if (Vector2{}).Normalize() != (Vector2{}) {
		t.Error("zero Vector2 should normalize to zero")
	}
}
