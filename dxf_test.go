package adage

import (
	"fmt"
	"image/color"
	"strings"
	"testing"
)

// dxfFace renders one 3DFACE entity in the simplified layout the parser
// expects: three header lines, then a (value, group code) line pair per
// coordinate for each of the four corners.
func dxfFace(corners [4]Vector3) string {
	var b strings.Builder
	b.WriteString("3DFACE\n8\n0\n62\n")
	for i, c := range corners {
		fmt.Fprintf(&b, "%g\n%d\n", c.X, 10+i)
		fmt.Fprintf(&b, "%g\n%d\n", c.Y, 20+i)
		fmt.Fprintf(&b, "%g\n%d\n", c.Z, 30+i)
	}
	return b.String()
}

func TestNewMeshFromDXFQuad(t *testing.T) {
	src := dxfFace([4]Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	})

	mesh, err := NewMeshFromDXF(strings.NewReader(src), color.RGBA{R: 255, A: 255})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(mesh.Vertices) != 4 {
		t.Errorf("vertices = %d, want 4", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 2 {
		t.Errorf("triangles = %d, want 2", len(mesh.Triangles))
	}
	if !vectorsAlmostEqual(mesh.Vertices[2], Vector3{X: 1, Y: 1}) {
		t.Errorf("vertex 2 = %v", mesh.Vertices[2])
	}
}

func TestNewMeshFromDXFDegenerateQuadIsTriangle(t *testing.T) {
	src := dxfFace([4]Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	})

	mesh, err := NewMeshFromDXF(strings.NewReader(src), color.RGBA{R: 255, A: 255})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(mesh.Vertices) != 3 {
		t.Errorf("vertices = %d, want 3", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 1 {
		t.Errorf("triangles = %d, want 1", len(mesh.Triangles))
	}
}

func TestNewMeshFromDXFMultipleFaces(t *testing.T) {
	src := dxfFace([4]Vector3{
		{}, {X: 1}, {X: 1, Y: 1}, {Y: 1},
	}) + dxfFace([4]Vector3{
		{Z: 2}, {X: 1, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 1, Y: 1, Z: 2},
	})

	mesh, err := NewMeshFromDXF(strings.NewReader(src), color.RGBA{G: 255, A: 255})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(mesh.Triangles) != 3 {
		t.Errorf("triangles = %d, want 2 from the quad plus 1 from the triangle", len(mesh.Triangles))
	}
}

func TestNewMeshFromDXFBadFloat(t *testing.T) {
	src := "3DFACE\n8\n0\n62\nnot-a-number\n10\n"
	if _, err := NewMeshFromDXF(strings.NewReader(src), color.RGBA{A: 255}); err == nil {
		t.Fatal("expected an error for a malformed coordinate")
	}
}

func TestNewMeshFromDXFTruncated(t *testing.T) {
	src := "3DFACE\n8\n0\n62\n1.0\n10\n2.0\n20\n"
	if _, err := NewMeshFromDXF(strings.NewReader(src), color.RGBA{A: 255}); err == nil {
		t.Fatal("expected an error for a truncated face")
	}
}

func TestNewMeshFromDXFIgnoresOtherEntities(t *testing.T) {
	src := "LINE\n8\n0\nsome\nnoise\n"
	mesh, err := NewMeshFromDXF(strings.NewReader(src), color.RGBA{A: 255})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(mesh.Triangles) != 0 {
		t.Errorf("triangles = %d, want 0", len(mesh.Triangles))
	}
}
