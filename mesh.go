package adage

import "image/color"

// NoMaterial marks a triangle that has no material reference and is shaded
// from its packed color instead.
const NoMaterial = -1

// Triangle references three vertices of a Mesh by index, with a flat color
// and an optional material index. Indices must point at existing vertices;
// an out-of-range index is a construction bug, not a render-time condition.
type Triangle struct {
	Indices    [3]int
	Color      color.RGBA
	MaterialID int
}

func NewTriangle(i0, i1, i2 int, col color.RGBA) Triangle {
	return Triangle{
		Indices:    [3]int{i0, i1, i2},
		Color:      col,
		MaterialID: NoMaterial,
	}
}

func NewTriangleWithMaterial(i0, i1, i2 int, col color.RGBA, materialID int) Triangle {
	return Triangle{
		Indices:    [3]int{i0, i1, i2},
		Color:      col,
		MaterialID: materialID,
	}
}

// Vertices resolves the triangle's corner positions in the given mesh.
func (t Triangle) Vertices(m *Mesh) (Vector3, Vector3, Vector3) {
	return m.Vertices[t.Indices[0]], m.Vertices[t.Indices[1]], m.Vertices[t.Indices[2]]
}

// Normal computes the face normal from the triangle's winding in local space.
func (t Triangle) Normal(m *Mesh) Vector3 {
	v0, v1, v2 := t.Vertices(m)
	return TriangleNormal(v0, v1, v2)
}

// Center is the centroid of the triangle's corners.
func (t Triangle) Center(m *Mesh) Vector3 {
	v0, v1, v2 := t.Vertices(m)
	return v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
}

// Mesh is static geometry: a vertex list in local space plus indexed
// triangles. Meshes are built once and not mutated while rendering.
type Mesh struct {
	Vertices  []Vector3
	Triangles []Triangle
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

func (m *Mesh) AddTriangle(t Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// Bounds returns the axis-aligned min and max corners over all vertices,
// or two zero vectors for an empty mesh.
func (m *Mesh) Bounds() (Vector3, Vector3) {
	if len(m.Vertices) == 0 {
		return Vector3{}, Vector3{}
	}
	min, max := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}

// TransformVertices maps every vertex through the matrix as a position.
func (m *Mesh) TransformVertices(transform Matrix4x4) []Vector3 {
	out := make([]Vector3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = transform.MultiplyPoint(v)
	}
	return out
}

// TransformNormals computes each triangle's face normal in local space and
// maps it through the matrix as a direction, renormalizing afterwards.
// Non-uniform scale skews normals; that distortion is not corrected here.
func (m *Mesh) TransformNormals(transform Matrix4x4) []Vector3 {
	out := make([]Vector3, len(m.Triangles))
	for i, t := range m.Triangles {
		out[i] = transform.MultiplyVector(t.Normal(m)).Normalize()
	}
	return out
}
