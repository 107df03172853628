package adage

import (
	"image/color"
	"log"
	"math"

	"github.com/aquilax/go-perlin"
)

// NewCubeMesh builds an axis-aligned cube centered at the origin with the
// given edge length. Winding is counter-clockwise seen from outside, so all
// face normals point outward.
func NewCubeMesh(size float64) *Mesh {
	m := NewMesh()
	h := size / 2

	vertices := []Vector3{
		{-h, -h, h},  // 0: bottom-left-front
		{h, -h, h},   // 1: bottom-right-front
		{h, h, h},    // 2: top-right-front
		{-h, h, h},   // 3: top-left-front
		{-h, -h, -h}, // 4: bottom-left-back
		{h, -h, -h},  // 5: bottom-right-back
		{h, h, -h},   // 6: top-right-back
		{-h, h, -h},  // 7: top-left-back
	}
	for _, v := range vertices {
		m.AddVertex(v)
	}

	green := color.RGBA{G: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	yellow := color.RGBA{R: 255, G: 255, A: 255}
	magenta := color.RGBA{R: 255, B: 255, A: 255}
	cyan := color.RGBA{G: 255, B: 255, A: 255}

	triangles := []Triangle{
		// front (+Z)
		NewTriangle(0, 1, 2, green),
		NewTriangle(2, 3, 0, green),
		// back (-Z)
		NewTriangle(5, 4, 7, red),
		NewTriangle(7, 6, 5, red),
		// left (-X)
		NewTriangle(4, 0, 3, blue),
		NewTriangle(3, 7, 4, blue),
		// right (+X)
		NewTriangle(1, 5, 6, yellow),
		NewTriangle(6, 2, 1, yellow),
		// top (+Y)
		NewTriangle(3, 2, 6, magenta),
		NewTriangle(6, 7, 3, magenta),
		// bottom (-Y)
		NewTriangle(4, 5, 1, cyan),
		NewTriangle(1, 0, 4, cyan),
	}
	for _, t := range triangles {
		m.AddTriangle(t)
	}
	return m
}

// NewTriangleMesh builds a single upright triangle in the XY plane.
func NewTriangleMesh() *Mesh {
	m := NewMesh()
	m.AddVertex(Vector3{Y: 1})
	m.AddVertex(Vector3{X: -1, Y: -1})
	m.AddVertex(Vector3{X: 1, Y: -1})
	m.AddTriangle(NewTriangle(0, 1, 2, color.RGBA{R: 255, A: 255}))
	return m
}

// NewPlaneMesh builds a flat rectangle in the XZ plane centered at the
// origin, split into two triangles with upward-facing normals.
func NewPlaneMesh(width, depth float64, col color.RGBA) *Mesh {
	m := NewMesh()
	hw, hd := width/2, depth/2
	i0 := m.AddVertex(Vector3{X: -hw, Z: -hd})
	i1 := m.AddVertex(Vector3{X: hw, Z: -hd})
	i2 := m.AddVertex(Vector3{X: hw, Z: hd})
	i3 := m.AddVertex(Vector3{X: -hw, Z: hd})
	m.AddTriangle(NewTriangle(i0, i3, i2, col))
	m.AddTriangle(NewTriangle(i2, i1, i0, col))
	return m
}

// NewUVSphereMesh builds a UV sphere from stacked rings of quads, each quad
// split into two triangles. Quads alternate between two colors per band to
// make the rotation visible without texturing.
func NewUVSphereMesh(radius float64, segments, rings int, colA, colB color.RGBA) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := NewMesh()

	// Vertices ring by ring, poles included.
	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		y := radius * math.Cos(phi)
		r := radius * math.Sin(phi)
		for seg := 0; seg < segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			m.AddVertex(Vector3{
				X: r * math.Cos(theta),
				Y: y,
				Z: r * math.Sin(theta),
			})
		}
	}

	at := func(ring, seg int) int {
		return ring*segments + seg%segments
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			col := colA
			if (ring+seg)%2 == 0 {
				col = colB
			}
			a := at(ring, seg)
			b := at(ring, seg+1)
			c := at(ring+1, seg+1)
			d := at(ring+1, seg)
			m.AddTriangle(NewTriangle(a, b, c, col))
			m.AddTriangle(NewTriangle(c, d, a, col))
		}
	}

	log.Printf("UV sphere: %d vertices, %d triangles", len(m.Vertices), len(m.Triangles))
	return m
}

// NewTerrainMesh builds a heightmap terrain of cols x rows cells in the XZ
// plane, centered at the origin, with Perlin-noise elevation scaled by
// amplitude. The same seed always produces the same terrain.
func NewTerrainMesh(cols, rows int, cellSize, amplitude float64, seed int64, col color.RGBA) *Mesh {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	noise := perlin.NewPerlin(2, 2, 3, seed)
	m := NewMesh()

	halfW := float64(cols) * cellSize / 2
	halfD := float64(rows) * cellSize / 2

	// Grid of (cols+1) x (rows+1) vertices.
	for z := 0; z <= rows; z++ {
		for x := 0; x <= cols; x++ {
			height := amplitude * noise.Noise2D(float64(x)*0.15, float64(z)*0.15)
			m.AddVertex(Vector3{
				X: float64(x)*cellSize - halfW,
				Y: height,
				Z: float64(z)*cellSize - halfD,
			})
		}
	}

	at := func(x, z int) int {
		return z*(cols+1) + x
	}

	// Two triangles per cell, wound so normals face up (+Y).
	for z := 0; z < rows; z++ {
		for x := 0; x < cols; x++ {
			a := at(x, z)
			b := at(x+1, z)
			c := at(x+1, z+1)
			d := at(x, z+1)
			m.AddTriangle(NewTriangle(a, d, c, col))
			m.AddTriangle(NewTriangle(c, b, a, col))
		}
	}

	log.Printf("Terrain: %dx%d cells, %d vertices, %d triangles", cols, rows, len(m.Vertices), len(m.Triangles))
	return m
}
