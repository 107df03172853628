package adage

import (
	"image/color"
	"math"
)

// degenerateTolerance is the barycentric denominator magnitude below which a
// triangle is treated as zero-area and skipped.
const degenerateTolerance = 1e-12

// PackARGB packs a color into the 0xAARRGGBB framebuffer format.
func PackARGB(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackARGB is the reverse of PackARGB.
func UnpackARGB(packed uint32) color.RGBA {
	return color.RGBA{
		A: uint8(packed >> 24),
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}
}

// Renderer owns a packed ARGB framebuffer and a depth buffer, both
// row-major, top-to-bottom, length width*height. It is purely procedural:
// every draw call works directly on the buffers, and a single goroutine is
// expected to drive it.
type Renderer struct {
	width       int
	height      int
	framebuffer []uint32
	depth       []float64
}

func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		width:       width,
		height:      height,
		framebuffer: make([]uint32, width*height),
		depth:       make([]float64, width*height),
	}
	r.Clear(color.RGBA{A: 255})
	return r
}

// Clear resets every pixel to the given color and every depth entry to
// +Inf, fully overwriting the previous frame.
func (r *Renderer) Clear(c color.RGBA) {
	packed := PackARGB(c)
	for i := range r.framebuffer {
		r.framebuffer[i] = packed
		r.depth[i] = math.Inf(1)
	}
}

// SetPixel writes a pixel if it is inside the buffer, and silently does
// nothing otherwise.
func (r *Renderer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.framebuffer[y*r.width+x] = PackARGB(c)
}

// DrawLine draws with integer Bresenham stepping between two pixel
// coordinates. Lines ignore the depth buffer.
func (r *Renderer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		r.SetPixel(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Barycentric expresses p as weights (u, v, w) over the triangle a, b, c,
// with u+v+w = 1 and p = u*a + v*b + w*c. The boolean is false when the
// triangle is degenerate (zero or near-zero area). p is inside the triangle
// iff all three weights are >= 0.
func Barycentric(p, a, b, c Vector2) (float64, float64, float64, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	det := ab.X*ac.Y - ac.X*ab.Y
	if math.Abs(det) < degenerateTolerance {
		return 0, 0, 0, false
	}
	ap := p.Sub(a)
	v := (ap.X*ac.Y - ac.X*ap.Y) / det
	w := (ab.X*ap.Y - ap.X*ab.Y) / det
	return 1 - v - w, v, w, true
}

// DrawTriangle rasterizes a filled triangle with per-pixel depth testing.
// z0..z2 are the depth values at the three vertices; interpolated depth must
// be smaller for nearer geometry (closer wins). Degenerate triangles are
// skipped entirely so no NaN or Inf ever reaches the buffers.
func (r *Renderer) DrawTriangle(v0, v1, v2 Vector2, z0, z1, z2 float64, c color.RGBA) {
	ab := v1.Sub(v0)
	ac := v2.Sub(v0)
	det := ab.X*ac.Y - ac.X*ab.Y
	if math.Abs(det) < degenerateTolerance {
		return
	}

	minX := clamp(int(math.Floor(min3(v0.X, v1.X, v2.X))), 0, r.width-1)
	maxX := clamp(int(math.Ceil(max3(v0.X, v1.X, v2.X))), 0, r.width-1)
	minY := clamp(int(math.Floor(min3(v0.Y, v1.Y, v2.Y))), 0, r.height-1)
	maxY := clamp(int(math.Ceil(max3(v0.Y, v1.Y, v2.Y))), 0, r.height-1)

	packed := PackARGB(c)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			// Sample at the pixel center.
			p := Vector2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			ap := p.Sub(v0)
			v := (ap.X*ac.Y - ac.X*ap.Y) / det
			w := (ab.X*ap.Y - ap.X*ab.Y) / det
			u := 1 - v - w
			if u < 0 || v < 0 || w < 0 {
				continue
			}

			depth := u*z0 + v*z1 + w*z2
			idx := y*r.width + x
			if depth < r.depth[idx] {
				r.depth[idx] = depth
				r.framebuffer[idx] = packed
			}
		}
	}
}

// Framebuffer exposes the packed 0xAARRGGBB pixels, row-major, top-to-
// bottom. The presentation layer copies this verbatim onto its surface.
func (r *Renderer) Framebuffer() []uint32 {
	return r.framebuffer
}

// DepthAt returns the stored depth at a pixel, or +Inf out of bounds.
func (r *Renderer) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return math.Inf(1)
	}
	return r.depth[y*r.width+x]
}

// PixelAt returns the packed color at a pixel, or 0 out of bounds.
func (r *Renderer) PixelAt(x, y int) uint32 {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0
	}
	return r.framebuffer[y*r.width+x]
}

func (r *Renderer) Dimensions() (int, int) {
	return r.width, r.height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
