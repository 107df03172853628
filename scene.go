package adage

import (
	"image/color"
	"log"
	"math"
)

// GameObject places one mesh in the world with a position, Euler rotation
// (radians) and per-axis scale. Materials, when present, are indexed by each
// triangle's material id; objects without materials shade from the
// triangle's flat color instead.
type GameObject struct {
	Mesh      *Mesh
	Position  Vector3
	Rotation  Vector3
	Scale     Vector3
	Spin      Vector3 // angular velocity, radians per second
	Materials []Material
}

func NewGameObject(mesh *Mesh) *GameObject {
	return &GameObject{
		Mesh:  mesh,
		Scale: Vector3{X: 1, Y: 1, Z: 1},
	}
}

func (o *GameObject) WithPosition(position Vector3) *GameObject {
	o.Position = position
	return o
}

func (o *GameObject) WithRotation(rotation Vector3) *GameObject {
	o.Rotation = rotation
	return o
}

func (o *GameObject) WithScale(scale Vector3) *GameObject {
	o.Scale = scale
	return o
}

func (o *GameObject) WithSpin(spin Vector3) *GameObject {
	o.Spin = spin
	return o
}

func (o *GameObject) WithMaterials(materials ...Material) *GameObject {
	o.Materials = materials
	return o
}

// ModelMatrix composes Translation * Rz * Ry * Rx * Scale, so scaling is
// applied first, then X rotation, then Y, then Z, then translation.
func (o *GameObject) ModelMatrix() Matrix4x4 {
	translation := TranslationMatrix(o.Position.X, o.Position.Y, o.Position.Z)
	rotX := RotationXMatrix(o.Rotation.X)
	rotY := RotationYMatrix(o.Rotation.Y)
	rotZ := RotationZMatrix(o.Rotation.Z)
	scale := ScaleMatrix(o.Scale.X, o.Scale.Y, o.Scale.Z)

	return translation.Multiply(rotZ.Multiply(rotY.Multiply(rotX.Multiply(scale))))
}

// MaterialFor resolves a triangle's material. Objects with no materials
// report false; an absent or out-of-range material id falls back to entry 0.
func (o *GameObject) MaterialFor(t Triangle) (Material, bool) {
	if len(o.Materials) == 0 {
		return Material{}, false
	}
	id := t.MaterialID
	if id < 0 || id >= len(o.Materials) {
		id = 0
	}
	return o.Materials[id], true
}

// Scene owns the objects, the camera and the lighting system, and runs the
// per-frame pipeline that turns them into pixels in a Renderer.
type Scene struct {
	Objects    []*GameObject
	Camera     *Camera
	Lighting   *LightingSystem
	Background color.RGBA

	clock float64
}

// NewScene creates an empty scene with the camera at (0,0,5) looking at the
// origin and a black background.
func NewScene() *Scene {
	return &Scene{
		Camera: NewCamera(
			Vector3{Z: 5},
			Vector3{},
			Vector3{Y: 1},
		),
		Lighting:   NewLightingSystem(),
		Background: color.RGBA{A: 255},
	}
}

func (s *Scene) AddObject(o *GameObject) *GameObject {
	s.Objects = append(s.Objects, o)
	return o
}

// AddCubeAt places a spinning unit cube at the given position.
func (s *Scene) AddCubeAt(position Vector3) *GameObject {
	log.Printf("Adding cube at (%.1f, %.1f, %.1f)", position.X, position.Y, position.Z)
	return s.AddObject(NewGameObject(NewCubeMesh(1)).
		WithPosition(position).
		WithSpin(Vector3{X: 0.5, Y: 0.9}))
}

// AddTriangleAt places a single static triangle at the given position.
func (s *Scene) AddTriangleAt(position Vector3) *GameObject {
	return s.AddObject(NewGameObject(NewTriangleMesh()).WithPosition(position))
}

func (s *Scene) AddLight(light Light) {
	s.Lighting.AddLight(light)
}

func (s *Scene) SetCameraPosition(position Vector3) {
	s.Camera.Position = position
}

func (s *Scene) SetCameraTarget(target Vector3) {
	s.Camera.Target = target
}

// Update advances the animation clock and spins every object by its angular
// velocity.
func (s *Scene) Update(deltaSeconds float64) {
	s.clock += deltaSeconds
	for _, o := range s.Objects {
		o.Rotation = o.Rotation.Add(o.Spin.Scale(deltaSeconds))
	}
}

// Clock returns the accumulated animation time in seconds.
func (s *Scene) Clock() float64 {
	return s.clock
}

// Render runs one full pass over all objects into the renderer: model
// transform, backface cull, view transform, projection, lighting,
// rasterization. The view and projection matrices are computed once per
// pass.
func (s *Scene) Render(r *Renderer) {
	r.Clear(s.Background)

	view := s.Camera.ViewMatrix()
	projection := s.Camera.ProjectionMatrix()
	cameraPosition := s.Camera.Position
	width, height := r.Dimensions()

	for _, o := range s.Objects {
		model := o.ModelMatrix()
		worldVertices := o.Mesh.TransformVertices(model)
		worldNormals := o.Mesh.TransformNormals(model)

		for ti, tri := range o.Mesh.Triangles {
			w0 := worldVertices[tri.Indices[0]]
			w1 := worldVertices[tri.Indices[1]]
			w2 := worldVertices[tri.Indices[2]]
			normal := worldNormals[ti]

			// Backface culling against the camera position.
			centroid := w0.Add(w1).Add(w2).Scale(1.0 / 3.0)
			if normal.Dot(cameraPosition.Sub(centroid)) < 0 {
				continue
			}

			// To camera space. The camera looks down -Z, so anything with
			// z >= 0 is on or behind the eye plane and the whole triangle
			// is dropped.
			c0 := view.MultiplyPoint(w0)
			c1 := view.MultiplyPoint(w1)
			c2 := view.MultiplyPoint(w2)
			if c0.Z >= 0 || c1.Z >= 0 || c2.Z >= 0 {
				continue
			}

			s0, ok0 := projectToScreen(projection, c0, width, height)
			s1, ok1 := projectToScreen(projection, c1, width, height)
			s2, ok2 := projectToScreen(projection, c2, width, height)
			if !ok0 || !ok1 || !ok2 {
				continue
			}

			var shaded color.RGBA
			if material, ok := o.MaterialFor(tri); ok {
				lit := s.Lighting.CalculateLighting(centroid, normal, cameraPosition, material)
				shaded = color.RGBA{
					R: uint8(lit.X * 255),
					G: uint8(lit.Y * 255),
					B: uint8(lit.Z * 255),
					A: 255,
				}
			} else {
				shaded = s.Lighting.CalculateShadedColor(centroid, normal, cameraPosition, tri.Color)
			}

			// Depth is the distance in front of the camera, so nearer
			// geometry has the smaller value the rasterizer expects.
			r.DrawTriangle(s0, s1, s2, -c0.Z, -c1.Z, -c2.Z, shaded)
		}
	}
}

// projectToScreen projects a camera-space point to pixel coordinates. The
// second return is false when the homogeneous w is zero or the point lands
// outside the NDC cube; callers drop the whole triangle in that case.
func projectToScreen(projection Matrix4x4, cameraPoint Vector3, width, height int) (Vector2, bool) {
	projected := projection.MultiplyPoint4(cameraPoint)
	if projected.W == 0 {
		return Vector2{}, false
	}

	ndcX := projected.X / projected.W
	ndcY := projected.Y / projected.W
	ndcZ := projected.Z / projected.W
	if math.Abs(ndcX) > 1 || math.Abs(ndcY) > 1 || math.Abs(ndcZ) > 1 {
		return Vector2{}, false
	}

	return Vector2{
		X: (ndcX + 1) * 0.5 * float64(width),
		Y: (1 - ndcY) * 0.5 * float64(height),
	}, true
}
