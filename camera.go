package adage

import "math"

// pitchLimit keeps RotateAroundTarget away from the poles so the up vector
// never becomes parallel to the view direction.
const pitchLimit = math.Pi / 2.1

// Camera holds an eye position, a look target and frustum parameters. The
// view and projection matrices are derived on every query, never cached, so
// edits to the fields are always reflected.
type Camera struct {
	Position Vector3
	Target   Vector3
	Up       Vector3

	Fov    float64 // vertical field of view, radians
	Aspect float64 // width / height
	Near   float64
	Far    float64
}

// NewCamera creates a camera with the default frustum: 45 degree fov, 4:3
// aspect, near 0.1 and far 100.
func NewCamera(position, target, up Vector3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       up.Normalize(),
		Fov:      math.Pi / 4,
		Aspect:   4.0 / 3.0,
		Near:     0.1,
		Far:      100.0,
	}
}

func (c *Camera) ViewMatrix() Matrix4x4 {
	return LookAtMatrix(c.Position, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix() Matrix4x4 {
	return PerspectiveMatrix(c.Fov, c.Aspect, c.Near, c.Far)
}

// SetAspectRatio must be called whenever the output resolution changes; the
// aspect is not derived from the renderer automatically.
func (c *Camera) SetAspectRatio(width, height float64) {
	c.Aspect = width / height
}

// MoveForward translates both position and target along the view direction,
// preserving where the camera is looking.
func (c *Camera) MoveForward(distance float64) {
	delta := c.Forward().Scale(distance)
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

// MoveRight strafes perpendicular to the view direction.
func (c *Camera) MoveRight(distance float64) {
	delta := c.Right().Scale(distance)
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

// MoveUp translates along the up vector.
func (c *Camera) MoveUp(distance float64) {
	delta := c.Up.Scale(distance)
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

// RotateAroundTarget orbits the eye around the target by the given yaw and
// pitch deltas in radians, keeping the distance constant. Pitch is clamped
// short of the poles to avoid gimbal flip.
func (c *Camera) RotateAroundTarget(yaw, pitch float64) {
	direction := c.Target.Sub(c.Position)
	distance := direction.Length()
	if distance == 0 {
		return
	}

	currentYaw := math.Atan2(direction.Z, direction.X)
	currentPitch := math.Asin(direction.Y / distance)

	newYaw := currentYaw + yaw
	newPitch := math.Max(-pitchLimit, math.Min(pitchLimit, currentPitch+pitch))

	newDirection := Vector3{
		X: distance * math.Cos(newPitch) * math.Cos(newYaw),
		Y: distance * math.Sin(newPitch),
		Z: distance * math.Cos(newPitch) * math.Sin(newYaw),
	}
	c.Position = c.Target.Sub(newDirection)
}

// OrbitAroundPoint orbits the eye around an arbitrary center without
// changing what the camera is looking at.
func (c *Camera) OrbitAroundPoint(center Vector3, yaw, pitch float64) {
	oldTarget := c.Target
	c.Target = center
	c.RotateAroundTarget(yaw, pitch)
	c.Target = oldTarget
}

// LookInDirection re-aims the camera one unit along the given direction.
func (c *Camera) LookInDirection(direction Vector3) {
	c.Target = c.Position.Add(direction.Normalize())
}

func (c *Camera) Forward() Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) Right() Vector3 {
	return c.Forward().Cross(c.Up).Normalize()
}

func (c *Camera) UpVector() Vector3 {
	return c.Up
}
