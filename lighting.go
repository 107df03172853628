package adage

import (
	"image/color"
	"math"
)

// LightKind is the closed set of light variants. The lighting evaluator
// switches exhaustively over it; there is no other dispatch.
type LightKind int

const (
	LightDirectional LightKind = iota
	LightPoint
	LightSpot
)

// Light is a tagged variant. Which fields are meaningful depends on Kind:
// directional lights use Direction only, point lights Position and Range,
// spot lights all of them plus the cone angles.
type Light struct {
	Kind      LightKind
	Position  Vector3
	Direction Vector3 // unit length
	Color     Vector3 // channels in [0,1]
	Intensity float64
	Range     float64
	// Cone angles in radians for spot lights, InnerAngle <= OuterAngle.
	InnerAngle float64
	OuterAngle float64
}

func NewDirectionalLight(direction, col Vector3, intensity float64) Light {
	return Light{
		Kind:      LightDirectional,
		Direction: direction.Normalize(),
		Color:     col,
		Intensity: intensity,
	}
}

func NewPointLight(position, col Vector3, intensity, lightRange float64) Light {
	return Light{
		Kind:      LightPoint,
		Position:  position,
		Color:     col,
		Intensity: intensity,
		Range:     lightRange,
	}
}

func NewSpotLight(position, direction, col Vector3, intensity, lightRange, innerAngle, outerAngle float64) Light {
	if innerAngle > outerAngle {
		innerAngle, outerAngle = outerAngle, innerAngle
	}
	return Light{
		Kind:       LightSpot,
		Position:   position,
		Direction:  direction.Normalize(),
		Color:      col,
		Intensity:  intensity,
		Range:      lightRange,
		InnerAngle: innerAngle,
		OuterAngle: outerAngle,
	}
}

// distanceAttenuation is the inverse-quadratic falloff shared by point and
// spot lights, multiplied by a linear fade to zero at the light's range.
func (l Light) distanceAttenuation(distance float64) float64 {
	attenuation := 1.0 / (1.0 + 0.1*distance + 0.01*distance*distance)
	rangeAttenuation := math.Max(0, (l.Range-distance)/l.Range)
	return attenuation * rangeAttenuation
}

// contribution returns the diffuse and specular factors of this light at a
// surface point, both already scaled by attenuation. viewDirection points
// from the surface toward the camera, specularPower is the material's
// shininess exponent.
func (l Light) contribution(surfacePoint, surfaceNormal, viewDirection Vector3, specularPower float64) (float64, float64) {
	var lightDirection Vector3
	attenuation := 1.0

	switch l.Kind {
	case LightDirectional:
		// Constant direction, no falloff.
		lightDirection = l.Direction.Neg()

	case LightPoint:
		toLight := l.Position.Sub(surfacePoint)
		distance := toLight.Length()
		if distance > l.Range {
			return 0, 0
		}
		lightDirection = toLight.Normalize()
		attenuation = l.distanceAttenuation(distance)

	case LightSpot:
		toSurface := surfacePoint.Sub(l.Position)
		distance := toSurface.Length()
		if distance > l.Range {
			return 0, 0
		}
		surfaceDirection := toSurface.Normalize()

		// Clamp before Acos to keep float noise from producing NaN.
		cosAngle := math.Max(-1, math.Min(1, surfaceDirection.Dot(l.Direction)))
		angle := math.Acos(cosAngle)
		if angle > l.OuterAngle {
			return 0, 0
		}
		spotAttenuation := 1.0
		if angle >= l.InnerAngle {
			falloff := (l.OuterAngle - angle) / (l.OuterAngle - l.InnerAngle)
			spotAttenuation = falloff * falloff
		}
		lightDirection = surfaceDirection.Neg()
		attenuation = l.distanceAttenuation(distance) * spotAttenuation
	}

	if attenuation <= 0 {
		return 0, 0
	}

	// Lambert diffuse.
	diffuse := math.Max(0, surfaceNormal.Dot(lightDirection))

	// Blinn-Phong specular.
	halfVector := lightDirection.Add(viewDirection).Normalize()
	specular := math.Pow(math.Max(0, surfaceNormal.Dot(halfVector)), specularPower)

	return diffuse * attenuation, specular * attenuation
}

// Material describes how a surface reacts to light. Values are immutable
// once created.
type Material struct {
	Diffuse       Vector3
	Specular      Vector3
	SpecularPower float64
	AmbientFactor float64
}

func NewMaterial(diffuse, specular Vector3, shininess float64) Material {
	return Material{
		Diffuse:       diffuse,
		Specular:      specular,
		SpecularPower: shininess,
		AmbientFactor: 0.1,
	}
}

// DefaultMaterial is white with a low specular response and medium
// shininess.
func DefaultMaterial() Material {
	return NewMaterial(Vector3{X: 1, Y: 1, Z: 1}, Vector3{X: 0.3, Y: 0.3, Z: 0.3}, 32)
}

// LightingSystem holds the scene's lights plus a global ambient term.
// Lights are only ever appended for the lifetime of a scene.
type LightingSystem struct {
	Lights           []Light
	AmbientColor     Vector3
	AmbientIntensity float64
}

func NewLightingSystem() *LightingSystem {
	return &LightingSystem{
		AmbientColor:     Vector3{X: 1, Y: 1, Z: 1},
		AmbientIntensity: 0.1,
	}
}

func (ls *LightingSystem) AddLight(light Light) {
	ls.Lights = append(ls.Lights, light)
}

func (ls *LightingSystem) SetAmbient(col Vector3, intensity float64) {
	ls.AmbientColor = col
	ls.AmbientIntensity = intensity
}

// CalculateLighting evaluates the full shading model at a surface point and
// returns the resulting color with each channel clamped to [0,1].
func (ls *LightingSystem) CalculateLighting(surfacePoint, surfaceNormal, cameraPosition Vector3, material Material) Vector3 {
	ambient := ls.AmbientColor.Scale(ls.AmbientIntensity * material.AmbientFactor)
	finalColor := ambient.Mul(material.Diffuse)

	if surfaceNormal.Length() == 0 {
		return clampColor(finalColor)
	}

	viewDirection := cameraPosition.Sub(surfacePoint).Normalize()

	for _, light := range ls.Lights {
		diffuse, specular := light.contribution(surfacePoint, surfaceNormal, viewDirection, material.SpecularPower)
		if diffuse <= 0 && specular <= 0 {
			continue
		}
		lightColor := light.Color.Scale(light.Intensity)
		finalColor = finalColor.Add(lightColor.Scale(diffuse).Mul(material.Diffuse))
		finalColor = finalColor.Add(lightColor.Scale(specular).Mul(material.Specular))
	}

	return clampColor(finalColor)
}

// CalculateShadedColor is the convenience overload that synthesizes a
// material from a flat base color, with the default specular parameters.
func (ls *LightingSystem) CalculateShadedColor(surfacePoint, surfaceNormal, cameraPosition Vector3, base color.RGBA) color.RGBA {
	material := NewMaterial(
		Vector3{
			X: float64(base.R) / 255.0,
			Y: float64(base.G) / 255.0,
			Z: float64(base.B) / 255.0,
		},
		Vector3{X: 0.3, Y: 0.3, Z: 0.3},
		32,
	)
	lit := ls.CalculateLighting(surfacePoint, surfaceNormal, cameraPosition, material)
	return color.RGBA{
		R: uint8(lit.X * 255),
		G: uint8(lit.Y * 255),
		B: uint8(lit.Z * 255),
		A: 255,
	}
}

func clampColor(c Vector3) Vector3 {
	return Vector3{
		X: math.Max(0, math.Min(1, c.X)),
		Y: math.Max(0, math.Min(1, c.Y)),
		Z: math.Max(0, math.Min(1, c.Z)),
	}
}
