// Package light defines the light sources consumed by the shading core.
// Lights are additive: contributions are order-independent.
package light

import "github.com/Faultbox/lumen/pkg/math"

// PointLight is an omnidirectional emitter with a finite falloff range.
type PointLight struct {
	Position  math.Vec3
	Color     math.Vec3
	Intensity float32 // luminous power in lumens
	Range     float32
}

// NewPointLight returns a point light with the default white 800 lm bulb.
func NewPointLight() PointLight {
	return PointLight{
		Color:     math.Vec3{X: 1, Y: 1, Z: 1},
		Intensity: 800,
		Range:     20,
	}
}

// RawPointLight is the uniform-block form consumed by shading kernels.
// Intensity is converted from luminous power to intensity (divided by 4π).
type RawPointLight struct {
	Position  math.Vec3
	Color     math.Vec3
	Intensity float32
	Range     float32
}

// Raw converts the light to its shading form.
func (l PointLight) Raw() RawPointLight {
	return RawPointLight{
		Position:  l.Position,
		Color:     l.Color,
		Intensity: l.Intensity / (4 * math.Pi),
		Range:     l.Range,
	}
}

// DirectionalLight is a sun-style emitter with cascaded shadow maps.
type DirectionalLight struct {
	Translation    math.Vec3
	Direction      math.Vec3
	Color          math.Vec3
	Illuminance    float32 // in lux
	ShadowSoftness float32
	ShadowFalloff  float32
}

// NewDirectionalLight returns a downward 100 klx sun.
func NewDirectionalLight() DirectionalLight {
	return DirectionalLight{
		Direction:      math.Vec3{Y: -1},
		Color:          math.Vec3{X: 1, Y: 1, Z: 1},
		Illuminance:    100_000,
		ShadowSoftness: 2,
		ShadowFalloff:  2,
	}
}

// Shadow projection constants. Each cascade doubles the covered area.
const (
	shadowNear = -500.0
	shadowFar  = 500.0
	shadowSize = 50.0
)

// CascadeCount is the number of shadow cascades per directional light.
const CascadeCount = 4

// View returns the light's view matrix.
func (l DirectionalLight) View() math.Mat4 {
	eye := l.Translation.Sub(l.Direction.Normalize())
	up := math.Vec3{Y: 1}
	if math.Abs(l.Direction.Normalize().Y) >= 0.999 {
		up = math.Vec3{Z: 1}
	}
	return math.LookAt(eye, l.Translation, up)
}

// Proj returns the orthographic projection for one cascade.
func (l DirectionalLight) Proj(cascade int) math.Mat4 {
	size := math.Pow(2, float32(cascade)) * shadowSize / 2
	return math.Ortho(-size, size, -size, size, shadowNear, shadowFar)
}

// ViewProj returns the light clip-space transform for one cascade.
func (l DirectionalLight) ViewProj(cascade int) math.Mat4 {
	return l.Proj(cascade).Mul(l.View())
}

// RawDirectionalLight is the uniform-block form consumed by shading and
// shadow kernels. CascadeBase is the light's first layer in the packed
// shadow map array.
type RawDirectionalLight struct {
	Direction   math.Vec3
	Color       math.Vec3
	Intensity   float32
	Size        float32
	Depth       float32
	Softness    float32
	Falloff     float32
	CascadeBase int
	ViewProj    math.Mat4
}

// Raw converts the light to its shading form.
func (l DirectionalLight) Raw(cascadeBase int) RawDirectionalLight {
	return RawDirectionalLight{
		Direction:   l.Direction.Normalize(),
		Color:       l.Color,
		Intensity:   l.Illuminance,
		Size:        shadowSize,
		Depth:       shadowFar - shadowNear,
		Softness:    l.ShadowSoftness,
		Falloff:     l.ShadowFalloff,
		CascadeBase: cascadeBase,
		ViewProj:    l.ViewProj(0),
	}
}

// AmbientLight scales the baked environment contribution.
type AmbientLight struct {
	Color     math.Vec3
	Intensity float32
}

// NewAmbientLight returns the default ambient level.
func NewAmbientLight() AmbientLight {
	return AmbientLight{
		Color:     math.Vec3{X: 1, Y: 1, Z: 1},
		Intensity: 35_000,
	}
}

// Raw returns the premultiplied ambient color.
func (l AmbientLight) Raw() math.Vec3 {
	return l.Color.Scale(l.Intensity)
}
