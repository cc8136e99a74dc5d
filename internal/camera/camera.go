// Package camera models a physical camera with exposure derived from
// aperture, shutter time and sensitivity.
package camera

import "github.com/Faultbox/lumen/pkg/math"

// Projection selects how the camera maps view space to clip space.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// Camera holds placement and the physical exposure triangle.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	Projection Projection
	FovY       float32 // radians, perspective only
	OrthoSize  float32 // half height, orthographic only
	Near       float32

	Aperture     float32 // f-stops
	ShutterTime  float32 // seconds
	Sensitivity  float32 // ISO
	ExposureComp float32 // stops
}

// New returns a camera with the default f/16, 1/250s, ISO 100 exposure.
func New() Camera {
	return Camera{
		Position:    math.Vec3{Z: 5},
		Up:          math.Vec3{Y: 1},
		FovY:        math.Pi / 4,
		OrthoSize:   5,
		Near:        0.1,
		Aperture:    16,
		ShutterTime: 1.0 / 250.0,
		Sensitivity: 100,
	}
}

// EV100 is the exposure value at ISO 100 with compensation applied.
func (c Camera) EV100() float32 {
	ev := math.Log2(c.Aperture * c.Aperture / c.ShutterTime * 100 / c.Sensitivity)
	return ev - c.ExposureComp
}

// Exposure converts luminance to a normalized pixel value. The 1.2
// factor models typical lens vignetting and transmission.
func (c Camera) Exposure() float32 {
	return 1.2 / math.Exp2(c.EV100())
}

// View returns the world-to-view transform.
func (c Camera) View() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// Proj returns the view-to-clip transform for the given aspect ratio.
func (c Camera) Proj(aspect float32) math.Mat4 {
	if c.Projection == Orthographic {
		w := c.OrthoSize * aspect
		return math.Ortho(-w, w, -c.OrthoSize, c.OrthoSize, c.Near, 1000)
	}
	return math.PerspectiveInfinite(c.FovY, aspect, c.Near)
}

// ViewProj returns the combined world-to-clip transform.
func (c Camera) ViewProj(aspect float32) math.Mat4 {
	return c.Proj(aspect).Mul(c.View())
}

// Raw is the uniform-block form consumed by shading kernels.
type Raw struct {
	Position math.Vec3
	Aspect   float32
	View     math.Mat4
	ViewProj math.Mat4
	EV100    float32
	Exposure float32
}

// Raw prepares the camera for shading at the given aspect ratio.
func (c Camera) Raw(aspect float32) Raw {
	view := c.View()
	return Raw{
		Position: c.Position,
		Aspect:   aspect,
		View:     view,
		ViewProj: c.Proj(aspect).Mul(view),
		EV100:    c.EV100(),
		Exposure: c.Exposure(),
	}
}
