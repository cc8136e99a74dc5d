package pbr

import "github.com/Faultbox/lumen/pkg/math"

// StandardMaterial is the full surface description. Optional lobes are
// enabled by their parameters: clearcoat by Clearcoat > 0, subsurface
// by Thickness < 1, transmission by Transmission > 0.
type StandardMaterial struct {
	BaseColor math.Vec4

	Metallic    float32
	Roughness   float32 // perceptual
	Reflectance float32

	Clearcoat          float32
	ClearcoatRoughness float32

	Emissive       math.Vec3
	EmissiveFactor float32

	Thickness       float32
	SubsurfacePower float32
	SubsurfaceColor math.Vec3

	Transmission float32
	IOR          float32
	Absorption   math.Vec3
}

// NewStandardMaterial returns a white dielectric with near-minimum
// roughness.
func NewStandardMaterial() StandardMaterial {
	return StandardMaterial{
		BaseColor:       math.Vec4{X: 1, Y: 1, Z: 1, W: 1},
		Metallic:        0.01,
		Roughness:       0.089,
		Reflectance:     0.5,
		EmissiveFactor:  8,
		Thickness:       1,
		SubsurfaceColor: math.Vec3{X: 1, Y: 1, Z: 1},
		Transmission:    0,
		IOR:             1.5,
	}
}
