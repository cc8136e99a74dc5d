package pbr

import (
	"github.com/Faultbox/lumen/internal/ibl"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// Roughness below this produces visible specular aliasing in half
// precision, so perceptual roughness is floored here.
const minPerceptualRoughness = 0.089

// Pixel is the derived per-fragment shading state. It is built once
// per fragment and consumed by both the direct and ambient terms.
type Pixel struct {
	Position math.Vec3
	Normal   math.Vec3
	View     math.Vec3 // surface to camera, normalized
	NoV      float32

	BaseColor    math.Vec3
	DiffuseColor math.Vec3
	F0           math.Vec3
	F90          float32

	PerceptualRoughness float32
	Roughness           float32 // linear

	DFG math.Vec2

	HasClearcoat       bool
	Clearcoat          float32
	ClearcoatRoughness float32 // linear

	HasSubsurface   bool
	Thickness       float32
	SubsurfacePower float32
	SubsurfaceColor math.Vec3

	HasTransmission bool
	Transmission    float32
	IOR             float32
	Absorption      math.Vec3

	Emissive math.Vec3
}

// remapRoughness converts perceptual roughness to the clamped linear
// roughness used by the specular lobes.
func remapRoughness(perceptual float32) (float32, float32) {
	p := math.Clamp(perceptual, minPerceptualRoughness, 1)
	r := math.Clamp(p*p, minPerceptualRoughness*minPerceptualRoughness, 0.99)
	return p, r
}

// NewPixel derives the shading state for one fragment. The LUT supplies
// the preintegrated environment BRDF at (n·v, perceptual roughness).
func NewPixel(mat StandardMaterial, position, normal, view math.Vec3, lut *texture.Texture2D) Pixel {
	n := normal.Normalize()
	v := view.Normalize()
	nv := math.Max(n.Dot(v), 1e-4)

	base := mat.BaseColor.XYZ()
	dielectric := 0.16 * mat.Reflectance * mat.Reflectance * (1 - mat.Metallic)
	f0 := math.Vec3{X: dielectric, Y: dielectric, Z: dielectric}.
		Add(base.Scale(mat.Metallic))
	f90 := math.Saturate(f0.Dot(math.Vec3{X: 16.5, Y: 16.5, Z: 16.5}))

	perceptual, roughness := remapRoughness(mat.Roughness)
	_, ccRoughness := remapRoughness(mat.ClearcoatRoughness)

	p := Pixel{
		Position: position,
		Normal:   n,
		View:     v,
		NoV:      nv,

		BaseColor:    base,
		DiffuseColor: base.Scale(1 - mat.Metallic),
		F0:           f0,
		F90:          f90,

		PerceptualRoughness: perceptual,
		Roughness:           roughness,

		DFG: ibl.SampleLUT(lut, nv, perceptual),

		HasClearcoat:       mat.Clearcoat > 0,
		Clearcoat:          mat.Clearcoat,
		ClearcoatRoughness: ccRoughness,

		HasSubsurface:   mat.Thickness < 1,
		Thickness:       mat.Thickness,
		SubsurfacePower: mat.SubsurfacePower,
		SubsurfaceColor: mat.SubsurfaceColor,

		HasTransmission: mat.Transmission > 0,
		Transmission:    mat.Transmission,
		IOR:             mat.IOR,
		Absorption:      mat.Absorption,

		Emissive: mat.Emissive.Scale(mat.EmissiveFactor),
	}
	return p
}
