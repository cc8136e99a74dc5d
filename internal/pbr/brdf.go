// Package pbr implements the physically based shading model: BRDF lobes,
// per-fragment pixel derivation, direct light evaluation and the baked
// environment term.
package pbr

import "github.com/Faultbox/lumen/pkg/math"

// DistributionGGX is the GGX normal distribution. roughness is linear
// (perceptual roughness squared).
func DistributionGGX(roughness, nh float32) float32 {
	a2 := roughness * roughness
	d := nh*nh*(a2-1) + 1
	return a2 / (math.Pi * d * d)
}

// VisibilitySmithGGX is the height-correlated Smith visibility term,
// with the geometric shadowing and masking folded together.
func VisibilitySmithGGX(roughness, nv, nl float32) float32 {
	a2 := roughness * roughness
	lambdaV := nl * math.Sqrt(nv*nv*(1-a2)+a2)
	lambdaL := nv * math.Sqrt(nl*nl*(1-a2)+a2)
	return 0.5 / math.Max(lambdaV+lambdaL, 1e-4)
}

// FresnelSchlick is the Schlick approximation for a colored f0.
func FresnelSchlick(f0 math.Vec3, f90, vh float32) math.Vec3 {
	fc := math.Pow(1-vh, 5)
	return f0.Scale(1 - fc).Add(math.Vec3{X: f90, Y: f90, Z: f90}.Scale(fc))
}

// fresnelSchlickScalar is the monochrome Schlick approximation.
func fresnelSchlickScalar(f0, f90, vh float32) float32 {
	fc := math.Pow(1-vh, 5)
	return f0 + (f90-f0)*fc
}

// DiffuseBurley is the Disney diffuse term with roughness-dependent
// grazing retroreflection.
func DiffuseBurley(roughness, nv, nl, lh float32) float32 {
	f90 := 0.5 + 2*roughness*lh*lh
	light := fresnelSchlickScalar(1, f90, nl)
	view := fresnelSchlickScalar(1, f90, nv)
	return light * view / math.Pi
}

// VisibilityKelemen is the cheap clearcoat visibility approximation.
func VisibilityKelemen(lh float32) float32 {
	return 0.25 / math.Max(lh*lh, 1e-4)
}
