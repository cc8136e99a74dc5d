// Package ibl precomputes image-based lighting data: cubemap projection of an
// equirectangular panorama, GGX-prefiltered specular radiance, cosine-weighted
// diffuse irradiance, and the split-sum BRDF lookup table.
package ibl

import "github.com/Faultbox/lumen/pkg/math"

// radicalInverseVdC computes the Van der Corput radical inverse by bit
// reversal, the second component of the Hammersley sequence.
func radicalInverseVdC(bits uint32) float32 {
	bits = (bits << 16) | (bits >> 16)
	bits = ((bits & 0x55555555) << 1) | ((bits & 0xAAAAAAAA) >> 1)
	bits = ((bits & 0x33333333) << 2) | ((bits & 0xCCCCCCCC) >> 2)
	bits = ((bits & 0x0F0F0F0F) << 4) | ((bits & 0xF0F0F0F0) >> 4)
	bits = ((bits & 0x00FF00FF) << 8) | ((bits & 0xFF00FF00) >> 8)
	return float32(bits) * 2.3283064365386963e-10 // / 2^32
}

// Hammersley returns the i-th point of an n-point low-discrepancy 2D set.
func Hammersley(i, n uint32) math.Vec2 {
	return math.Vec2{X: float32(i) / float32(n), Y: radicalInverseVdC(i)}
}

// ImportanceSampleGGX maps a 2D sample to a half-vector distributed by the
// GGX normal distribution for the given linear roughness, oriented around n.
func ImportanceSampleGGX(xi math.Vec2, n math.Vec3, roughness float32) math.Vec3 {
	a := roughness * roughness

	phi := 2 * math.Pi * xi.X
	cosTheta := math.Sqrt((1 - xi.Y) / (1 + (a*a-1)*xi.Y))
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	h := math.Vec3{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: cosTheta,
	}

	// Tangent frame around n; the up vector only needs to be non-parallel.
	up := math.Vec3{Z: 1}
	if math.Abs(n.Z) >= 0.999 {
		up = math.Vec3{X: 1}
	}
	tangent := up.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	return tangent.Scale(h.X).Add(bitangent.Scale(h.Y)).Add(n.Scale(h.Z)).Normalize()
}
