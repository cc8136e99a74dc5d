package ibl

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

const (
	// DefaultLUTSize is the resolution of the integrated BRDF table.
	DefaultLUTSize = 256
	// DefaultLUTSamples is the importance-sample count per table entry.
	DefaultLUTSamples = 1024
)

// IntegrateBRDF precomputes the split-sum BRDF response table. The red
// channel holds the Fresnel scale and the green channel the bias, indexed by
// (n·v, perceptual roughness). Runtime shading samples it bilinearly.
func IntegrateBRDF(size int, samples uint32, workers int) *texture.Texture2D {
	if size <= 0 {
		size = DefaultLUTSize
	}
	if samples == 0 {
		samples = DefaultLUTSamples
	}

	lut := NewLUT(size)
	kernel.Dispatch2D(size, size, workers, func(x, y int) {
		nv := (float32(x) + 0.5) / float32(size)
		roughness := (float32(y) + 0.5) / float32(size)

		scale, bias := integrateBRDFTexel(nv, roughness, samples)
		lut.Set(x, y, math.Vec4{X: scale, Y: bias})
	})
	return lut
}

// NewLUT allocates an empty BRDF table texture.
func NewLUT(size int) *texture.Texture2D {
	return texture.NewTexture2D(size, size)
}

// SampleLUT reads the DFG terms at (n·v, perceptual roughness) with clamped
// bilinear filtering, the sampling contract the runtime model depends on.
func SampleLUT(lut *texture.Texture2D, nv, perceptualRoughness float32) math.Vec2 {
	s := lut.Sample(math.Saturate(nv), math.Saturate(perceptualRoughness))
	return math.Vec2{X: s.X, Y: s.Y}
}

func integrateBRDFTexel(nv, roughness float32, samples uint32) (scale, bias float32) {
	nv = math.Max(nv, 1e-4)
	v := math.Vec3{X: math.Sqrt(1 - nv*nv), Z: nv}
	n := math.Vec3{Z: 1}

	var a, b float32
	for i := uint32(0); i < samples; i++ {
		xi := Hammersley(i, samples)
		h := ImportanceSampleGGX(xi, n, roughness)
		l := v.Neg().Reflect(h)

		nl := l.Z
		if nl <= 0 {
			continue
		}
		nh := math.Max(h.Z, 0)
		vh := math.Max(v.Dot(h), 0)

		g := smithGGXIBL(nv, nl, roughness)
		gVis := g * vh / math.Max(nh*nv, 1e-4)
		fc := math.Pow(1-vh, 5)

		a += (1 - fc) * gVis
		b += fc * gVis
	}

	inv := 1 / float32(samples)
	return a * inv, b * inv
}

// smithGGXIBL is the Schlick-GGX geometry term with the k remapping used for
// image-based lighting (k = roughness^2 / 2).
func smithGGXIBL(nv, nl, roughness float32) float32 {
	a := roughness * roughness
	k := a / 2

	gv := nv / (nv*(1-k) + k)
	gl := nl / (nl*(1-k) + k)
	return gv * gl
}
