package ibl

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// DefaultPrefilterSamples is the importance-sample count per output texel.
const DefaultPrefilterSamples = 1024

// PrefilterSpecular convolves the base mip of env into its own mip chain,
// one discrete roughness bucket per level: roughness = mip / (mips - 1).
//
// Mip 0 (roughness 0) keeps the unconvolved environment; convolving there
// would hit the GGX
// importance-sampling singularity and only add Monte-Carlo noise. The other
// levels estimate the specular integral with Hammersley-sequence GGX samples,
// assuming view = normal, weighting each sample by n·l.
func PrefilterSpecular(env *texture.Cube, samples uint32, workers int) {
	if samples == 0 {
		samples = DefaultPrefilterSamples
	}
	mips := env.Mips()

	for mip := 1; mip < mips; mip++ {
		roughness := float32(mip) / float32(mips-1)
		size := env.Face(0, mip).Width()

		kernel.Dispatch3D(size, size, 6, workers, func(x, y, face int) {
			u := (float32(x)+0.5)/float32(size)*2 - 1
			v := (float32(y)+0.5)/float32(size)*2 - 1

			n := texture.FaceDirection(face, u, v)
			env.Face(face, mip).Set(x, y, prefilterTexel(env, n, roughness, samples))
		})
	}
}

func prefilterTexel(env *texture.Cube, n math.Vec3, roughness float32, samples uint32) math.Vec4 {
	// The standard split-sum simplification: view direction equals normal.
	v := n

	var sum math.Vec3
	var weight float32

	for i := uint32(0); i < samples; i++ {
		xi := Hammersley(i, samples)
		h := ImportanceSampleGGX(xi, n, roughness)
		l := v.Neg().Reflect(h)

		nl := n.Dot(l)
		if nl <= 0 {
			continue
		}

		sum = sum.Add(env.Sample(l).XYZ().Scale(nl))
		weight += nl
	}

	if weight == 0 {
		return math.Point4(env.Sample(n).XYZ())
	}
	return math.Point4(sum.Scale(1 / weight))
}
