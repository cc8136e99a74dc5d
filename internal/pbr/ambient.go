package pbr

import (
	"github.com/Faultbox/lumen/internal/ibl"
	"github.com/Faultbox/lumen/pkg/math"
)

// EnergySplit returns the fraction of ambient energy routed to the
// specular lobe. The diffuse lobe receives the complement.
func EnergySplit(p Pixel) math.Vec3 {
	return p.F0.Scale(p.DFG.X).Add(p.F0.Scale(p.DFG.Y))
}

// Ambient evaluates the baked environment contribution for one pixel.
// ambientColor is the premultiplied ambient light color.
func Ambient(p Pixel, env *ibl.BakedEnvironment, ambientColor math.Vec3) math.Vec3 {
	irradiance := env.Irradiance.Sample(p.Normal).XYZ()
	diffuse := irradiance.Mul(p.DiffuseColor)

	maxLod := float32(env.Indirect.Mips() - 1)
	reflected := p.View.Neg().Reflect(p.Normal)
	specular := env.Indirect.SampleLod(reflected, p.PerceptualRoughness*maxLod).XYZ()

	e := EnergySplit(p)
	one := math.Vec3{X: 1, Y: 1, Z: 1}
	diffuse = diffuse.Mul(one.Sub(e))
	specular = specular.Mul(e)

	if p.HasSubsurface {
		back := env.Irradiance.Sample(p.Normal.Neg()).XYZ()
		diffuse = diffuse.Add(back.Mul(p.SubsurfaceColor).Scale(1 - p.Thickness))
	}

	if p.HasClearcoat {
		fcc := fresnelSchlickScalar(0.04, 1, p.NoV) * p.Clearcoat
		diffuse = diffuse.Scale(1 - fcc)
		specular = specular.Scale(1 - fcc)

		ccLod := math.Sqrt(p.ClearcoatRoughness) * maxLod
		cc := env.Indirect.SampleLod(reflected, ccLod).XYZ()
		specular = specular.Add(cc.Scale(fcc))
	}

	if p.HasTransmission {
		refracted := p.View.Neg().Refract(p.Normal, 1/p.IOR)
		transmitted := env.Indirect.SampleLod(refracted, p.PerceptualRoughness*maxLod).XYZ()
		absorbed := p.Absorption.Scale(-p.Thickness).Exp()
		transmitted = transmitted.Mul(p.BaseColor).Mul(absorbed)

		diffuse = diffuse.Scale(1 - p.Transmission)
		specular = specular.Lerp(transmitted, p.Transmission)
	}

	return diffuse.Add(specular).Mul(ambientColor)
}
