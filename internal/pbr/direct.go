package pbr

import (
	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/pkg/math"
)

// fireflyScale bounds any single light's contribution relative to the
// unlit base color, suppressing sparkle from near-singular lobes.
const fireflyScale = 4

// Light is the per-fragment scratch form of a light source.
type Light struct {
	Direction   math.Vec3 // surface to light, normalized
	Color       math.Vec3
	Intensity   float32
	Attenuation float32
	Occlusion   float32 // shadow factor in [0,1]
}

// FromPoint resolves a point light for the given fragment position.
func FromPoint(raw light.RawPointLight, position math.Vec3) Light {
	to := raw.Position.Sub(position)
	d2 := to.Dot(to)
	return Light{
		Direction:   to.Normalize(),
		Color:       raw.Color,
		Intensity:   raw.Intensity,
		Attenuation: distanceAttenuation(d2, raw.Range),
		Occlusion:   1,
	}
}

// FromDirectional resolves a directional light with its shadow factor.
func FromDirectional(raw light.RawDirectionalLight, occlusion float32) Light {
	return Light{
		Direction:   raw.Direction.Neg(),
		Color:       raw.Color,
		Intensity:   raw.Intensity,
		Attenuation: 1,
		Occlusion:   occlusion,
	}
}

// distanceAttenuation is the windowed inverse-square falloff. It
// reaches exactly zero at the light's range.
func distanceAttenuation(d2, rng float32) float32 {
	factor := d2 / (rng * rng)
	window := math.Saturate(1 - factor*factor)
	return window * window / math.Max(d2, 1e-4)
}

// Direct evaluates one light against a derived pixel, returning the
// outgoing radiance contribution.
func Direct(p Pixel, l Light) math.Vec3 {
	nl := math.Saturate(p.Normal.Dot(l.Direction))
	h := p.View.Add(l.Direction).Normalize()
	nh := math.Saturate(p.Normal.Dot(h))
	lh := math.Saturate(l.Direction.Dot(h))

	d := DistributionGGX(p.Roughness, nh)
	v := VisibilitySmithGGX(p.Roughness, p.NoV, nl)
	f := FresnelSchlick(p.F0, p.F90, lh)
	specular := f.Scale(d * v)

	diffuse := p.DiffuseColor.Scale(DiffuseBurley(p.Roughness, p.NoV, nl, lh))

	color := diffuse.Add(specular)

	if p.HasClearcoat {
		dcc := DistributionGGX(p.ClearcoatRoughness, nh)
		vcc := VisibilityKelemen(lh)
		fcc := fresnelSchlickScalar(0.04, 1, lh) * p.Clearcoat
		color = color.Scale(1 - fcc)
		color = color.Add(math.Vec3{X: 1, Y: 1, Z: 1}.Scale(dcc * vcc * fcc))
	}

	color = color.Scale(nl)

	if p.HasSubsurface {
		color = color.Add(subsurfaceTerm(p, l.Direction, nl))
	}

	scale := l.Intensity * l.Attenuation * l.Occlusion
	out := color.Mul(l.Color).Scale(scale)

	limit := p.BaseColor.Mul(l.Color).Scale(l.Intensity * l.Attenuation * fireflyScale)
	return out.Min(limit)
}

// subsurfaceTerm is a thin-surface forward and back scatter blend. It
// is not multiplied by n·l since scattered light wraps around the
// terminator.
func subsurfaceTerm(p Pixel, lightDir math.Vec3, nl float32) math.Vec3 {
	scatter := math.Saturate(p.View.Dot(lightDir.Neg()))
	forward := math.Exp2(scatter*p.SubsurfacePower - p.SubsurfacePower)
	back := math.Saturate(nl*p.Thickness+(1-p.Thickness)) * 0.5
	blend := math.Lerp(back, 1, forward)
	return p.SubsurfaceColor.Scale(blend * (1 - p.Thickness) / math.Pi)
}
