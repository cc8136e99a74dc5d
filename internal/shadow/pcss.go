package shadow

import (
	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

const (
	depthBiasScale      = 0.01
	penumbraSensitivity = 0.05
)

// Fragment carries the per-fragment inputs to the filter.
type Fragment struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Filter returns the shadow factor in [0,1] for a fragment lit by a
// directional light. 1 is fully lit. Fragments outside the light
// frustum are treated as unshadowed.
func Filter(l light.RawDirectionalLight, maps *texture.DepthArray, frag Fragment) float32 {
	clip := l.ViewProj.MulVec4(math.Point4(frag.Position))
	if clip.W < 0 {
		return 1
	}
	ndc := clip.XYZ().Scale(1 / clip.W)
	if ndc.Z < 0 || ndc.Z > 1 {
		return 1
	}

	cascade := selectCascade(math.Vec2{X: ndc.X, Y: ndc.Y})
	scale := float32(1) / math.Pow(2, float32(cascade))
	u := ndc.X*scale*0.5 + 0.5
	v := -ndc.Y*scale*0.5 + 0.5
	layer := l.CascadeBase + cascade

	nl := math.Saturate(frag.Normal.Dot(l.Direction.Neg()))
	bias := depthBiasScale * (0.5 + math.Saturate(1-nl)) * scale
	receiver := ndc.Z - bias

	rot := diskRotation(math.Vec2{X: ndc.X, Y: ndc.Y})
	searchRadius := l.Softness / l.Size * scale

	// Blocker search.
	var blockerSum float32
	blockers := 0
	for _, offset := range blockerDisk {
		o := rot.apply(offset).Scale(searchRadius)
		d := maps.Sample(layer, u+o.X, v+o.Y)
		if d < receiver {
			blockerSum += d
			blockers++
		}
	}
	if blockers == 0 {
		return 1
	}
	avgBlocker := blockerSum / float32(blockers)

	radius := math.Min(
		penumbraRadius(receiver, avgBlocker, l.Depth, l.Softness, l.Falloff)*searchRadius,
		searchRadius,
	)

	// PCF over the penumbra.
	blocked := 0
	for _, offset := range filterDisk {
		o := rot.apply(offset).Scale(radius)
		if maps.Sample(layer, u+o.X, v+o.Y) < receiver {
			blocked++
		}
	}
	return 1 - float32(blocked)/FilterSamples
}

// selectCascade picks the cascade whose doubled extent still contains
// the cascade-0 coordinate.
func selectCascade(ndc math.Vec2) int {
	coord := math.Max(math.Abs(ndc.X), math.Abs(ndc.Y))
	switch {
	case coord < 1:
		return 0
	case coord < 2:
		return 1
	case coord < 4:
		return 2
	default:
		return 3
	}
}

// penumbraRadius estimates the normalized penumbra width from the
// receiver-to-blocker distance in world units.
func penumbraRadius(receiver, blocker, depth, softness, falloff float32) float32 {
	p := math.Saturate((receiver - blocker) * depth * penumbraSensitivity * softness)
	return 1 - math.Pow(1-p, falloff)
}

// rotation is a cached 2D rotation.
type rotation struct {
	c, s float32
}

func (r rotation) apply(v math.Vec2) math.Vec2 {
	return math.Vec2{
		X: v.X*r.c - v.Y*r.s,
		Y: v.X*r.s + v.Y*r.c,
	}
}

// diskRotation derives a per-fragment pseudo-random disk rotation from
// the fragment's clip coordinates to break filter banding.
func diskRotation(p math.Vec2) rotation {
	h := math.Fract(math.Sin(p.Dot(math.Vec2{X: 12.9898, Y: 78.233})) * 43758.5453)
	angle := h * 2 * math.Pi
	return rotation{c: math.Cos(angle), s: math.Sin(angle)}
}
