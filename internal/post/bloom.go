// Package post implements the HDR post-processing stack: bloom,
// Gaussian blur, filmic tone mapping and antialiasing.
package post

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// BloomSettings controls the threshold curve and final mix.
type BloomSettings struct {
	Threshold float32
	Knee      float32
	Scale     float32
}

// DefaultBloomSettings matches a bright-pass around 3.5 exposed units.
func DefaultBloomSettings() BloomSettings {
	return BloomSettings{
		Threshold: 3.5,
		Knee:      1,
		Scale:     1,
	}
}

// Bloom adds a thresholded, progressively blurred glow to the source.
// The source is not modified.
func Bloom(src *texture.Texture2D, s BloomSettings, workers int) *texture.Texture2D {
	chain := downsampleChain(src, s, workers)
	if len(chain) == 0 {
		return copyTexture(src, workers)
	}

	// Collapse the chain from the widest blur upward.
	up := chain[len(chain)-1]
	for i := len(chain) - 2; i >= 0; i-- {
		up = upsampleInto(up, chain[i], workers)
	}
	glow := upsampleTent(up, src.Width(), src.Height(), workers)

	out := texture.NewTexture2D(src.Width(), src.Height())
	kernel.Dispatch2D(src.Width(), src.Height(), workers, func(x, y int) {
		c := src.At(x, y)
		g := glow.At(x, y)
		out.Set(x, y, math.Vec4{
			X: c.X + g.X*s.Scale,
			Y: c.Y + g.Y*s.Scale,
			Z: c.Z + g.Z*s.Scale,
			W: c.W,
		})
	})
	return out
}

// downsampleChain builds successively halved mips, thresholding on the
// first step.
func downsampleChain(src *texture.Texture2D, s BloomSettings, workers int) []*texture.Texture2D {
	var chain []*texture.Texture2D
	cur := src
	first := true
	for cur.Width() >= 4 && cur.Height() >= 4 {
		w, h := cur.Width()/2, cur.Height()/2
		next := texture.NewTexture2D(w, h)
		threshold := first
		kernel.Dispatch2D(w, h, workers, func(x, y int) {
			u := (float32(x) + 0.5) / float32(w)
			v := (float32(y) + 0.5) / float32(h)
			c := downsample13(cur, u, v)
			if threshold {
				c = softThreshold(c, s)
			}
			next.Set(x, y, c)
		})
		chain = append(chain, next)
		cur = next
		first = false
	}
	return chain
}

// softThreshold is the quadratic knee bright-pass.
func softThreshold(c math.Vec4, s BloomSettings) math.Vec4 {
	knee := math.Max(s.Knee, 1e-4)
	brightness := math.Max(c.X, math.Max(c.Y, c.Z))
	soft := math.Clamp(brightness-s.Threshold+knee, 0, 2*knee)
	soft = soft * soft * 0.25 / knee
	contribution := math.Max(soft, brightness-s.Threshold) / math.Max(brightness, 1e-4)
	contribution = math.Max(contribution, 0)
	return math.Vec4{X: c.X * contribution, Y: c.Y * contribution, Z: c.Z * contribution, W: c.W}
}

// downsample13 is the 13-tap partial Karis average used during the
// bloom downsample, sampled in source UV space.
func downsample13(t *texture.Texture2D, u, v float32) math.Vec4 {
	dx := 1 / float32(t.Width())
	dy := 1 / float32(t.Height())

	sample := func(ox, oy float32) math.Vec4 {
		return t.Sample(u+ox*dx, v+oy*dy)
	}

	center := sample(0, 0)
	inner := sample(-1, -1).Add(sample(1, -1)).Add(sample(-1, 1)).Add(sample(1, 1))
	edges := sample(-2, 0).Add(sample(2, 0)).Add(sample(0, -2)).Add(sample(0, 2))
	corners := sample(-2, -2).Add(sample(2, -2)).Add(sample(-2, 2)).Add(sample(2, 2))

	out := center.Scale(0.125)
	out = out.Add(inner.Scale(0.5 * 0.25))
	out = out.Add(edges.Scale(0.25 * 0.25))
	out = out.Add(corners.Scale(0.125 * 0.25))
	return out
}

// upsampleTent is the 9-tap tent filter used on the way back up.
func upsampleTent(src *texture.Texture2D, w, h, workers int) *texture.Texture2D {
	out := texture.NewTexture2D(w, h)
	dx := 1 / float32(src.Width())
	dy := 1 / float32(src.Height())
	kernel.Dispatch2D(w, h, workers, func(x, y int) {
		u := (float32(x) + 0.5) / float32(w)
		v := (float32(y) + 0.5) / float32(h)

		sample := func(ox, oy, weight float32) math.Vec4 {
			return src.Sample(u+ox*dx, v+oy*dy).Scale(weight)
		}
		c := sample(0, 0, 4.0/16)
		c = c.Add(sample(-1, 0, 2.0/16)).Add(sample(1, 0, 2.0/16))
		c = c.Add(sample(0, -1, 2.0/16)).Add(sample(0, 1, 2.0/16))
		c = c.Add(sample(-1, -1, 1.0/16)).Add(sample(1, -1, 1.0/16))
		c = c.Add(sample(-1, 1, 1.0/16)).Add(sample(1, 1, 1.0/16))
		out.Set(x, y, c)
	})
	return out
}

// upsampleInto tent-upsamples src to dst's size and accumulates dst.
func upsampleInto(src, dst *texture.Texture2D, workers int) *texture.Texture2D {
	up := upsampleTent(src, dst.Width(), dst.Height(), workers)
	kernel.Dispatch2D(dst.Width(), dst.Height(), workers, func(x, y int) {
		up.Set(x, y, up.At(x, y).Add(dst.At(x, y)))
	})
	return up
}

func copyTexture(src *texture.Texture2D, workers int) *texture.Texture2D {
	out := texture.NewTexture2D(src.Width(), src.Height())
	kernel.Dispatch2D(src.Width(), src.Height(), workers, func(x, y int) {
		out.Set(x, y, src.At(x, y))
	})
	return out
}
