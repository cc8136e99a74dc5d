package post

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// FXAASettings tunes the edge detector and search extent.
type FXAASettings struct {
	EdgeThreshold    float32 // relative local contrast cutoff
	EdgeThresholdMin float32 // absolute contrast floor
	SpanMax          float32 // blur search extent in texels
}

// DefaultFXAASettings matches the common quality preset.
func DefaultFXAASettings() FXAASettings {
	return FXAASettings{
		EdgeThreshold:    1.0 / 8,
		EdgeThresholdMin: 1.0 / 24,
		SpanMax:          8,
	}
}

// FXAA runs luma-based antialiasing over an LDR frame.
func FXAA(src *texture.Texture2D, s FXAASettings, workers int) *texture.Texture2D {
	const (
		reduceMul = 1.0 / 8
		reduceMin = 1.0 / 128
	)
	w, h := src.Width(), src.Height()
	dx := 1 / float32(w)
	dy := 1 / float32(h)

	out := texture.NewTexture2D(w, h)
	kernel.Dispatch2D(w, h, workers, func(x, y int) {
		u := (float32(x) + 0.5) / float32(w)
		v := (float32(y) + 0.5) / float32(h)

		center := src.At(x, y)
		lumaM := luma(center)
		lumaNW := luma(src.Sample(u-dx, v-dy))
		lumaNE := luma(src.Sample(u+dx, v-dy))
		lumaSW := luma(src.Sample(u-dx, v+dy))
		lumaSE := luma(src.Sample(u+dx, v+dy))

		lumaMin := math.Min(lumaM, math.Min(math.Min(lumaNW, lumaNE), math.Min(lumaSW, lumaSE)))
		lumaMax := math.Max(lumaM, math.Max(math.Max(lumaNW, lumaNE), math.Max(lumaSW, lumaSE)))

		if lumaMax-lumaMin < math.Max(s.EdgeThresholdMin, lumaMax*s.EdgeThreshold) {
			out.Set(x, y, center)
			return
		}

		dir := math.Vec2{
			X: -((lumaNW + lumaNE) - (lumaSW + lumaSE)),
			Y: (lumaNW + lumaSW) - (lumaNE + lumaSE),
		}
		dirReduce := math.Max((lumaNW+lumaNE+lumaSW+lumaSE)*0.25*reduceMul, reduceMin)
		rcpDirMin := 1 / (math.Min(math.Abs(dir.X), math.Abs(dir.Y)) + dirReduce)
		dir.X = math.Clamp(dir.X*rcpDirMin, -s.SpanMax, s.SpanMax) * dx
		dir.Y = math.Clamp(dir.Y*rcpDirMin, -s.SpanMax, s.SpanMax) * dy

		inner := src.Sample(u+dir.X*(1.0/3-0.5), v+dir.Y*(1.0/3-0.5)).
			Add(src.Sample(u+dir.X*(2.0/3-0.5), v+dir.Y*(2.0/3-0.5))).
			Scale(0.5)
		outer := inner.Scale(0.5).
			Add(src.Sample(u-dir.X*0.5, v-dir.Y*0.5).Scale(0.25)).
			Add(src.Sample(u+dir.X*0.5, v+dir.Y*0.5).Scale(0.25))

		if lb := luma(outer); lb < lumaMin || lb > lumaMax {
			out.Set(x, y, inner)
		} else {
			out.Set(x, y, outer)
		}
	})
	return out
}
