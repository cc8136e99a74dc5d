package post

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// acesFit maps one exposed HDR channel to [0,1] with the rational
// polynomial fit of the ACES filmic curve.
func acesFit(x float32) float32 {
	const (
		a = 2.51
		b = 0.03
		c = 2.43
		d = 0.59
		e = 0.14
	)
	return math.Saturate(x * (a*x + b) / (x*(c*x+d) + e))
}

// Tonemap applies the ACES curve channelwise, producing an LDR frame.
func Tonemap(src *texture.Texture2D, workers int) *texture.Texture2D {
	out := texture.NewTexture2D(src.Width(), src.Height())
	kernel.Dispatch2D(src.Width(), src.Height(), workers, func(x, y int) {
		c := src.At(x, y)
		out.Set(x, y, math.Vec4{
			X: acesFit(c.X),
			Y: acesFit(c.Y),
			Z: acesFit(c.Z),
			W: c.W,
		})
	})
	return out
}
