package post

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// maxBlurTaps bounds the precomputed kernel width.
const maxBlurTaps = 64

// BlurSettings selects the Gaussian width and weighting mode.
type BlurSettings struct {
	Sigma float32
	// Reinhard weights each tap by its inverse tone-mapped luma,
	// keeping bright speckles from bleeding across the kernel.
	Reinhard bool
}

// GaussianKernel returns normalized weights for the given sigma. The
// kernel is symmetric; index 0 is the center tap.
func GaussianKernel(sigma float32) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	radius := int(math.Ceil(sigma * 3))
	if radius > maxBlurTaps-1 {
		radius = maxBlurTaps - 1
	}
	weights := make([]float32, radius+1)
	sum := float32(0)
	for i := 0; i <= radius; i++ {
		x := float32(i)
		w := math.Exp(-x * x / (2 * sigma * sigma))
		weights[i] = w
		sum += w
		if i > 0 {
			sum += w
		}
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// Blur applies a separable Gaussian to the source.
func Blur(src *texture.Texture2D, s BlurSettings, workers int) *texture.Texture2D {
	weights := GaussianKernel(s.Sigma)
	tmp := blurPass(src, weights, s.Reinhard, true, workers)
	return blurPass(tmp, weights, s.Reinhard, false, workers)
}

func blurPass(src *texture.Texture2D, weights []float32, reinhard, horizontal bool, workers int) *texture.Texture2D {
	w, h := src.Width(), src.Height()
	out := texture.NewTexture2D(w, h)
	kernel.Dispatch2D(w, h, workers, func(x, y int) {
		var acc math.Vec4
		var norm float32
		for i := -(len(weights) - 1); i < len(weights); i++ {
			sx, sy := x, y
			if horizontal {
				sx += i
			} else {
				sy += i
			}
			weight := weights[abs(i)]
			c := src.At(clampi(sx, 0, w-1), clampi(sy, 0, h-1))
			if reinhard {
				weight /= 1 + luma(c)
			}
			acc = acc.Add(c.Scale(weight))
			norm += weight
		}
		out.Set(x, y, acc.Scale(1/norm))
	})
	return out
}

func luma(c math.Vec4) float32 {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
