package ibl

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// DirectionToEquirect maps a unit direction to equirectangular UV using
// theta = atan2(z, x) and phi = asin(y).
func DirectionToEquirect(dir math.Vec3) (u, v float32) {
	theta := math.Atan2(dir.Z, dir.X)
	phi := math.Asin(math.Clamp(dir.Y, -1, 1))
	return theta/(2*math.Pi) + 0.5, -phi/math.Pi + 0.5
}

// ProjectEquirect fills the base mip of every cube face from an
// equirectangular panorama. Each output texel is a pure coordinate remap
// plus a bilinear fetch with horizontal wraparound.
func ProjectEquirect(src *texture.Texture2D, dst *texture.Cube, workers int) {
	src.Wrap = texture.RepeatX
	size := dst.Size()

	kernel.Dispatch3D(size, size, 6, workers, func(x, y, face int) {
		u := (float32(x)+0.5)/float32(size)*2 - 1
		v := (float32(y)+0.5)/float32(size)*2 - 1

		dir := texture.FaceDirection(face, u, v)
		eu, ev := DirectionToEquirect(dir)
		dst.Face(face, 0).Set(x, y, src.Sample(eu, ev))
	})
}
