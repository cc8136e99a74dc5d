package render

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// DefaultShadowMapSize is the per-cascade depth resolution.
const DefaultShadowMapSize = 1024

// RenderShadowMaps rasterizes scene depth into one cascade layer per
// directional light cascade, packed in light order.
func RenderShadowMaps(scene *Scene, size, workers int) *texture.DepthArray {
	layers := len(scene.Directional) * light.CascadeCount
	maps := texture.NewDepthArray(size, layers)
	for i, dl := range scene.Directional {
		for cascade := 0; cascade < light.CascadeCount; cascade++ {
			layer := i*light.CascadeCount + cascade
			renderCascade(scene, dl, maps, layer, cascade, workers)
		}
	}
	return maps
}

func renderCascade(scene *Scene, dl light.DirectionalLight, maps *texture.DepthArray, layer, cascade, workers int) {
	inv := dl.ViewProj(cascade).Inverse()
	size := maps.Size()

	kernel.Dispatch2D(size, size, workers, func(x, y int) {
		u := (float32(x) + 0.5) / float32(size)
		v := (float32(y) + 0.5) / float32(size)
		ndc := math.Vec2{X: u*2 - 1, Y: -(v*2 - 1)}

		// The depth segment spans the ortho slab from near to far.
		near := unproject(inv, ndc, 0)
		far := unproject(inv, ndc, 1)
		span := far.Sub(near)
		length := span.Length()
		dir := span.Scale(1 / length)

		if _, t, ok := nearestHit(scene.Spheres, near, dir); ok && t <= length {
			maps.Set(layer, x, y, t/length)
		}
	})
}

func unproject(inv math.Mat4, ndc math.Vec2, depth float32) math.Vec3 {
	p := inv.MulVec4(math.Vec4{X: ndc.X, Y: ndc.Y, Z: depth, W: 1})
	return p.XYZ().Scale(1 / p.W)
}
