package render

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// Renderer produces HDR frames from analytic scenes.
type Renderer struct {
	Width   int
	Height  int
	Workers int

	ShadowMapSize int
}

// NewRenderer returns a renderer at the given resolution using all
// available workers.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:         width,
		Height:        height,
		ShadowMapSize: DefaultShadowMapSize,
	}
}

// Render shades the scene into a fresh HDR target.
func (r *Renderer) Render(scene *Scene) *texture.Texture2D {
	aspect := float32(r.Width) / float32(r.Height)

	var maps *texture.DepthArray
	if len(scene.Directional) > 0 {
		maps = RenderShadowMaps(scene, r.ShadowMapSize, r.Workers)
	}
	shader := NewShader(scene, aspect, maps)

	invView := scene.Camera.View().Inverse()
	halfTan := math.Tan(scene.Camera.FovY / 2)
	origin := scene.Camera.Position

	out := texture.NewTexture2D(r.Width, r.Height)
	kernel.Dispatch2D(r.Width, r.Height, r.Workers, func(x, y int) {
		ndcX := (float32(x)+0.5)/float32(r.Width)*2 - 1
		ndcY := 1 - (float32(y)+0.5)/float32(r.Height)*2

		local := math.Vec3{
			X: ndcX * halfTan * aspect,
			Y: ndcY * halfTan,
			Z: -1,
		}
		dir := invView.TransformDirection(local).Normalize()

		var color math.Vec3
		if i, t, ok := nearestHit(scene.Spheres, origin, dir); ok {
			hit := origin.Add(dir.Scale(t))
			normal := hit.Sub(scene.Spheres[i].Center).Normalize()
			color = shader.Shade(scene.Spheres[i].Material, hit, normal)
		} else {
			color = shader.Sky(dir)
		}
		out.Set(x, y, math.Vec4{X: color.X, Y: color.Y, Z: color.Z, W: 1})
	})
	return out
}
