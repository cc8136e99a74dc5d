package render

import (
	"sync"

	"github.com/Faultbox/lumen/internal/camera"
	"github.com/Faultbox/lumen/internal/ibl"
	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/internal/pbr"
	"github.com/Faultbox/lumen/internal/shadow"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// The environment BRDF integration depends on nothing in the scene, so
// one table serves every shader in the process.
var (
	lutOnce sync.Once
	lut     *texture.Texture2D
)

func sharedLUT() *texture.Texture2D {
	lutOnce.Do(func() {
		lut = ibl.IntegrateBRDF(ibl.DefaultLUTSize, ibl.DefaultLUTSamples, 0)
	})
	return lut
}

// Shader binds the frame-constant shading inputs. It is safe for
// concurrent use once bound.
type Shader struct {
	Camera      camera.Raw
	Points      []light.RawPointLight
	Directional []light.RawDirectionalLight
	Ambient     math.Vec3
	Environment *ibl.BakedEnvironment
	LUT         *texture.Texture2D
	ShadowMaps  *texture.DepthArray
}

// NewShader resolves a scene into its bound shading form.
func NewShader(scene *Scene, aspect float32, maps *texture.DepthArray) *Shader {
	s := &Shader{
		Camera:      scene.Camera.Raw(aspect),
		Ambient:     scene.Ambient.Raw(),
		Environment: scene.Environment,
		LUT:         sharedLUT(),
		ShadowMaps:  maps,
	}
	for _, pl := range scene.Points {
		s.Points = append(s.Points, pl.Raw())
	}
	for i, dl := range scene.Directional {
		s.Directional = append(s.Directional, dl.Raw(i*light.CascadeCount))
	}
	return s
}

// Shade evaluates the full lighting model at a surface point. The
// result is exposed HDR radiance, ready for the post stack.
func (s *Shader) Shade(mat pbr.StandardMaterial, position, normal math.Vec3) math.Vec3 {
	view := s.Camera.Position.Sub(position).Normalize()
	p := pbr.NewPixel(mat, position, normal, view, s.LUT)

	color := p.Emissive
	for _, pl := range s.Points {
		color = color.Add(pbr.Direct(p, pbr.FromPoint(pl, position)))
	}
	for _, dl := range s.Directional {
		occlusion := float32(1)
		if s.ShadowMaps != nil {
			occlusion = shadow.Filter(dl, s.ShadowMaps, shadow.Fragment{
				Position: position,
				Normal:   p.Normal,
			})
		}
		color = color.Add(pbr.Direct(p, pbr.FromDirectional(dl, occlusion)))
	}
	if s.Environment != nil {
		color = color.Add(pbr.Ambient(p, s.Environment, s.Ambient))
	}
	return color.Scale(s.Camera.Exposure)
}

// Sky returns the exposed background radiance along a view direction.
func (s *Shader) Sky(dir math.Vec3) math.Vec3 {
	if s.Environment == nil {
		return math.Vec3{}
	}
	radiance := s.Environment.Indirect.Sample(dir).XYZ()
	return radiance.Mul(s.Ambient).Scale(s.Camera.Exposure)
}
