// Package render drives the shading core over analytic sphere scenes,
// producing HDR frames for the post stack.
package render

import (
	"github.com/Faultbox/lumen/internal/camera"
	"github.com/Faultbox/lumen/internal/ibl"
	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/internal/pbr"
	"github.com/Faultbox/lumen/pkg/math"
)

// Sphere is the analytic primitive rendered by the preview path.
type Sphere struct {
	Center   math.Vec3
	Radius   float32
	Material pbr.StandardMaterial
}

// Scene holds everything a frame needs.
type Scene struct {
	Camera      camera.Camera
	Spheres     []Sphere
	Points      []light.PointLight
	Directional []light.DirectionalLight
	Ambient     light.AmbientLight
	Environment *ibl.BakedEnvironment
}

// NewScene returns a scene with default camera and ambient light and
// no geometry.
func NewScene() Scene {
	return Scene{
		Camera:  camera.New(),
		Ambient: light.NewAmbientLight(),
	}
}

// intersect returns the nearest ray-sphere hit. ok is false on miss.
func (s Sphere) intersect(origin, dir math.Vec3) (t float32, ok bool) {
	oc := origin.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t = -b - sq; t > 1e-4 {
		return t, true
	}
	if t = -b + sq; t > 1e-4 {
		return t, true
	}
	return 0, false
}

// nearestHit finds the closest sphere along a ray.
func nearestHit(spheres []Sphere, origin, dir math.Vec3) (int, float32, bool) {
	best := -1
	bestT := float32(0)
	for i, s := range spheres {
		if t, ok := s.intersect(origin, dir); ok && (best < 0 || t < bestT) {
			best = i
			bestT = t
		}
	}
	return best, bestT, best >= 0
}
