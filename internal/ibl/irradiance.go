package ibl

import (
	"github.com/Faultbox/lumen/internal/kernel"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// DefaultIrradianceStep is the angular step in radians for the hemisphere
// integration. Larger steps trade accuracy for bake speed.
const DefaultIrradianceStep = 0.05

// ConvolveIrradiance integrates the environment over the hemisphere around
// every output texel's normal, producing the Lambertian irradiance cubemap.
// The nested azimuth/elevation loops at a fixed angular step keep the result
// deterministic for a given step size.
func ConvolveIrradiance(env *texture.Cube, dst *texture.Cube, step float32, workers int) {
	if step <= 0 {
		step = DefaultIrradianceStep
	}
	size := dst.Size()

	kernel.Dispatch3D(size, size, 6, workers, func(x, y, face int) {
		u := (float32(x)+0.5)/float32(size)*2 - 1
		v := (float32(y)+0.5)/float32(size)*2 - 1

		n := texture.FaceDirection(face, u, v)
		dst.Face(face, 0).Set(x, y, irradianceTexel(env, n, step))
	})
}

func irradianceTexel(env *texture.Cube, n math.Vec3, step float32) math.Vec4 {
	up := math.Vec3{Y: 1}
	if math.Abs(n.Y) >= 0.999 {
		up = math.Vec3{X: 1}
	}
	right := up.Cross(n).Normalize()
	up = n.Cross(right)

	var sum math.Vec3
	var count int

	for phi := float32(0); phi < 2*math.Pi; phi += step {
		for theta := float32(0); theta < math.Pi/2; theta += step {
			sinTheta := math.Sin(theta)
			cosTheta := math.Cos(theta)

			// Tangent-space hemisphere direction rotated into world space.
			dir := right.Scale(sinTheta * math.Cos(phi)).
				Add(up.Scale(sinTheta * math.Sin(phi))).
				Add(n.Scale(cosTheta))

			sum = sum.Add(env.Sample(dir).XYZ().Scale(cosTheta * sinTheta))
			count++
		}
	}

	return math.Point4(sum.Scale(math.Pi / float32(count)))
}
