package ibl

import (
	"testing"

	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

func TestIrradianceUniformEnvironment(t *testing.T) {
	// Scenario: uniform white radiance integrates to ~1 for every normal
	// (Lambertian normalization), within integration step error.
	env := uniformEquirect(64, 32, 1)
	cube := texture.NewCube(16, 1)
	ProjectEquirect(env, cube, 2)

	irradiance := texture.NewCube(8, 1)
	ConvolveIrradiance(cube, irradiance, 0.1, 2)

	for face := 0; face < 6; face++ {
		tex := irradiance.Face(face, 0)
		for y := 0; y < tex.Height(); y++ {
			for x := 0; x < tex.Width(); x++ {
				if got := tex.At(x, y).X; math.Abs(got-1) > 0.03 {
					t.Fatalf("face %d texel (%d, %d) = %v, want ~1", face, x, y, got)
				}
			}
		}
	}
}

func TestIrradianceDeterministic(t *testing.T) {
	env := gradientEquirect(64, 32)
	cube := texture.NewCube(16, 1)
	ProjectEquirect(env, cube, 2)

	a := texture.NewCube(4, 1)
	b := texture.NewCube(4, 1)
	ConvolveIrradiance(cube, a, 0.1, 1)
	ConvolveIrradiance(cube, b, 0.1, 4)

	for face := 0; face < 6; face++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if a.Face(face, 0).At(x, y) != b.Face(face, 0).At(x, y) {
					t.Fatalf("face %d texel (%d, %d) differs across worker counts", face, x, y)
				}
			}
		}
	}
}

func TestIrradianceFollowsDominantDirection(t *testing.T) {
	// Radiance concentrated on +X: a normal facing +X receives more
	// irradiance than one facing -X.
	env := gradientEquirect(64, 32) // bright toward +X, dark toward -X
	cube := texture.NewCube(16, 1)
	ProjectEquirect(env, cube, 2)

	irradiance := texture.NewCube(8, 1)
	ConvolveIrradiance(cube, irradiance, 0.1, 2)

	toward := irradiance.Sample(math.Vec3{X: 1}).X
	away := irradiance.Sample(math.Vec3{X: -1}).X
	if toward <= away {
		t.Errorf("irradiance toward bright side %v <= away %v", toward, away)
	}
}
