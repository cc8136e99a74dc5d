package ibl

import (
	"testing"

	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

// equirectDirection inverts DirectionToEquirect for test panoramas.
func equirectDirection(u, v float32) math.Vec3 {
	theta := (u - 0.5) * 2 * math.Pi
	phi := -(v - 0.5) * math.Pi
	return math.Vec3{
		X: math.Cos(phi) * math.Cos(theta),
		Y: math.Sin(phi),
		Z: math.Cos(phi) * math.Sin(theta),
	}
}

// gradientEquirect builds a panorama whose radiance varies smoothly with
// direction: value = 0.5 + 0.5 * dir.X.
func gradientEquirect(width, height int) *texture.Texture2D {
	env := texture.NewTexture2D(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := (float32(x) + 0.5) / float32(width)
			v := (float32(y) + 0.5) / float32(height)
			dir := equirectDirection(u, v)
			env.Set(x, y, math.Point4(math.Splat(0.5 + 0.5*dir.X)))
		}
	}
	return env
}

func uniformEquirect(width, height int, value float32) *texture.Texture2D {
	env := texture.NewTexture2D(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			env.Set(x, y, math.Point4(math.Splat(value)))
		}
	}
	return env
}

func TestDirectionToEquirectRoundTrip(t *testing.T) {
	dirs := []math.Vec3{
		{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
		{X: 0.5, Y: 0.5, Z: 0.7},
		{X: -0.3, Y: -0.8, Z: 0.2},
	}
	for _, dir := range dirs {
		dir = dir.Normalize()
		u, v := DirectionToEquirect(dir)
		got := equirectDirection(u, v)
		if got.Sub(dir).Length() > 1e-5 {
			t.Errorf("round trip of %v = %v", dir, got)
		}
	}
}

func TestProjectEquirectMatchesAnalytic(t *testing.T) {
	env := gradientEquirect(128, 64)
	cube := texture.NewCube(32, 1)
	ProjectEquirect(env, cube, 2)

	dirs := []math.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		{X: 1, Y: 1, Z: 1}, {X: -0.4, Y: 0.2, Z: 0.9},
	}
	for _, dir := range dirs {
		dir = dir.Normalize()
		want := 0.5 + 0.5*dir.X
		got := cube.Sample(dir).X
		if math.Abs(got-want) > 0.05 {
			t.Errorf("cube radiance along %v = %v, want %v", dir, got, want)
		}
	}
}

func TestProjectEquirectIdempotent(t *testing.T) {
	const width, height = 128, 64

	env := gradientEquirect(width, height)
	cube := texture.NewCube(64, 1)
	ProjectEquirect(env, cube, 2)

	// Reproject the cubemap back onto an equirect grid; it must match the
	// source within bilinear resampling error. Pole rows are skipped: the
	// equirect parameterization degenerates there.
	for y := 4; y < height-4; y++ {
		for x := 0; x < width; x++ {
			u := (float32(x) + 0.5) / float32(width)
			v := (float32(y) + 0.5) / float32(height)
			dir := equirectDirection(u, v)

			got := cube.Sample(dir).X
			want := env.At(x, y).X
			if math.Abs(got-want) > 0.06 {
				t.Fatalf("reprojection at (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestProjectEquirectUniform(t *testing.T) {
	env := uniformEquirect(64, 32, 1)
	cube := texture.NewCube(16, 1)
	ProjectEquirect(env, cube, 0)

	for face := 0; face < 6; face++ {
		tex := cube.Face(face, 0)
		for y := 0; y < tex.Height(); y++ {
			for x := 0; x < tex.Width(); x++ {
				if got := tex.At(x, y).X; math.Abs(got-1) > 1e-6 {
					t.Fatalf("face %d texel (%d, %d) = %v, want 1", face, x, y, got)
				}
			}
		}
	}
}
