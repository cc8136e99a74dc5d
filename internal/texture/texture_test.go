package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/Faultbox/lumen/pkg/math"
)

func TestSampleBilinearCenter(t *testing.T) {
	tex := NewTexture2D(2, 2)
	tex.Set(0, 0, math.Vec4{X: 1})
	tex.Set(1, 0, math.Vec4{X: 1})
	tex.Set(0, 1, math.Vec4{X: 0})
	tex.Set(1, 1, math.Vec4{X: 0})

	got := tex.Sample(0.5, 0.5).X
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("center sample = %v, want 0.5", got)
	}
}

func TestSampleWrapX(t *testing.T) {
	tex := NewTexture2D(4, 1)
	tex.Wrap = RepeatX
	tex.Set(0, 0, math.Vec4{X: 1})

	// Sampling just past the right edge blends with column 0.
	left := tex.Sample(0.125, 0.5).X  // texel 0 center
	wrapped := tex.Sample(1.125, 0.5) // one full width to the right
	if math.Abs(wrapped.X-left) > 1e-6 {
		t.Errorf("wrapped sample = %v, want %v", wrapped.X, left)
	}
}

func TestNewFromImageDecodeScale(t *testing.T) {
	img := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	img.SetRGBA64(0, 0, color.RGBA64{R: 65535, G: 32767, B: 0, A: 65535})

	tex := NewFromImage(img, 4.0)
	got := tex.At(0, 0)

	if math.Abs(got.X-4.0) > 1e-4 {
		t.Errorf("red = %v, want 4.0", got.X)
	}
	if math.Abs(got.Y-2.0) > 1e-3 {
		t.Errorf("green = %v, want ~2.0", got.Y)
	}
	if got.Z != 0 {
		t.Errorf("blue = %v, want 0", got.Z)
	}
}

func TestFaceDirectionRoundTrip(t *testing.T) {
	// faceUV must invert FaceDirection for interior points of each face.
	for face := 0; face < 6; face++ {
		for _, uv := range [][2]float32{{-0.5, -0.5}, {0, 0}, {0.25, 0.75}, {-0.9, 0.3}} {
			dir := FaceDirection(face, uv[0], uv[1])
			gotFace, gotU, gotV := faceUV(dir)

			if gotFace != face {
				t.Fatalf("face %d uv %v: mapped to face %d", face, uv, gotFace)
			}
			wantU := uv[0]*0.5 + 0.5
			wantV := uv[1]*0.5 + 0.5
			if math.Abs(gotU-wantU) > 1e-5 || math.Abs(gotV-wantV) > 1e-5 {
				t.Fatalf("face %d uv %v: got (%v, %v), want (%v, %v)",
					face, uv, gotU, gotV, wantU, wantV)
			}
		}
	}
}

func TestCubeSampleAxes(t *testing.T) {
	cube := NewCube(4, 1)
	for f := 0; f < 6; f++ {
		fill(cube.Face(f, 0), math.Vec4{X: float32(f)})
	}

	axes := []struct {
		dir  math.Vec3
		face float32
	}{
		{math.Vec3{X: 1}, 0},
		{math.Vec3{X: -1}, 1},
		{math.Vec3{Y: 1}, 2},
		{math.Vec3{Y: -1}, 3},
		{math.Vec3{Z: 1}, 4},
		{math.Vec3{Z: -1}, 5},
	}
	for _, tt := range axes {
		got := cube.Sample(tt.dir).X
		if got != tt.face {
			t.Errorf("Sample(%v) hit face value %v, want %v", tt.dir, got, tt.face)
		}
	}
}

func TestCubeSampleLodBlends(t *testing.T) {
	cube := NewCube(4, 2)
	fill(cube.Face(0, 0), math.Vec4{X: 0})
	fill(cube.Face(0, 1), math.Vec4{X: 1})

	got := cube.SampleLod(math.Vec3{X: 1}, 0.5).X
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("SampleLod(0.5) = %v, want 0.5", got)
	}

	// Lod beyond the chain clamps to the last mip.
	got = cube.SampleLod(math.Vec3{X: 1}, 5).X
	if got != 1 {
		t.Errorf("SampleLod(5) = %v, want 1", got)
	}
}

func TestMipCount(t *testing.T) {
	tests := []struct{ size, want int }{
		{1, 1},
		{4, 1},
		{128, 6},
		{384, 7},
	}
	for _, tt := range tests {
		if got := MipCount(tt.size); got != tt.want {
			t.Errorf("MipCount(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestDepthArrayOutOfRangeReadsFar(t *testing.T) {
	d := NewDepthArray(8, 2)
	d.Set(0, 4, 4, 0.25)

	if got := d.Sample(0, 0.55, 0.55); got != 0.25 {
		t.Errorf("in-range sample = %v, want 0.25", got)
	}
	if got := d.Sample(0, -0.1, 0.5); got != 1 {
		t.Errorf("out-of-uv sample = %v, want 1", got)
	}
	if got := d.Sample(5, 0.5, 0.5); got != 1 {
		t.Errorf("out-of-layer sample = %v, want 1", got)
	}
}

func fill(tex *Texture2D, c math.Vec4) {
	for y := 0; y < tex.Height(); y++ {
		for x := 0; x < tex.Width(); x++ {
			tex.Set(x, y, c)
		}
	}
}
