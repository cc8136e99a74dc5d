package ibl

import (
	"bytes"
	"testing"

	"github.com/Faultbox/lumen/pkg/math"
)

func TestHalfRoundTrip(t *testing.T) {
	values := []float32{0, 1, 0.5, 0.25, 2, 4, -1, 0.099975586, 65504}
	for _, v := range values {
		got := halfToFloat32(float32ToHalf(v))
		tol := math.Max(math.Abs(v)*1e-3, 1e-4)
		if math.Abs(got-v) > tol {
			t.Errorf("half round trip of %v = %v", v, got)
		}
	}
}

func TestHalfSpecials(t *testing.T) {
	if got := halfToFloat32(float32ToHalf(1e10)); got <= 65504 {
		t.Errorf("overflow encoded as %v, want +inf", got)
	}
	if got := float32ToHalf(0); got != 0 {
		t.Errorf("zero encoded as %#x", got)
	}
	var zero float32
	if got := float32ToHalf(-zero); got != 0x8000 {
		t.Errorf("negative zero encoded as %#x", got)
	}
}

func TestBakeSaveLoadRoundTrip(t *testing.T) {
	env := gradientEquirect(64, 32)
	baked := Bake(env, BakeOptions{
		IndirectSize:   16,
		IrradianceSize: 8,
		Samples:        32,
		IrradianceStep: 0.2,
		Workers:        2,
	})

	var buf bytes.Buffer
	if err := baked.Save(&buf); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Irradiance.Size() != 8 || loaded.Indirect.Size() != 16 {
		t.Fatalf("loaded sizes %d/%d, want 8/16",
			loaded.Irradiance.Size(), loaded.Indirect.Size())
	}
	if loaded.Indirect.Mips() != baked.Indirect.Mips() {
		t.Fatalf("loaded mips %d, want %d", loaded.Indirect.Mips(), baked.Indirect.Mips())
	}

	// Texels survive the 16-bit quantization.
	for face := 0; face < 6; face++ {
		for mip := 0; mip < baked.Indirect.Mips(); mip++ {
			want := baked.Indirect.Face(face, mip)
			got := loaded.Indirect.Face(face, mip)
			for y := 0; y < want.Height(); y++ {
				for x := 0; x < want.Width(); x++ {
					a := want.At(x, y)
					b := got.At(x, y)
					if math.Abs(a.X-b.X) > 0.005 || math.Abs(a.Y-b.Y) > 0.005 ||
						math.Abs(a.Z-b.Z) > 0.005 {
						t.Fatalf("indirect face %d mip %d texel (%d, %d): %v != %v",
							face, mip, x, y, a, b)
					}
				}
			}
		}
	}
}

func TestLoadTruncated(t *testing.T) {
	env := uniformEquirect(32, 16, 1)
	baked := Bake(env, BakeOptions{
		IndirectSize:   8,
		IrradianceSize: 4,
		Samples:        16,
		IrradianceStep: 0.3,
	})

	var buf bytes.Buffer
	if err := baked.Save(&buf); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if _, err := Load(bytes.NewReader(buf.Bytes()[:buf.Len()/2])); err == nil {
		t.Error("Load() of truncated data succeeded, want error")
	}
}
