package ibl

import (
	"testing"

	"github.com/Faultbox/lumen/pkg/math"
)

func TestIntegrateBRDFEnergyBound(t *testing.T) {
	lut := IntegrateBRDF(32, 256, 2)

	// dfg.x + dfg.y is the specular response for f0 = 1; it can never
	// exceed unity anywhere in the table.
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			e := lut.At(x, y)
			sum := e.X + e.Y
			if sum < 0 || sum > 1.02 {
				t.Fatalf("dfg at (%d, %d) = (%v, %v), sum %v outside [0, 1]",
					x, y, e.X, e.Y, sum)
			}
		}
	}
}

func TestIntegrateBRDFSmoothGrazingBias(t *testing.T) {
	lut := IntegrateBRDF(32, 256, 2)

	// Smooth surface at grazing incidence: the Fresnel bias term dominates
	// (everything reflects regardless of f0).
	grazing := SampleLUT(lut, 0.02, 0.05)
	if grazing.Y < 0.5 {
		t.Errorf("grazing smooth bias = %v, want > 0.5", grazing.Y)
	}

	// Head-on smooth incidence: the scale term dominates instead.
	headOn := SampleLUT(lut, 0.98, 0.05)
	if headOn.X < 0.5 {
		t.Errorf("head-on smooth scale = %v, want > 0.5", headOn.X)
	}
	if headOn.Y > 0.2 {
		t.Errorf("head-on smooth bias = %v, want small", headOn.Y)
	}
}

func TestSampleLUTClampsCoordinates(t *testing.T) {
	lut := NewLUT(8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			lut.Set(x, y, math.Vec4{X: 0.5, Y: 0.25})
		}
	}

	got := SampleLUT(lut, -1, 2)
	if got.X != 0.5 || got.Y != 0.25 {
		t.Errorf("out-of-range sample = %v, want (0.5, 0.25)", got)
	}
}
