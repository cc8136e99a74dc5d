package shadow

import (
	"testing"

	"github.com/Faultbox/lumen/internal/light"
	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

func testFragment() Fragment {
	return Fragment{Position: math.Vec3{}, Normal: math.Vec3{Y: 1}}
}

func TestUnshadowedBehindLight(t *testing.T) {
	raw := light.NewDirectionalLight().Raw(0)
	flip := math.Identity()
	flip[15] = -1
	raw.ViewProj = flip

	maps := texture.NewDepthArray(8, 4)
	maps.Fill(0, 0) // everything blocked, must be ignored
	if got := Filter(raw, maps, testFragment()); got != 1 {
		t.Errorf("shadow factor behind light = %v, want exactly 1", got)
	}
}

func TestUnshadowedOutsideDepthRange(t *testing.T) {
	raw := light.NewDirectionalLight().Raw(0)
	l := light.NewDirectionalLight()
	raw.ViewProj = l.ViewProj(0)

	maps := texture.NewDepthArray(8, 4)
	maps.Fill(0, 0)
	frag := testFragment()
	frag.Position = math.Vec3{Y: -600} // below the far plane
	if got := Filter(raw, maps, frag); got != 1 {
		t.Errorf("shadow factor outside depth range = %v, want exactly 1", got)
	}
}

func TestNoBlockerEarlyExit(t *testing.T) {
	raw := light.NewDirectionalLight().Raw(0)
	maps := texture.NewDepthArray(64, 4)
	// Depth array cleared to the far plane: nothing can block.
	if got := Filter(raw, maps, testFragment()); got != 1 {
		t.Errorf("shadow factor with empty map = %v, want 1", got)
	}
}

func TestFullyBlocked(t *testing.T) {
	raw := light.NewDirectionalLight().Raw(0)
	maps := texture.NewDepthArray(64, 4)
	maps.Fill(0, 0) // a blocker at the near plane everywhere
	if got := Filter(raw, maps, testFragment()); got != 0 {
		t.Errorf("shadow factor under full cover = %v, want 0", got)
	}
}

func TestCascadeSelection(t *testing.T) {
	cases := []struct {
		coord float32
		want  int
	}{
		{0, 0},
		{0.99, 0},
		{1.5, 1},
		{3.9, 2},
		{4.1, 3},
		{100, 3},
	}
	for _, c := range cases {
		if got := selectCascade(math.Vec2{X: c.coord}); got != c.want {
			t.Errorf("selectCascade(%v) = %v, want %v", c.coord, got, c.want)
		}
	}
}

func TestCascadeSelectionMonotonic(t *testing.T) {
	prev := 0
	for coord := float32(0); coord < 8; coord += 0.1 {
		got := selectCascade(math.Vec2{Y: coord})
		if got < prev {
			t.Fatalf("cascade dropped from %v to %v at coord %v", prev, got, coord)
		}
		prev = got
	}
}

func TestPenumbraSoftnessMonotonic(t *testing.T) {
	prev := float32(-1)
	for softness := float32(0); softness <= 8; softness += 0.5 {
		r := penumbraRadius(0.5, 0.45, 1000, softness, 2)
		if r < prev {
			t.Fatalf("penumbra shrank from %v to %v at softness %v", prev, r, softness)
		}
		prev = r
	}
}

func TestPenumbraFalloffRemap(t *testing.T) {
	// Falloff 1 is the identity remap.
	p := penumbraRadius(0.5, 0.48, 1000, 1, 1)
	want := math.Saturate((0.5 - 0.48) * 1000 * penumbraSensitivity * 1)
	if math.Abs(p-want) > 1e-6 {
		t.Errorf("penumbra at falloff 1 = %v, want %v", p, want)
	}
	// Higher falloff widens small penumbras.
	if penumbraRadius(0.5, 0.499, 1000, 1, 4) <= penumbraRadius(0.5, 0.499, 1000, 1, 1) {
		t.Error("falloff 4 did not widen a small penumbra")
	}
}

func TestDiskPointsInsideUnitDisk(t *testing.T) {
	for i, p := range blockerDisk {
		if p.Dot(p) > 1 {
			t.Errorf("blocker sample %d outside unit disk: %v", i, p)
		}
	}
	for i, p := range filterDisk {
		if p.Dot(p) > 1 {
			t.Errorf("filter sample %d outside unit disk: %v", i, p)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := diskRotation(math.Vec2{X: 3.7, Y: -1.2})
	v := math.Vec2{X: 0.6, Y: -0.3}
	got := r.apply(v)
	if math.Abs(got.Length()-v.Length()) > 1e-5 {
		t.Errorf("rotation changed length: %v -> %v", v.Length(), got.Length())
	}
}
