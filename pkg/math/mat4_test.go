package math

import "testing"

func TestIdentityMul(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	got := Identity().Mul(m)
	if got != m {
		t.Errorf("Identity().Mul(m) = %v, want %v", got, m)
	}
}

func TestTranslatePoint(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Translate.TransformPoint() = %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformDirection(Vec3{0, 0, -1})
	want := Vec3{0, 0, -1}
	if got != want {
		t.Errorf("TransformDirection() = %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(Vec3{3, -2, 5}).Mul(RotateY(0.7))
	id := m.Mul(m.Inverse())
	want := Identity()
	for i := range id {
		if Abs(id[i]-want[i]) > 1e-5 {
			t.Fatalf("m.Mul(m.Inverse())[%d] = %v, want %v", i, id[i], want[i])
		}
	}
}

func TestOrthoDepthRange(t *testing.T) {
	// Right-handed: the view looks down -Z, so a point at z=-near maps to
	// depth 0 and a point at z=-far maps to depth 1.
	proj := Ortho(-1, 1, -1, 1, 0.5, 10)

	near := proj.MulVec4(Vec4{0, 0, -0.5, 1})
	if Abs(near.Z/near.W) > 1e-6 {
		t.Errorf("depth at near plane = %v, want 0", near.Z/near.W)
	}

	far := proj.MulVec4(Vec4{0, 0, -10, 1})
	if Abs(far.Z/far.W-1) > 1e-6 {
		t.Errorf("depth at far plane = %v, want 1", far.Z/far.W)
	}
}

func TestPerspectiveInfiniteDepthRange(t *testing.T) {
	proj := PerspectiveInfinite(Pi/2, 1, 0.1)

	near := proj.MulVec4(Vec4{0, 0, -0.1, 1})
	if Abs(near.Z/near.W) > 1e-5 {
		t.Errorf("depth at near plane = %v, want 0", near.Z/near.W)
	}

	distant := proj.MulVec4(Vec4{0, 0, -1e6, 1})
	d := distant.Z / distant.W
	if d < 0.999 || d > 1.0 {
		t.Errorf("depth at distance = %v, want ~1", d)
	}
}

func TestLookAtMapsCenterToNegativeZ(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformPoint(Vec3{})
	want := Vec3{0, 0, -5}
	if got.Sub(want).Length() > 1e-6 {
		t.Errorf("LookAt maps center to %v, want %v", got, want)
	}
}
