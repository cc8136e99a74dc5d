package shadow

import "github.com/Faultbox/lumen/pkg/math"

// AABB is an axis-aligned bounding box around shadowed geometry.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the center point of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB) Radius() float32 {
	return b.Max.Sub(b.Min).Scale(0.5).Length()
}

// Extend grows the box to contain a point.
func (b AABB) Extend(p math.Vec3) AABB {
	return AABB{
		Min: b.Min.Min(p),
		Max: b.Max.Max(p),
	}
}

// FitDirectionalLight builds a light view-projection sized to the given
// scene bounds, for callers that want a single fitted matrix instead of
// the fixed-extent cascades. dir is the light's travel direction.
func FitDirectionalLight(dir math.Vec3, bounds AABB) math.Mat4 {
	d := dir.Normalize()
	center := bounds.Center()
	radius := bounds.Radius()

	// Back the eye out far enough that the whole box sits in front of
	// the near plane.
	distance := radius * 2
	eye := center.Sub(d.Scale(distance))

	up := math.Vec3{Y: 1}
	if math.Abs(d.Y) > 0.99 {
		up = math.Vec3{Z: 1}
	}
	view := math.LookAt(eye, center, up)

	// Padding avoids clipping at the shadow map edge.
	padding := radius * 0.1
	halfSize := radius + padding
	far := distance + radius + padding
	proj := math.Ortho(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)

	return proj.Mul(view)
}
