package texture

import (
	"math/bits"

	"github.com/Faultbox/lumen/pkg/math"
)

// Cube is a 6-face cubemap with a mip chain per face. Faces are indexed
// 0: +X, 1: -X, 2: +Y, 3: -Y, 4: +Z, 5: -Z with the face bases below.
type Cube struct {
	size  int
	mips  int
	faces [6][]*Texture2D
}

// MipCount returns the number of roughness mip levels for a face size. The
// chain stops well above 1x1; a 384 face carries 7 levels.
func MipCount(size int) int {
	mips := bits.Len(uint(size)) - 2
	if mips < 1 {
		mips = 1
	}
	return mips
}

// NewCube allocates a cubemap of the given face size with mips levels.
func NewCube(size, mips int) *Cube {
	c := &Cube{size: size, mips: mips}
	for f := 0; f < 6; f++ {
		c.faces[f] = make([]*Texture2D, mips)
		for m := 0; m < mips; m++ {
			mipSize := size >> m
			if mipSize < 1 {
				mipSize = 1
			}
			c.faces[f][m] = NewTexture2D(mipSize, mipSize)
		}
	}
	return c
}

// Size returns the base face size in texels.
func (c *Cube) Size() int { return c.size }

// Mips returns the number of mip levels.
func (c *Cube) Mips() int { return c.mips }

// Face returns one face at one mip level.
func (c *Cube) Face(face, mip int) *Texture2D {
	return c.faces[face][mip]
}

// FaceDirection maps face-local coordinates u, v in [-1, 1] to a direction.
func FaceDirection(face int, u, v float32) math.Vec3 {
	var d math.Vec3
	switch face {
	case 0:
		d = math.Vec3{X: 1, Y: -v, Z: -u}
	case 1:
		d = math.Vec3{X: -1, Y: -v, Z: u}
	case 2:
		d = math.Vec3{X: u, Y: 1, Z: v}
	case 3:
		d = math.Vec3{X: u, Y: -1, Z: -v}
	case 4:
		d = math.Vec3{X: u, Y: -v, Z: 1}
	default:
		d = math.Vec3{X: -u, Y: -v, Z: -1}
	}
	return d.Normalize()
}

// faceUV inverts FaceDirection: it selects the face by the dominant axis and
// returns face-local coordinates in [0, 1].
func faceUV(dir math.Vec3) (face int, u, v float32) {
	ax := math.Abs(dir.X)
	ay := math.Abs(dir.Y)
	az := math.Abs(dir.Z)

	switch {
	case ax >= ay && ax >= az:
		if dir.X > 0 {
			face, u, v = 0, -dir.Z/ax, -dir.Y/ax
		} else {
			face, u, v = 1, dir.Z/ax, -dir.Y/ax
		}
	case ay >= az:
		if dir.Y > 0 {
			face, u, v = 2, dir.X/ay, dir.Z/ay
		} else {
			face, u, v = 3, dir.X/ay, -dir.Z/ay
		}
	default:
		if dir.Z > 0 {
			face, u, v = 4, dir.X/az, -dir.Y/az
		} else {
			face, u, v = 5, -dir.X/az, -dir.Y/az
		}
	}

	return face, u*0.5 + 0.5, v*0.5 + 0.5
}

// Sample fetches the base mip along a direction with bilinear filtering.
func (c *Cube) Sample(dir math.Vec3) math.Vec4 {
	face, u, v := faceUV(dir)
	return c.faces[face][0].Sample(u, v)
}

// SampleLod fetches along a direction at a fractional mip level, filtering
// bilinearly within each mip and linearly between the two nearest mips.
func (c *Cube) SampleLod(dir math.Vec3, lod float32) math.Vec4 {
	lod = math.Clamp(lod, 0, float32(c.mips-1))
	m0 := int(math.Floor(lod))
	m1 := m0 + 1
	if m1 > c.mips-1 {
		m1 = c.mips - 1
	}
	t := lod - float32(m0)

	face, u, v := faceUV(dir)
	s0 := c.faces[face][m0].Sample(u, v)
	if m0 == m1 || t == 0 {
		return s0
	}
	s1 := c.faces[face][m1].Sample(u, v)
	return s0.Scale(1 - t).Add(s1.Scale(t))
}
