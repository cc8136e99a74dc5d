// Package texture provides CPU-side float textures: 2D maps, cubemaps with
// mip chains, and depth arrays for shadow cascades.
package texture

import (
	"image"

	"github.com/Faultbox/lumen/pkg/math"
)

// WrapMode controls how sample coordinates outside [0, 1] are handled.
type WrapMode int

const (
	// ClampToEdge clamps coordinates to the edge texel.
	ClampToEdge WrapMode = iota
	// RepeatX wraps horizontally and clamps vertically. Used for
	// equirectangular panoramas where the left and right edges meet.
	RepeatX
)

// Texture2D is a float32 RGBA texture.
type Texture2D struct {
	width  int
	height int
	Wrap   WrapMode
	pix    []math.Vec4
}

// NewTexture2D allocates a zeroed texture.
func NewTexture2D(width, height int) *Texture2D {
	return &Texture2D{
		width:  width,
		height: height,
		pix:    make([]math.Vec4, width*height),
	}
}

// NewFromImage decodes an image into linear float values. Channel values are
// divided by the 16-bit maximum and multiplied by scale; environment maps use
// scale 4.0 (the stored radiance convention), plain color maps use 1.0.
func NewFromImage(img image.Image, scale float32) *Texture2D {
	bounds := img.Bounds()
	t := NewTexture2D(bounds.Dx(), bounds.Dy())

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			t.Set(x, y, math.Vec4{
				X: float32(r) / 65535 * scale,
				Y: float32(g) / 65535 * scale,
				Z: float32(b) / 65535 * scale,
				W: float32(a) / 65535,
			})
		}
	}

	return t
}

// Width returns the texture width in texels.
func (t *Texture2D) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture2D) Height() int { return t.height }

// At returns the texel at (x, y). Coordinates are wrapped per the wrap mode.
func (t *Texture2D) At(x, y int) math.Vec4 {
	x, y = t.wrap(x, y)
	return t.pix[y*t.width+x]
}

// Set stores a texel. Out-of-range coordinates are ignored.
func (t *Texture2D) Set(x, y int, c math.Vec4) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.pix[y*t.width+x] = c
}

func (t *Texture2D) wrap(x, y int) (int, int) {
	if t.Wrap == RepeatX {
		x = ((x % t.width) + t.width) % t.width
	} else {
		x = clampi(x, 0, t.width-1)
	}
	y = clampi(y, 0, t.height-1)
	return x, y
}

// Sample fetches the texture at normalized coordinates with bilinear
// filtering. Texel centers sit at (i+0.5)/size.
func (t *Texture2D) Sample(u, v float32) math.Vec4 {
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.At(x0, y0)
	c10 := t.At(x0+1, y0)
	c01 := t.At(x0, y0+1)
	c11 := t.At(x0+1, y0+1)

	top := c00.Scale(1 - tx).Add(c10.Scale(tx))
	bottom := c01.Scale(1 - tx).Add(c11.Scale(tx))
	return top.Scale(1 - ty).Add(bottom.Scale(ty))
}

func clampi(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
