package ibl

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Faultbox/lumen/internal/texture"
	"github.com/Faultbox/lumen/pkg/math"
)

const (
	// DefaultIndirectSize is the prefiltered specular cubemap face size.
	DefaultIndirectSize = 384
	// DefaultIrradianceSize is the irradiance cubemap face size.
	DefaultIrradianceSize = 128

	texelBytes = 8 // four 16-bit float channels
)

// BakedEnvironment holds the two cubemaps runtime shading reads: the
// single-level diffuse irradiance map and the mip-chained prefiltered
// specular radiance ("indirect") map.
type BakedEnvironment struct {
	Irradiance *texture.Cube
	Indirect   *texture.Cube
}

// BakeOptions configures a bake. Zero values select the defaults.
type BakeOptions struct {
	IndirectSize   int
	IrradianceSize int
	Samples        uint32
	IrradianceStep float32
	Workers        int
}

// Bake runs the full environment pipeline: equirect projection, specular
// prefilter, and irradiance convolution. The bake passes complete before the
// result is returned; runtime stages only ever see finished cubemaps.
func Bake(env *texture.Texture2D, opts BakeOptions) *BakedEnvironment {
	if opts.IndirectSize <= 0 {
		opts.IndirectSize = DefaultIndirectSize
	}
	if opts.IrradianceSize <= 0 {
		opts.IrradianceSize = DefaultIrradianceSize
	}

	indirect := texture.NewCube(opts.IndirectSize, texture.MipCount(opts.IndirectSize))
	ProjectEquirect(env, indirect, opts.Workers)
	PrefilterSpecular(indirect, opts.Samples, opts.Workers)

	irradiance := texture.NewCube(opts.IrradianceSize, 1)
	ConvolveIrradiance(indirect, irradiance, opts.IrradianceStep, opts.Workers)

	return &BakedEnvironment{
		Irradiance: irradiance,
		Indirect:   indirect,
	}
}

// Save writes the baked environment: irradiance face size, irradiance texels,
// indirect face size, mip count, indirect texels. Integers are little-endian
// u32, texels are RGBA 16-bit floats, faces outer, mips inner, rows top-down.
func (b *BakedEnvironment) Save(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(b.Irradiance.Size())); err != nil {
		return fmt.Errorf("writing irradiance size: %w", err)
	}
	if err := writeCube(w, b.Irradiance); err != nil {
		return fmt.Errorf("writing irradiance data: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(b.Indirect.Size())); err != nil {
		return fmt.Errorf("writing indirect size: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(b.Indirect.Mips())); err != nil {
		return fmt.Errorf("writing indirect mip count: %w", err)
	}
	if err := writeCube(w, b.Indirect); err != nil {
		return fmt.Errorf("writing indirect data: %w", err)
	}

	return nil
}

// Load reads an environment written by Save.
func Load(r io.Reader) (*BakedEnvironment, error) {
	var irradianceSize uint32
	if err := binary.Read(r, binary.LittleEndian, &irradianceSize); err != nil {
		return nil, fmt.Errorf("reading irradiance size: %w", err)
	}
	irradiance := texture.NewCube(int(irradianceSize), 1)
	if err := readCube(r, irradiance); err != nil {
		return nil, fmt.Errorf("reading irradiance data: %w", err)
	}

	var indirectSize, indirectMips uint32
	if err := binary.Read(r, binary.LittleEndian, &indirectSize); err != nil {
		return nil, fmt.Errorf("reading indirect size: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &indirectMips); err != nil {
		return nil, fmt.Errorf("reading indirect mip count: %w", err)
	}
	indirect := texture.NewCube(int(indirectSize), int(indirectMips))
	if err := readCube(r, indirect); err != nil {
		return nil, fmt.Errorf("reading indirect data: %w", err)
	}

	return &BakedEnvironment{
		Irradiance: irradiance,
		Indirect:   indirect,
	}, nil
}

func writeCube(w io.Writer, c *texture.Cube) error {
	for face := 0; face < 6; face++ {
		for mip := 0; mip < c.Mips(); mip++ {
			tex := c.Face(face, mip)
			buf := make([]byte, tex.Width()*tex.Height()*texelBytes)

			i := 0
			for y := 0; y < tex.Height(); y++ {
				for x := 0; x < tex.Width(); x++ {
					p := tex.At(x, y)
					binary.LittleEndian.PutUint16(buf[i:], float32ToHalf(p.X))
					binary.LittleEndian.PutUint16(buf[i+2:], float32ToHalf(p.Y))
					binary.LittleEndian.PutUint16(buf[i+4:], float32ToHalf(p.Z))
					binary.LittleEndian.PutUint16(buf[i+6:], float32ToHalf(p.W))
					i += texelBytes
				}
			}

			if _, err := w.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

func readCube(r io.Reader, c *texture.Cube) error {
	for face := 0; face < 6; face++ {
		for mip := 0; mip < c.Mips(); mip++ {
			tex := c.Face(face, mip)
			buf := make([]byte, tex.Width()*tex.Height()*texelBytes)

			if _, err := io.ReadFull(r, buf); err != nil {
				return err
			}

			i := 0
			for y := 0; y < tex.Height(); y++ {
				for x := 0; x < tex.Width(); x++ {
					tex.Set(x, y, math.Vec4{
						X: halfToFloat32(binary.LittleEndian.Uint16(buf[i:])),
						Y: halfToFloat32(binary.LittleEndian.Uint16(buf[i+2:])),
						Z: halfToFloat32(binary.LittleEndian.Uint16(buf[i+4:])),
						W: halfToFloat32(binary.LittleEndian.Uint16(buf[i+6:])),
					})
					i += texelBytes
				}
			}
		}
	}
	return nil
}
