package texture

// DepthArray is a square depth texture array. Directional shadow cascades
// are packed as consecutive layers offset by a per-light base index.
type DepthArray struct {
	size   int
	layers int
	data   []float32
}

// NewDepthArray allocates a depth array cleared to the far plane (1.0).
func NewDepthArray(size, layers int) *DepthArray {
	d := &DepthArray{
		size:   size,
		layers: layers,
		data:   make([]float32, size*size*layers),
	}
	for i := range d.data {
		d.data[i] = 1
	}
	return d
}

// Size returns the layer resolution in texels.
func (d *DepthArray) Size() int { return d.size }

// Layers returns the layer count.
func (d *DepthArray) Layers() int { return d.layers }

// Set stores a depth value. Out-of-range coordinates are ignored.
func (d *DepthArray) Set(layer, x, y int, depth float32) {
	if layer < 0 || layer >= d.layers || x < 0 || y < 0 || x >= d.size || y >= d.size {
		return
	}
	d.data[(layer*d.size+y)*d.size+x] = depth
}

// Sample fetches the nearest depth texel at normalized coordinates.
// Reads outside the layer or the [0, 1] UV square return 1.0 (far), matching
// a clamp-to-border white shadow sampler.
func (d *DepthArray) Sample(layer int, u, v float32) float32 {
	if layer < 0 || layer >= d.layers {
		return 1
	}
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 1
	}
	x := clampi(int(u*float32(d.size)), 0, d.size-1)
	y := clampi(int(v*float32(d.size)), 0, d.size-1)
	return d.data[(layer*d.size+y)*d.size+x]
}

// Fill sets every texel of one layer.
func (d *DepthArray) Fill(layer int, depth float32) {
	if layer < 0 || layer >= d.layers {
		return
	}
	base := layer * d.size * d.size
	for i := 0; i < d.size*d.size; i++ {
		d.data[base+i] = depth
	}
}
