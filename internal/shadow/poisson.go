// Package shadow implements percentage-closer soft shadow filtering
// over cascaded depth map arrays.
package shadow

import (
	"math/rand"

	"github.com/Faultbox/lumen/pkg/math"
)

// Sample counts for the two filter phases. They share the same disk
// generator so blocker and filter geometry agree.
const (
	BlockerSamples = 16
	FilterSamples  = 48
)

var (
	blockerDisk [BlockerSamples]math.Vec2
	filterDisk  [FilterSamples]math.Vec2
)

func init() {
	rng := rand.New(rand.NewSource(0x9E3779B9))
	fillDisk(rng, blockerDisk[:])
	fillDisk(rng, filterDisk[:])
}

// fillDisk generates a Poisson-like unit disk point set with Mitchell's
// best-candidate method. Deterministic for a fixed source.
func fillDisk(rng *rand.Rand, disk []math.Vec2) {
	const candidates = 32
	for i := range disk {
		var best math.Vec2
		bestDist := float32(-1)
		for c := 0; c < candidates; c++ {
			p := randomInDisk(rng)
			d := nearestDistance(disk[:i], p)
			if d > bestDist {
				bestDist = d
				best = p
			}
		}
		disk[i] = best
	}
}

func randomInDisk(rng *rand.Rand) math.Vec2 {
	for {
		p := math.Vec2{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
		}
		if p.Dot(p) <= 1 {
			return p
		}
	}
}

func nearestDistance(points []math.Vec2, p math.Vec2) float32 {
	if len(points) == 0 {
		return 2
	}
	best := float32(2)
	for _, q := range points {
		if d := p.Distance(q); d < best {
			best = d
		}
	}
	return best
}
