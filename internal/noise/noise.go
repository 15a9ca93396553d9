// Package noise provides single octave Perlin noise in two and three
// dimensions, roughly in [-1, 1] and zero on integer lattice points.
package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	alpha   = 2
	beta    = 2
	octaves = 1
)

// Perlin is safe for concurrent use once created.
type Perlin struct {
	gen *perlin.Perlin
}

func New(seed int64) *Perlin {
	return &Perlin{gen: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

func (p *Perlin) At2(x, y float32) float32 {
	return float32(p.gen.Noise2D(float64(x), float64(y)))
}

func (p *Perlin) At3(x, y, z float32) float32 {
	return float32(p.gen.Noise3D(float64(x), float64(y), float64(z)))
}
