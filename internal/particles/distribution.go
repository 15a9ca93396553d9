package particles

import (
	"math/rand"

	"github.com/adinfinit/g"
	"github.com/chewxy/math32"
)

// Galaxy generates n points in a three armed spiral in the XZ plane.
func Galaxy(n int, rng *rand.Rand) []g.Vec3 {
	points := make([]g.Vec3, n)
	for i := range points {
		arm := int(3 * rng.Float32())
		alpha := 1/(0.1+math32.Pow(rng.Float32(), 0.7)) - 1/1.1
		r := 4 * alpha
		alpha += float32(arm) * 2 * math32.Pi / 3

		p := g.V3(r*math32.Sin(alpha), 0, r*math32.Cos(alpha))
		p.X += (4 - 0.2*alpha) * jitter(rng)
		p.Y += (2 - 0.1*alpha) * jitter(rng)
		p.Z += (4 - 0.2*alpha) * jitter(rng)
		points[i] = p
	}
	return points
}

// jitter approximates a bell shaped sample in [-2, 2].
func jitter(rng *rand.Rand) float32 {
	return 2 - (rng.Float32() + rng.Float32() + rng.Float32() + rng.Float32())
}

// Gaussian generates n vec4 samples with independent normal components.
func Gaussian(n int, rng *rand.Rand, mean, deviation [4]float32) [][4]float32 {
	samples := make([][4]float32, n)
	for i := range samples {
		for k := range mean {
			samples[i][k] = mean[k] + deviation[k]*float32(rng.NormFloat64())
		}
	}
	return samples
}

// Flatten returns the points as consecutive xyz floats.
func Flatten(points []g.Vec3) []float32 {
	data := make([]float32, 0, 3*len(points))
	for _, p := range points {
		data = append(data, p.X, p.Y, p.Z)
	}
	return data
}
