package particles

import (
	"math/rand"
	"testing"

	"github.com/adinfinit/g"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	assert.InDelta(t, 0.6408955, Hash(0, 0, 0), 1e-6)
	assert.InDelta(t, 0.3685519, Hash(3, 1, 7), 1e-6)
	assert.InDelta(t, 0.0220466, Hash(5, 1, 7), 1e-6)
	assert.InDelta(t, 0.9990785, Hash(-4, 2, 1), 1e-6)

	for i := int32(0); i < 1000; i++ {
		h := Hash(i*7919, i, 12345)
		assert.True(t, h >= 0 && h <= 1, "hash out of range %v", h)
	}
}

func TestHashGLSL(t *testing.T) {
	src := HashGLSL("gl_VertexID")
	assert.Contains(t, src, "gl_VertexID*948737")
	assert.Contains(t, src, "seed*9284365")
}

func TestSpawn(t *testing.T) {
	assert.Equal(t, g.V3(0, 20, 0), Spawn(0.5, 0.5, 0.5))
	assert.Equal(t, g.V3(2.5, 22.5, -2.5), Spawn(0, 0, 1))

	for id := int32(0); id < 100; id++ {
		p := SpawnHashed(id, 3)
		assert.True(t, p.X >= -2.5 && p.X <= 2.5)
		assert.True(t, p.Y >= 17.5 && p.Y <= 22.5)
		assert.True(t, p.Z >= -2.5 && p.Z <= 2.5)
	}
}

func TestAdvanceFreeFall(t *testing.T) {
	physics := DefaultPhysics()
	physics.Spheres = nil

	p, v, fell := physics.Advance(g.V3(0, 0, 0), g.Vec3{})
	assert.False(t, fell)
	assert.InDelta(t, -9.81/60, v.Y, 1e-6)
	assert.InDelta(t, -9.81/3600, p.Y, 1e-6)

	_, _, fell = physics.Advance(g.V3(0, -29.999, 0), g.V3(0, -10, 0))
	assert.True(t, fell)
}

func TestAdvanceBounce(t *testing.T) {
	physics := Physics{
		Spheres:  []Sphere{{Center: g.V3(0, 0, 0), Radius: 2}},
		Timestep: 0,
		Bounce:   2,
		Floor:    -30,
	}

	// moving into the sphere reflects the velocity
	_, v, _ := physics.Advance(g.V3(0, 1, 0), g.V3(0, -3, 0))
	assert.InDelta(t, 3, v.Y, 1e-5)

	// moving out of the sphere is untouched
	_, v, _ = physics.Advance(g.V3(0, 1, 0), g.V3(0, 3, 0))
	assert.InDelta(t, 3, v.Y, 1e-5)

	// outside the sphere is untouched
	_, v, _ = physics.Advance(g.V3(0, 5, 0), g.V3(0, -3, 0))
	assert.InDelta(t, -3, v.Y, 1e-5)
}

func TestSystemStep(t *testing.T) {
	sys := NewSystem(1000, 1)
	require.Len(t, sys.Position, 1000)

	for step := 0; step < 600; step++ {
		sys.Step(int32(step))
	}

	for i, p := range sys.Position {
		assert.True(t, p.Y >= -30.5, "particle %d below the floor: %v", i, p)
	}

	data := sys.Interleaved(false)
	assert.Len(t, data, 6000)
	assert.Equal(t, sys.Position[1].X, data[6])

	data4 := sys.Interleaved(true)
	assert.Len(t, data4, 8000)
	assert.Equal(t, float32(1), data4[3])
	assert.Equal(t, float32(0), data4[7])
}

func TestGalaxy(t *testing.T) {
	points := Galaxy(10000, rand.New(rand.NewSource(1)))
	require.Len(t, points, 10000)

	var sum g.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	mean := sum.Mul(1.0 / float32(len(points)))
	assert.InDelta(t, 0, mean.Y, 0.2, "galaxy is flat on average")

	assert.Len(t, Flatten(points), 30000)
}

func TestGaussian(t *testing.T) {
	samples := Gaussian(20000, rand.New(rand.NewSource(1)),
		[4]float32{0, 0, 0, 1}, [4]float32{1, 0.2, 1, 0})
	require.Len(t, samples, 20000)

	var mean, spread [4]float64
	for _, s := range samples {
		for k := range s {
			mean[k] += float64(s[k])
			spread[k] += float64(s[k]) * float64(s[k])
		}
	}
	n := float64(len(samples))
	assert.InDelta(t, 0, mean[0]/n, 0.05)
	assert.InDelta(t, 1, spread[0]/n, 0.05)
	assert.InDelta(t, 0.04, spread[1]/n, 0.01)
	assert.Equal(t, float32(1), samples[0][3])
}

func TestStepSeed(t *testing.T) {
	assert.NotEqual(t, StepSeed(1, 10), StepSeed(2, 10))
	assert.NotEqual(t, StepSeed(1, 10), StepSeed(1, 11))
	assert.NotEqual(t, SpawnHashed(5, StepSeed(1, 10)), SpawnHashed(5, StepSeed(2, 10)))
}
