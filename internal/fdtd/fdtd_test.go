package fdtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glexamples/internal/noise"
)

func TestGrid(t *testing.T) {
	perlin := noise.New(1)
	data := Grid(perlin, 64, 32)
	require.Len(t, data, 4*64*32)

	for cell := 0; cell < 64*32; cell++ {
		assert.Zero(t, data[4*cell+0])
		assert.Zero(t, data[4*cell+1])
		assert.Zero(t, data[4*cell+2])

		sigma := data[4*cell+3]
		assert.True(t, sigma >= 0 && sigma <= 2, "sigma out of range %v", sigma)
	}

	assert.Equal(t, Conductivity(perlin, 10, 20), data[4*(20*64+10)+3])
}

func TestSource(t *testing.T) {
	assert.InDelta(t, 0, Source(0), 1e-3)
	assert.InDelta(t, 0, Source(10), 1e-6)
	// envelope peaks at t = 2 where sin(30) is negative
	assert.InDelta(t, -30*0.9880316, Source(2), 1e-3)
}

func TestSourceGLSL(t *testing.T) {
	src := SourceGLSL()
	assert.Contains(t, src, "float source(float t)")
	assert.Contains(t, src, "float d = t - 2.0;")
	assert.Contains(t, src, "return 30.0 * sin(15.0 * t) * exp(-10.0 * d * d);")
}

func TestClock(t *testing.T) {
	var clock Clock
	for i := 0; i < 601; i++ {
		clock.Advance(1.0 / 60)
	}
	assert.InDelta(t, 1.0/60, clock.T, 1e-3)

	assert.InDelta(t, 1.0/6, Substep(1.0/60), 1e-6)
	assert.InDelta(t, clock.T+2.0/300, clock.SubstepTime(1.0/60, 2), 1e-6)
}
