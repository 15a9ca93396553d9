package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glexamples/internal/noise"
)

func TestDefaultLayers(t *testing.T) {
	layers := DefaultLayers()
	assert.InDelta(t, 1, layers.Normal.Len(), 1e-6)
	assert.InDelta(t, 1, layers.Dir.Len(), 1e-6)
	assert.InDelta(t, 0, layers.Dir.Dot(layers.Normal), 1e-6, "dir lies in the layer plane")
	assert.Greater(t, layers.Dir[2], float32(0))
}

func TestDisplaceOrigin(t *testing.T) {
	perlin := noise.New(1)
	layers := DefaultLayers()

	// the hill lookup is on a lattice point, only the layers displace
	v := Displace(perlin, layers, mgl32.Vec2{0, 0})
	assert.InDelta(t, 0, v.Len(), 0.04)
}

func TestDisplacement(t *testing.T) {
	perlin := noise.New(1)
	data := Displacement(perlin, 16, 8)
	require.Len(t, data, 3*16*8)

	layers := DefaultLayers()
	x, y := 5, 3
	expected := Displace(perlin, layers, mgl32.Vec2{5.0 / 16, 3.0 / 8})
	at := 3 * (y*16 + x)
	assert.Equal(t, expected[:], data[at:at+3])

	for i := 0; i < len(data); i += 3 {
		assert.InDelta(t, 0, data[i+2], Height*1.5+0.04)
	}
}
