package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adinfit/glexamples/internal/noise"
)

func solidAt(points ...mgl32.Vec3) World {
	return func(p mgl32.Vec3) float32 {
		for _, q := range points {
			if p == q {
				return -1
			}
		}
		return 1
	}
}

func TestExtractSingleVoxel(t *testing.T) {
	chunk := Extract(solidAt(mgl32.Vec3{1, 1, 1}), mgl32.Vec3{}, 4)

	assert.Equal(t, 6, chunk.QuadCount())
	assert.Equal(t, 24, chunk.Surface.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, chunk.Surface.Indices[:6])

	for v := 0; v < chunk.Surface.VertexCount(); v++ {
		vertex := chunk.Surface.Vertices[v*6 : v*6+6]
		for axis := 0; axis < 3; axis++ {
			assert.True(t, vertex[axis] == 0.5 || vertex[axis] == 1.5)
		}
	}
}

func TestExtractSharedFace(t *testing.T) {
	chunk := Extract(solidAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}), mgl32.Vec3{}, 4)
	assert.Equal(t, 10, chunk.QuadCount())
}

func TestExtractNeighbourOutsideChunk(t *testing.T) {
	world := solidAt(mgl32.Vec3{3, 0, 0}, mgl32.Vec3{4, 0, 0})
	chunk := Extract(world, mgl32.Vec3{}, 4)
	assert.Equal(t, 5, chunk.QuadCount(), "face towards the next chunk is hidden")
}

func TestExtractFull(t *testing.T) {
	full := func(p mgl32.Vec3) float32 { return -1 }
	chunk := Extract(full, mgl32.Vec3{}, 4)
	assert.Equal(t, 0, chunk.QuadCount())
}

func TestChunkBounds(t *testing.T) {
	chunk := &Chunk{Offset: mgl32.Vec3{32, 0, -32}, Size: 32}
	assert.Equal(t, mgl32.Vec3{48, 16, -16}, chunk.Center())

	bounds := chunk.Bounds()
	require.Equal(t, 24, bounds.VertexCount())
	assert.Equal(t, []float32{63.5, 31.5, -0.5}, bounds.Vertices[:3])
}

func TestGrid(t *testing.T) {
	world := solidAt(mgl32.Vec3{-2, -2, -2}, mgl32.Vec3{1, 1, 1})
	chunks := Grid(world, 1, 2)
	require.Len(t, chunks, 8)

	quads := 0
	for _, chunk := range chunks {
		require.NotNil(t, chunk)
		quads += chunk.QuadCount()
	}
	assert.Equal(t, 12, quads)

	assert.Equal(t, mgl32.Vec3{-2, -2, -2}, chunks[0].Offset)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, chunks[7].Offset)
}

func TestCave(t *testing.T) {
	world := Cave(noise.New(1))
	solid, empty := 0, 0
	for x := 0; x < 32; x++ {
		for z := 0; z < 32; z++ {
			if world.Solid(mgl32.Vec3{float32(x), 3, float32(z)}) {
				solid++
			} else {
				empty++
			}
		}
	}
	assert.NotZero(t, solid)
	assert.NotZero(t, empty)
}
