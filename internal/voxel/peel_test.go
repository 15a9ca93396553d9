package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunksAlongX(n int, size int) []*Chunk {
	chunks := make([]*Chunk, n)
	for i := range chunks {
		// centers at x = size/2 + i·size
		chunks[i] = &Chunk{Offset: mgl32.Vec3{float32(i * size), -float32(size) / 2, -float32(size) / 2}, Size: size}
	}
	return chunks
}

func TestSortByDistance(t *testing.T) {
	chunks := chunksAlongX(4, 2)
	eye := mgl32.Vec3{8, 0, 0}
	SortByDistance(chunks, eye)

	assert.Equal(t, float32(7), chunks[0].Center()[0])
	assert.Equal(t, float32(1), chunks[3].Center()[0])
}

func TestShells(t *testing.T) {
	// centers at 5, 15, 25, ..., 95
	chunks := chunksAlongX(10, 10)
	eye := mgl32.Vec3{}
	SortByDistance(chunks, eye)

	shells := Shells(chunks, eye, 10)
	require.Len(t, shells, 6)
	assert.Len(t, shells[0], 1, "limit 10")
	assert.Len(t, shells[1], 2, "limit 30")
	assert.Len(t, shells[2], 2, "limit 50")
	assert.Len(t, shells[5], 1, "limit 110")

	total := 0
	for _, shell := range shells {
		total += len(shell)
	}
	assert.Equal(t, 10, total)
}

func TestShellsSkipEmpty(t *testing.T) {
	far := []*Chunk{{Offset: mgl32.Vec3{95, -5, -5}, Size: 10}}
	shells := Shells(far, mgl32.Vec3{}, 10)
	require.Len(t, shells, 1)
	assert.Len(t, shells[0], 1)
}

func TestVisible(t *testing.T) {
	vp := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 200)
	eye := mgl32.Vec3{}

	assert.True(t, Visible(mgl32.Vec3{0, 0, -100}, eye, vp, 32), "in front")
	assert.True(t, Visible(mgl32.Vec3{0, 0, 10}, eye, vp, 32), "close behind")
	assert.False(t, Visible(mgl32.Vec3{0, 0, 100}, eye, vp, 32), "far behind")
	assert.False(t, Visible(mgl32.Vec3{1000, 0, -40}, eye, vp, 32), "far to the side")
}
