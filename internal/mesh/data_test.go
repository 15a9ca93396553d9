package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube(t *testing.T) {
	cube := Cube()
	require.Equal(t, 6, cube.Stride)
	assert.Equal(t, 24, cube.VertexCount())
	assert.Len(t, cube.Indices, 36)

	for _, index := range cube.Indices {
		assert.Less(t, index, uint32(24))
	}

	// each face has a single color
	for f := 0; f < 6; f++ {
		first := cube.Vertices[f*4*6+3 : f*4*6+6]
		for v := 1; v < 4; v++ {
			at := (f*4 + v) * 6
			assert.Equal(t, first, cube.Vertices[at+3:at+6])
		}
	}

	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, cube.Indices[:6])
	assert.Equal(t, []uint32{20, 21, 22, 22, 21, 23}, cube.Indices[30:])
}

func TestBox(t *testing.T) {
	box := Box(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{31.5, 31.5, 31.5})
	assert.Equal(t, 3, box.Stride)
	assert.Equal(t, 24, box.VertexCount())
	assert.Len(t, box.Indices, 36)

	for _, v := range box.Vertices {
		assert.True(t, v == -0.5 || v == 31.5, "unexpected coordinate %v", v)
	}
	assert.Equal(t, []float32{31.5, 31.5, 31.5}, box.Vertices[:3])
}

func TestQuad(t *testing.T) {
	quad := Quad()
	assert.Equal(t, 4, quad.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, quad.Indices)
	assert.Equal(t, []float32{-1, -1, 0, 0, 0}, quad.Vertices[15:20])
}

func TestTriangles(t *testing.T) {
	tri := Triangles()
	assert.Equal(t, 6, tri.VertexCount())
	assert.Empty(t, tri.Indices)
}

func TestVertexCountEmpty(t *testing.T) {
	var data Data
	assert.Equal(t, 0, data.VertexCount())
}

func TestFaceNormals(t *testing.T) {
	for f := 0; f < FaceCount; f++ {
		corners, normal := Face(f)
		for _, c := range corners {
			assert.Equal(t, float32(1), c.Dot(normal), "face %d corner %v", f, c)
		}
	}
}

func TestCorners(t *testing.T) {
	corners := Corners(2)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, corners[0])
	assert.Equal(t, mgl32.Vec3{2, 2, -2}, corners[1])
	assert.Equal(t, mgl32.Vec3{2, -2, 2}, corners[2])
	assert.Equal(t, mgl32.Vec3{-2, 2, 2}, corners[4])
	assert.Equal(t, mgl32.Vec3{-2, -2, -2}, corners[7])
}
