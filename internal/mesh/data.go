// Package mesh contains the small fixed meshes shared by the examples
// and uploads them into vertex array objects.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Data is interleaved float vertex data with optional uint32 indices.
type Data struct {
	// Stride is the number of floats per vertex.
	Stride   int
	Vertices []float32
	Indices  []uint32
}

func (data *Data) VertexCount() int {
	if data.Stride == 0 {
		return 0
	}
	return len(data.Vertices) / data.Stride
}

// Vertex appends a vertex and returns its index.
func (data *Data) Vertex(values ...float32) uint32 {
	index := uint32(data.VertexCount())
	data.Vertices = append(data.Vertices, values...)
	return index
}

// Quad adds two triangles over four consecutive vertices starting at first.
func (data *Data) Quad(first uint32) {
	data.Indices = append(data.Indices,
		first+0, first+1, first+2,
		first+2, first+1, first+3,
	)
}

// faces lists the corners of each face of the unit cube in the order
// expected by Quad.
var faces = [6][4]mgl32.Vec3{
	{{1, 1, 1}, {-1, 1, 1}, {1, -1, 1}, {-1, -1, 1}},
	{{1, 1, 1}, {1, -1, 1}, {1, 1, -1}, {1, -1, -1}},
	{{1, 1, 1}, {1, 1, -1}, {-1, 1, 1}, {-1, 1, -1}},
	{{1, 1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, -1}},
	{{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1}},
	{{1, -1, 1}, {-1, -1, 1}, {1, -1, -1}, {-1, -1, -1}},
}

var faceNormals = [6]mgl32.Vec3{
	{0, 0, 1},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, -1},
	{-1, 0, 0},
	{0, -1, 0},
}

// FaceCount is the number of faces of a cube.
const FaceCount = 6

// Face returns the corners of face f of the cube spanning [-1, 1] and its
// outward normal.
func Face(f int) (corners [4]mgl32.Vec3, normal mgl32.Vec3) {
	return faces[f], faceNormals[f]
}

var faceColors = [6]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{0, 1, 1},
	{1, 0, 1},
}

// Cube returns a cube spanning [-1, 1] with a solid color per face,
// 24 vertices of position and color and 36 indices.
func Cube() Data {
	data := Data{Stride: 6}
	for f, corners := range faces {
		color := faceColors[f]
		first := uint32(data.VertexCount())
		for _, p := range corners {
			data.Vertex(p[0], p[1], p[2], color[0], color[1], color[2])
		}
		data.Quad(first)
	}
	return data
}

// Box returns position only faces of the axis aligned box from min to max.
func Box(min, max mgl32.Vec3) Data {
	data := Data{Stride: 3}
	for _, corners := range faces {
		first := uint32(data.VertexCount())
		for _, p := range corners {
			var v mgl32.Vec3
			for i := range v {
				if p[i] > 0 {
					v[i] = max[i]
				} else {
					v[i] = min[i]
				}
			}
			data.Vertex(v[0], v[1], v[2])
		}
		data.Quad(first)
	}
	return data
}

// Quad returns a fullscreen quad with positions and texture coordinates.
func Quad() Data {
	data := Data{Stride: 5}
	data.Vertex(1, 1, 0, 1, 1)
	data.Vertex(-1, 1, 0, 0, 1)
	data.Vertex(1, -1, 0, 1, 0)
	data.Vertex(-1, -1, 0, 0, 0)
	data.Quad(0)
	return data
}

// Triangles returns two colored triangles covering the screen, without
// indices.
func Triangles() Data {
	data := Data{Stride: 6}
	data.Vertex(1, 1, 0, 1, 0, 0)
	data.Vertex(-1, 1, 0, 0, 1, 0)
	data.Vertex(1, -1, 0, 0, 0, 1)
	data.Vertex(1, -1, 0, 0, 0, 1)
	data.Vertex(-1, 1, 0, 0, 1, 0)
	data.Vertex(-1, -1, 0, 1, 0, 0)
	return data
}

// Corners returns the eight points (±d, ±d, ±d), with x varying slowest.
func Corners(d float32) [8]mgl32.Vec3 {
	var corners [8]mgl32.Vec3
	for i := range corners {
		corners[i] = mgl32.Vec3{sign(i&4 == 0) * d, sign(i&2 == 0) * d, sign(i&1 == 0) * d}
	}
	return corners
}

func sign(positive bool) float32 {
	if positive {
		return 1
	}
	return -1
}
