// Package voxel extracts surface meshes from a density function sampled
// on a grid of cubic chunks.
package voxel

import (
	"runtime"

	"github.com/egonelbre/async"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/mesh"
	"github.com/adinfit/glexamples/internal/noise"
)

// World returns the density at a voxel, values below zero are solid.
type World func(p mgl32.Vec3) float32

// Cave is the perlin cave system used by the occlusion query example.
func Cave(perlin *noise.Perlin) World {
	return func(p mgl32.Vec3) float32 {
		q := p.Add(mgl32.Vec3{100, 100, 100}).Mul(0.1)
		return perlin.At3(q[0], q[1], q[2])
	}
}

func (world World) Solid(p mgl32.Vec3) bool { return world(p) < 0 }

// Chunk is a cube of Size³ voxels starting at Offset.
type Chunk struct {
	Offset mgl32.Vec3
	Size   int

	// Surface holds a quad of position and normal for every solid voxel
	// face that borders empty space.
	Surface mesh.Data
}

func (chunk *Chunk) QuadCount() int { return len(chunk.Surface.Indices) / 6 }

func (chunk *Chunk) Center() mgl32.Vec3 {
	half := float32(chunk.Size) / 2
	return chunk.Offset.Add(mgl32.Vec3{half, half, half})
}

// Bounds returns the box enclosing every voxel of the chunk.
func (chunk *Chunk) Bounds() mesh.Data {
	size := float32(chunk.Size)
	min := chunk.Offset.Sub(mgl32.Vec3{0.5, 0.5, 0.5})
	return mesh.Box(min, min.Add(mgl32.Vec3{size, size, size}))
}

// Extract builds the surface of the chunk at offset.
func Extract(world World, offset mgl32.Vec3, size int) *Chunk {
	chunk := &Chunk{
		Offset:  offset,
		Size:    size,
		Surface: mesh.Data{Stride: 6},
	}

	surface := &chunk.Surface
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				pos := offset.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
				if !world.Solid(pos) {
					continue
				}

				for f := 0; f < mesh.FaceCount; f++ {
					corners, normal := mesh.Face(f)
					if world.Solid(pos.Add(normal)) {
						continue
					}

					first := uint32(surface.VertexCount())
					for _, corner := range corners {
						v := pos.Add(corner.Mul(0.5))
						surface.Vertex(v[0], v[1], v[2], normal[0], normal[1], normal[2])
					}
					surface.Quad(first)
				}
			}
		}
	}

	return chunk
}

// Grid extracts the chunks covering [-extent, extent)³ in chunk units.
// Chunks are extracted in parallel.
func Grid(world World, extent, size int) []*Chunk {
	side := 2 * extent
	chunks := make([]*Chunk, side*side*side)

	async.BlockIter(len(chunks), runtime.GOMAXPROCS(0), func(start, until int) {
		for index := start; index < until; index++ {
			i := index/(side*side) - extent
			j := (index/side)%side - extent
			k := index%side - extent

			offset := mgl32.Vec3{float32(i), float32(j), float32(k)}.Mul(float32(size))
			chunks[index] = Extract(world, offset, size)
		}
	})

	return chunks
}
