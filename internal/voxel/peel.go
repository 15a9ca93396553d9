package voxel

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SortByDistance orders chunks by the distance of their center to eye.
func SortByDistance(chunks []*Chunk, eye mgl32.Vec3) {
	sort.SliceStable(chunks, func(i, k int) bool {
		return chunks[i].Center().Sub(eye).Len() < chunks[k].Center().Sub(eye).Len()
	})
}

// Shells splits chunks, already sorted by distance to eye, into shells.
// The first shell contains chunks closer than size, every later shell
// extends the limit by 2·size. Empty shells are omitted.
func Shells(chunks []*Chunk, eye mgl32.Vec3, size float32) [][]*Chunk {
	var shells [][]*Chunk

	limit := size
	for i := 0; i < len(chunks); {
		j := i
		for j < len(chunks) && chunks[j].Center().Sub(eye).Len() < limit {
			j++
		}
		if j > i {
			shells = append(shells, chunks[i:j])
		}
		i = j
		limit += 2 * size
	}

	return shells
}

// Visible is a coarse frustum test. Chunks near the eye are always
// visible, others are culled when their center projects outside the clip
// volume enlarged by size.
func Visible(center, eye mgl32.Vec3, viewProjection mgl32.Mat4, size float32) bool {
	if center.Sub(eye).Len() <= size {
		return true
	}
	p := viewProjection.Mul4x1(center.Vec4(1))
	return math32.Max(math32.Abs(p[0]), math32.Abs(p[1])) <= p[3]+size
}
