// Package terrain generates the displacement map of the tessellated
// terrain example.
package terrain

import (
	"runtime"

	"github.com/egonelbre/async"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/noise"
)

// Height is the amplitude of the large scale hills.
const Height = 0.15

// Layers describes the thin rock layers displaced along Dir and
// stacked along Normal.
type Layers struct {
	Normal    mgl32.Vec3
	Dir       mgl32.Vec3
	Amplitude float32
	Frequency float32
}

func DefaultLayers() Layers {
	normal := mgl32.Vec3{0.1, 0.3, 1}.Normalize()
	up := mgl32.Vec3{0, 0, 1}
	dir := up.Sub(normal.Mul(normal.Dot(up))).Normalize()
	return Layers{
		Normal:    normal,
		Dir:       dir,
		Amplitude: 0.04,
		Frequency: 30,
	}
}

// Displace returns the displaced position of the surface point at pos,
// where pos is in [0, 1]².
func Displace(perlin *noise.Perlin, layers Layers, pos mgl32.Vec2) mgl32.Vec3 {
	scaled := pos.Mul(5)
	base := mgl32.Vec3{pos[0], pos[1], Height * perlin.At2(scaled[0], scaled[1])}
	layer := perlin.At2(layers.Frequency*layers.Normal.Dot(base), 0.5)
	return base.Add(layers.Dir.Mul(layers.Amplitude * layer))
}

// Displacement builds a width×height RGB float map, rows are generated
// in parallel.
func Displacement(perlin *noise.Perlin, width, height int) []float32 {
	layers := DefaultLayers()
	data := make([]float32, 3*width*height)

	async.BlockIter(height, runtime.GOMAXPROCS(0), func(start, until int) {
		for y := start; y < until; y++ {
			for x := 0; x < width; x++ {
				pos := mgl32.Vec2{float32(x) / float32(width), float32(y) / float32(height)}
				v := Displace(perlin, layers, pos)
				copy(data[3*(y*width+x):], v[:])
			}
		}
	})

	return data
}
