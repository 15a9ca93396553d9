// Package fdtd prepares the grid of the finite difference time domain
// wave simulation. Each cell holds (Hx, Hy, Ez, σ).
package fdtd

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/adinfit/glexamples/internal/noise"
)

const (
	// Substeps is the number of H and E updates per frame.
	Substeps = 5
	// Speedup scales real time into simulation time.
	Speedup = 50
	// Period is the length of the repeating excitation sequence in seconds.
	Period = 10
)

// Conductivity returns the loss σ at cell (i, j), patches of lossy
// material where the noise is positive.
func Conductivity(perlin *noise.Perlin, i, j int) float32 {
	n := perlin.At2(0.008*float32(i), 0.008*float32(j+70))
	return 20 * math32.Min(math32.Max(n, 0), 0.1)
}

// Grid returns the initial RGBA float grid with zero fields.
func Grid(perlin *noise.Perlin, width, height int) []float32 {
	data := make([]float32, 4*width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			data[4*(j*width+i)+3] = Conductivity(perlin, i, j)
		}
	}
	return data
}

// Excitation of the source at the grid center.
const (
	SourceAmplitude = 30
	SourceFrequency = 15
	SourcePeak      = 2
	SourceSharpness = 10
)

// Source is the excitation injected at the grid center at time t, a
// sine pulse peaking at t = SourcePeak.
func Source(t float32) float32 {
	d := t - SourcePeak
	return SourceAmplitude * math32.Sin(SourceFrequency*t) * math32.Exp(-SourceSharpness*d*d)
}

// SourceGLSL is the GLSL version of Source, declaring float source(float t).
func SourceGLSL() string {
	return fmt.Sprintf(`
float source(float t) {
	float d = t - %d.0;
	return %d.0 * sin(%d.0 * t) * exp(-%d.0 * d * d);
}
`, SourcePeak, SourceAmplitude, SourceFrequency, SourceSharpness)
}

// Clock tracks the simulation time of the repeating sequence.
type Clock struct {
	T float32
}

// Advance moves the clock by one frame of dt seconds.
func (clock *Clock) Advance(dt float32) {
	clock.T += dt
	if clock.T > Period {
		clock.T -= Period
	}
}

// Substep returns the simulation timestep of one substep.
func Substep(dt float32) float32 { return Speedup * dt / Substeps }

// SubstepTime returns the time passed to the source on substep i.
func (clock *Clock) SubstepTime(dt float32, i int) float32 {
	return clock.T + float32(i)*dt/Substeps
}
