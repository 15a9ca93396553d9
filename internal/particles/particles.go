// Package particles simulates particles falling through a set of spheres
// and generates the initial distributions of the point based examples.
package particles

import (
	"runtime"

	"github.com/adinfinit/g"
	"github.com/egonelbre/async"
)

type Sphere struct {
	Center g.Vec3
	Radius float32
}

// Physics holds the parameters of the particle simulation.
type Physics struct {
	Spheres  []Sphere
	Gravity  g.Vec3
	Timestep float32
	// Bounce scales the reflected velocity, 1 is inelastic and 2 elastic.
	Bounce float32
	// Floor is the height below which particles respawn.
	Floor float32
}

func DefaultPhysics() Physics {
	return Physics{
		Spheres: []Sphere{
			{Center: g.V3(0, 12, 1), Radius: 3},
			{Center: g.V3(-3, 0, 0), Radius: 7},
			{Center: g.V3(5, -10, 0), Radius: 12},
		},
		Gravity:  g.V3(0, -9.81, 0),
		Timestep: 1.0 / 60.0,
		Bounce:   1.2,
		Floor:    -30,
	}
}

// Advance integrates a single particle by one timestep and reports
// whether it fell below the floor.
func (physics *Physics) Advance(p, v g.Vec3) (g.Vec3, g.Vec3, bool) {
	for _, sphere := range physics.Spheres {
		diff := p.Sub(sphere.Center)
		dist := diff.Len()
		vdot := dot(diff, v)
		if dist < sphere.Radius && vdot < 0 {
			v = v.Sub(diff.Mul(physics.Bounce * vdot / (dist * dist)))
		}
	}

	v = v.Add(physics.Gravity.Mul(physics.Timestep))
	p = p.Add(v.Mul(physics.Timestep))

	return p, v, p.Y < physics.Floor
}

func dot(a, b g.Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Spawn maps three uniform samples to the spawn cube above the spheres.
func Spawn(u1, u2, u3 float32) g.Vec3 {
	return g.V3(0, 20, 0).Add(g.V3(0.5-u1, 0.5-u2, 0.5-u3).Mul(5))
}

// SpawnHashed picks the spawn position of particle id for the given seed,
// matching the respawn in the GPU simulations.
func SpawnHashed(id, seed int32) g.Vec3 {
	return Spawn(
		Hash(3*id+0, id, seed),
		Hash(3*id+1, id, seed),
		Hash(3*id+2, id, seed),
	)
}

// StepSeed derives the respawn seed of a simulation step from the run
// seed, so that different runs respawn differently.
func StepSeed(seed int64, step int) int32 {
	return int32(seed)*7919 + int32(step)
}

// System is the CPU side particle simulation.
type System struct {
	Physics
	Position []g.Vec3
	Velocity []g.Vec3
}

// NewSystem spawns n resting particles.
func NewSystem(n int, seed int32) *System {
	sys := &System{
		Physics:  DefaultPhysics(),
		Position: make([]g.Vec3, n),
		Velocity: make([]g.Vec3, n),
	}
	for i := range sys.Position {
		sys.Position[i] = SpawnHashed(int32(i), seed)
	}
	return sys
}

// Step advances every particle by one timestep in parallel, particles that
// fall out respawn at a position derived from seed.
func (sys *System) Step(seed int32) {
	async.BlockIter(len(sys.Position), runtime.GOMAXPROCS(0), func(start, until int) {
		for i := start; i < until; i++ {
			p, v, fell := sys.Advance(sys.Position[i], sys.Velocity[i])
			if fell {
				p, v = SpawnHashed(int32(i), seed), g.Vec3{}
			}
			sys.Position[i], sys.Velocity[i] = p, v
		}
	})
}

// Interleaved returns position and velocity per particle. With vec4 set
// both are padded to four components, positions with w = 1.
func (sys *System) Interleaved(vec4 bool) []float32 {
	stride := 6
	if vec4 {
		stride = 8
	}

	data := make([]float32, 0, stride*len(sys.Position))
	for i, p := range sys.Position {
		v := sys.Velocity[i]
		if vec4 {
			data = append(data, p.X, p.Y, p.Z, 1, v.X, v.Y, v.Z, 0)
		} else {
			data = append(data, p.X, p.Y, p.Z, v.X, v.Y, v.Z)
		}
	}
	return data
}
