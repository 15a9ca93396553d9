// Command computenbody integrates a gravitational n-body system in compute
// shaders. Space switches between a naive force kernel and one that tiles
// the positions through shared memory.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	gl43 "github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/adinfit/glexamples/internal/billboard"
	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/frame"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/particles"
	"github.com/adinfit/glexamples/internal/window"
)

const (
	groupSize = 256
	timestep  = 1.0 / 60.0
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	bodies := 8 * 1024

	defaults := config.Default("compute n-body")
	defaults.GLMajor, defaults.GLMinor = 4, 3

	cfg, err := config.Load(defaults, os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&bodies, "bodies", bodies, "number of bodies, a multiple of 256")
	})
	if err != nil {
		return err
	}
	if bodies <= 0 || bodies%groupSize != 0 {
		return fmt.Errorf("invalid body count %d, must be a positive multiple of %d", bodies, groupSize)
	}

	stop, err := cfg.StartProfile()
	if err != nil {
		return err
	}
	defer stop()

	win, err := window.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	if err := gl43.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL 4.3: %w", err)
	}

	style := billboard.Particles()
	style.Version = "430 core"
	style.Intensity = 1
	style.Locations = true
	draw, err := billboard.Program(style)
	if err != nil {
		return err
	}
	defer draw.Delete()

	naive, err := glutil.NewProgram(glutil.Compute(accelerationShader))
	if err != nil {
		return err
	}
	defer naive.Delete()

	tiled, err := glutil.NewProgram(glutil.Compute(tiledAccelerationShader))
	if err != nil {
		return err
	}
	defer tiled.Delete()

	integrate, err := glutil.NewProgram(glutil.Compute(integrateShader))
	if err != nil {
		return err
	}
	defer integrate.Delete()

	for _, program := range []*glutil.Program{naive, tiled, integrate} {
		program.Use()
		gl.Uniform1f(0, timestep)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	positions := particles.Gaussian(bodies, rng, [4]float32{0, 0, 0, 1}, [4]float32{1, 0.2, 1, 0})
	velocities := make([][4]float32, bodies)

	vao := glutil.NewVertexArray()
	defer glutil.DeleteVertexArrays(vao)

	positionBuffer := glutil.NewBuffer(gl.ARRAY_BUFFER, 4*4*bodies, gl.Ptr(positions), gl.STATIC_DRAW)
	glutil.Attrib(0, 4, 4*4, 0)
	velocityBuffer := glutil.NewBuffer(gl43.SHADER_STORAGE_BUFFER, 4*4*bodies, gl.Ptr(velocities), gl.STATIC_DRAW)
	defer glutil.DeleteBuffers(positionBuffer, velocityBuffer)

	gl.BindBufferBase(gl43.SHADER_STORAGE_BUFFER, 0, positionBuffer)
	gl.BindBufferBase(gl43.SHADER_STORAGE_BUFFER, 1, velocityBuffer)

	elapsed := glutil.NewElapsed()
	defer elapsed.Delete()

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	useTiled := frame.Toggle{}
	groups := uint32(bodies / groupSize)

	for win.Running() {
		win.NextFrame()

		if useTiled.Update(win.Down(glfw.KeySpace)) {
			log.Println("tiled", useTiled.On)
		}

		elapsed.Begin()
		if useTiled.On {
			tiled.Use()
		} else {
			naive.Use()
		}
		gl43.DispatchCompute(groups, 1, 1)
		elapsed.End()

		gl43.MemoryBarrier(gl43.SHADER_STORAGE_BARRIER_BIT)

		integrate.Use()
		gl43.DispatchCompute(groups, 1, 1)

		gl43.MemoryBarrier(gl43.VERTEX_ATTRIB_ARRAY_BARRIER_BIT | gl43.SHADER_STORAGE_BARRIER_BIT)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		view := camera.Orbit(30, 30, 0)
		projection := camera.Perspective(90, win.Frame.Aspect(), 0.1, 100)

		draw.Use()
		gl.UniformMatrix4fv(0, 1, false, &view[0])
		gl.UniformMatrix4fv(1, 1, false, &projection[0])

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.POINTS, 0, int32(bodies))

		if win.Frame.Count%30 == 0 {
			kernel := "naive"
			if useTiled.On {
				kernel = "tiled"
			}
			took := elapsed.Result()
			win.SetTitle(fmt.Sprintf("%s: %s %v", cfg.Title, kernel, took))
			if cfg.Stats {
				log.Printf("%s acceleration %v", kernel, took)
			}
		}

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}

var accelerationShader = `
#version 430 core
layout(local_size_x = 256) in;

layout(location = 0) uniform float dt;
layout(std430, binding = 0) buffer pblock { vec4 positions[]; };
layout(std430, binding = 1) buffer vblock { vec4 velocities[]; };

void main() {
	int N = int(gl_NumWorkGroups.x * gl_WorkGroupSize.x);
	int index = int(gl_GlobalInvocationID);

	vec3 position = positions[index].xyz;
	vec3 velocity = velocities[index].xyz;
	vec3 acceleration = vec3(0, 0, 0);
	for (int i = 0; i < N; ++i) {
		vec3 diff = position - positions[i].xyz;
		float invdist = 1.0 / (length(diff) + 0.001);
		acceleration -= diff * 0.1 * invdist * invdist * invdist;
	}
	velocities[index] = vec4(velocity + dt * acceleration, 0);
}
`

var tiledAccelerationShader = `
#version 430 core
layout(local_size_x = 256) in;

layout(location = 0) uniform float dt;
layout(std430, binding = 0) buffer pblock { vec4 positions[]; };
layout(std430, binding = 1) buffer vblock { vec4 velocities[]; };

shared vec4 tmp[gl_WorkGroupSize.x];

void main() {
	int N = int(gl_NumWorkGroups.x * gl_WorkGroupSize.x);
	int index = int(gl_GlobalInvocationID);

	vec3 position = positions[index].xyz;
	vec3 velocity = velocities[index].xyz;
	vec3 acceleration = vec3(0, 0, 0);
	for (int tile = 0; tile < N; tile += int(gl_WorkGroupSize.x)) {
		tmp[gl_LocalInvocationIndex] = positions[tile + int(gl_LocalInvocationIndex)];
		groupMemoryBarrier();
		barrier();
		for (int i = 0; i < gl_WorkGroupSize.x; ++i) {
			vec3 diff = position - tmp[i].xyz;
			float invdist = 1.0 / (length(diff) + 0.001);
			acceleration -= diff * 0.1 * invdist * invdist * invdist;
		}
		groupMemoryBarrier();
		barrier();
	}
	velocities[index] = vec4(velocity + dt * acceleration, 0);
}
`

var integrateShader = `
#version 430 core
layout(local_size_x = 256) in;

layout(location = 0) uniform float dt;
layout(std430, binding = 0) buffer pblock { vec4 positions[]; };
layout(std430, binding = 1) buffer vblock { vec4 velocities[]; };

void main() {
	int index = int(gl_GlobalInvocationID);
	vec4 position = positions[index];
	position.xyz += dt * velocities[index].xyz;
	positions[index] = position;
}
`
