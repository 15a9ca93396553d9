// Command computeparticles runs the falling particle simulation in a
// compute shader that updates the vertex buffer in place through an image
// buffer view.
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
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/billboard"
	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/particles"
	"github.com/adinfit/glexamples/internal/window"
)

const groupSize = 256

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	count := 128 * 1024

	defaults := config.Default("compute particles")
	defaults.GLMajor, defaults.GLMinor = 4, 3

	cfg, err := config.Load(defaults, os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&count, "particles", count, "number of particles")
	})
	if err != nil {
		return err
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
	draw, err := billboard.Program(style)
	if err != nil {
		return err
	}
	defer draw.Delete()

	compute, err := glutil.NewProgram(
		glutil.Compute(computeShader + particles.HashGLSL("int(gl_GlobalInvocationID.x)") + computeMain),
	)
	if err != nil {
		return err
	}
	defer compute.Delete()

	sys := particles.NewSystem(count, int32(cfg.Seed))
	data := sys.Interleaved(true)

	vao := glutil.NewVertexArray()
	defer glutil.DeleteVertexArrays(vao)
	vbo := glutil.NewBuffer(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
	defer glutil.DeleteBuffers(vbo)
	glutil.Attrib(0, 4, 8*4, 0)
	glutil.Attrib(1, 4, 8*4, 4*4)

	var bufferTexture uint32
	gl.GenTextures(1, &bufferTexture)
	defer gl.DeleteTextures(1, &bufferTexture)
	gl.BindTexture(gl.TEXTURE_BUFFER, bufferTexture)
	gl.TexBuffer(gl.TEXTURE_BUFFER, gl.RGBA32F, vbo)

	physics := sys.Physics
	compute.Use()
	for i, sphere := range physics.Spheres {
		compute.SetVec3(fmt.Sprintf("center[%d]", i), mgl32.Vec3{sphere.Center.X, sphere.Center.Y, sphere.Center.Z})
		compute.SetFloat(fmt.Sprintf("radius[%d]", i), sphere.Radius)
	}
	compute.SetVec3("g", mgl32.Vec3{physics.Gravity.X, physics.Gravity.Y, physics.Gravity.Z})
	compute.SetFloat("dt", physics.Timestep)
	compute.SetFloat("bounce", physics.Bounce)
	compute.SetFloat("floorY", physics.Floor)
	compute.SetInt("count", int32(count))
	compute.SetInt("particles", 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	rng := rand.New(rand.NewSource(cfg.Seed))
	groups := uint32((count + groupSize - 1) / groupSize)

	for win.Running() {
		win.NextFrame()

		compute.Use()
		compute.SetInt("seed", rng.Int31())
		gl43.BindImageTexture(0, bufferTexture, 0, false, 0, gl43.READ_WRITE, gl43.RGBA32F)
		gl43.DispatchCompute(groups, 1, 1)

		gl43.MemoryBarrier(gl43.VERTEX_ATTRIB_ARRAY_BARRIER_BIT)

		gl.Clear(gl.COLOR_BUFFER_BIT)

		t := float32(win.Frame.Time)
		draw.Use()
		draw.SetMat4("View", camera.Orbit(30, 30, -22.5*t))
		draw.SetMat4("Projection", camera.Perspective(90, win.Frame.Aspect(), 0.1, 100))

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.POINTS, 0, int32(count))

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}

var computeShader = `
#version 430 core
layout(local_size_x = 256) in;

uniform vec3 center[3];
uniform float radius[3];
uniform vec3 g;
uniform float dt;
uniform float bounce;
uniform float floorY;
uniform int count;
uniform int seed;

uniform layout(rgba32f) imageBuffer particles;
`

var computeMain = `
void main() {
	int index = int(gl_GlobalInvocationID.x);
	if (index >= count)
		return;

	vec3 inposition = imageLoad(particles, 2 * index).xyz;
	vec3 invelocity = imageLoad(particles, 2 * index + 1).xyz;

	vec3 outvelocity = invelocity;
	for (int j = 0; j < 3; ++j) {
		vec3 diff = inposition - center[j];
		float dist = length(diff);
		float vdot = dot(diff, invelocity);
		if (dist < radius[j] && vdot < 0.0)
			outvelocity -= bounce * diff * vdot / (dist * dist);
	}
	outvelocity += dt * g;
	vec3 outposition = inposition + dt * outvelocity;
	if (outposition.y < floorY) {
		outvelocity = vec3(0, 0, 0);
		outposition = 0.5 - vec3(hash(3 * index + 0), hash(3 * index + 1), hash(3 * index + 2));
		outposition = vec3(0, 20, 0) + 5.0 * outposition;
	}

	imageStore(particles, 2 * index, vec4(outposition, 1));
	imageStore(particles, 2 * index + 1, vec4(outvelocity, 0));
}
`
