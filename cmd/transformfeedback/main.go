// Command transformfeedback runs the falling particle simulation in a
// vertex shader, capturing the results with transform feedback into a
// second buffer that becomes the input of the next frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/billboard"
	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/particles"
	"github.com/adinfit/glexamples/internal/window"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	count := 128 * 1024
	cfg, err := config.Load(config.Default("transform feedback"), os.Args[1:], func(fs *flag.FlagSet) {
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

	draw, err := billboard.Program(billboard.Particles())
	if err != nil {
		return err
	}
	defer draw.Delete()

	transform, err := glutil.NewFeedbackProgram(
		[]string{"outposition", "outvelocity"},
		glutil.Vertex(transformShader+particles.HashGLSL("gl_VertexID")+transformMain),
	)
	if err != nil {
		return err
	}
	defer transform.Delete()

	sys := particles.NewSystem(count, int32(cfg.Seed))
	data := sys.Interleaved(false)

	var vaos, vbos [2]uint32
	for i := range vaos {
		vaos[i] = glutil.NewVertexArray()
		vbos[i] = glutil.NewBuffer(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
		glutil.Attrib(0, 3, 6*4, 0)
		glutil.Attrib(1, 3, 6*4, 3*4)
	}
	defer glutil.DeleteVertexArrays(vaos[:]...)
	defer glutil.DeleteBuffers(vbos[:]...)

	physics := sys.Physics
	transform.Use()
	for i, sphere := range physics.Spheres {
		transform.SetVec3(fmt.Sprintf("center[%d]", i), mgl32.Vec3{sphere.Center.X, sphere.Center.Y, sphere.Center.Z})
		transform.SetFloat(fmt.Sprintf("radius[%d]", i), sphere.Radius)
	}
	transform.SetVec3("g", mgl32.Vec3{physics.Gravity.X, physics.Gravity.Y, physics.Gravity.Z})
	transform.SetFloat("dt", physics.Timestep)
	transform.SetFloat("bounce", physics.Bounce)
	transform.SetFloat("floorY", physics.Floor)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	rng := rand.New(rand.NewSource(cfg.Seed))
	current := 0
	for win.Running() {
		win.NextFrame()
		next := 1 - current

		transform.Use()
		transform.SetInt("seed", rng.Int31())

		gl.Enable(gl.RASTERIZER_DISCARD)
		gl.BindVertexArray(vaos[current])
		gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, vbos[next])
		gl.BeginTransformFeedback(gl.POINTS)
		gl.DrawArrays(gl.POINTS, 0, int32(count))
		gl.EndTransformFeedback()
		gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, 0)
		gl.Disable(gl.RASTERIZER_DISCARD)

		gl.Clear(gl.COLOR_BUFFER_BIT)

		t := float32(win.Frame.Time)
		draw.Use()
		draw.SetMat4("View", camera.Orbit(30, 30, -22.5*t))
		draw.SetMat4("Projection", camera.Perspective(90, win.Frame.Aspect(), 0.1, 100))

		gl.BindVertexArray(vaos[next])
		gl.DrawArrays(gl.POINTS, 0, int32(count))

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
		current = next
	}

	return nil
}

var transformShader = `
#version 410 core
uniform vec3 center[3];
uniform float radius[3];
uniform vec3 g;
uniform float dt;
uniform float bounce;
uniform float floorY;
uniform int seed;

layout(location = 0) in vec3 inposition;
layout(location = 1) in vec3 invelocity;

out vec3 outposition;
out vec3 outvelocity;
`

var transformMain = `
void main() {
	outvelocity = invelocity;
	for (int j = 0; j < 3; ++j) {
		vec3 diff = inposition - center[j];
		float dist = length(diff);
		float vdot = dot(diff, invelocity);
		if (dist < radius[j] && vdot < 0.0)
			outvelocity -= bounce * diff * vdot / (dist * dist);
	}
	outvelocity += dt * g;
	outposition = inposition + dt * outvelocity;
	if (outposition.y < floorY) {
		outvelocity = vec3(0, 0, 0);
		outposition = 0.5 - vec3(hash(3 * gl_VertexID + 0), hash(3 * gl_VertexID + 1), hash(3 * gl_VertexID + 2));
		outposition = vec3(0, 20, 0) + 5.0 * outposition;
	}
}
`
