// Command instancing draws eight cubes with a single instanced draw call,
// reading a per instance offset through an attribute divisor.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/mesh"
	"github.com/adinfit/glexamples/internal/window"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load(config.Default("instancing"), os.Args[1:])
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

	program, err := glutil.NewProgram(
		glutil.Vertex(vertexShader),
		glutil.Fragment(fragmentShader),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	cube := mesh.Upload(mesh.Cube(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 3},
	)
	defer cube.Delete()

	// the cube's vertex array is still bound
	offsets := mesh.Corners(2)
	instanceVBO := glutil.NewBuffer(gl.ARRAY_BUFFER, 3*4*len(offsets), gl.Ptr(offsets[:]), gl.STATIC_DRAW)
	defer glutil.DeleteBuffers(instanceVBO)
	glutil.AttribInstanced(2, 3, 3*4, 0)

	gl.Enable(gl.DEPTH_TEST)

	for win.Running() {
		win.NextFrame()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		t := float32(win.Frame.Time)
		projection := camera.Perspective(90, win.Frame.Aspect(), 0.1, 100)
		view := camera.Spin(5, 90*t, mgl32.Vec3{1, 1, 1})

		program.Use()
		program.SetMat4("ViewProjection", projection.Mul4(view))
		cube.DrawInstanced(int32(len(offsets)))

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}

var vertexShader = `
#version 410 core
uniform mat4 ViewProjection;

layout(location = 0) in vec4 vposition;
layout(location = 1) in vec4 vcolor;
layout(location = 2) in vec3 voffset;

out vec4 fcolor;

void main() {
	fcolor = vcolor;
	gl_Position = ViewProjection * (vposition + vec4(voffset, 0));
}
`

var fragmentShader = `
#version 410 core
in vec4 fcolor;

layout(location = 0) out vec4 FragColor;

void main() {
	FragColor = fcolor;
}
`
