// Command instancingubo draws eight cubes with a single instanced draw call,
// reading the model matrices from a uniform buffer.
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

const (
	mat4Size        = 16 * 4
	matricesBinding = 0
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load(config.Default("instancingubo"), os.Args[1:])
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

	if err := program.UniformBlock("Matrices", matricesBinding); err != nil {
		return err
	}

	// layout: ViewProjection followed by the eight model matrices
	var models [8]mgl32.Mat4
	for i, offset := range mesh.Corners(2) {
		models[i] = mgl32.Translate3D(offset[0], offset[1], offset[2])
	}

	ubo := glutil.NewBuffer(gl.UNIFORM_BUFFER, (1+len(models))*mat4Size, nil, gl.STREAM_DRAW)
	defer glutil.DeleteBuffers(ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, mat4Size, len(models)*mat4Size, gl.Ptr(models[:]))

	cube := mesh.Upload(mesh.Cube(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 3},
	)
	defer cube.Delete()

	gl.Enable(gl.DEPTH_TEST)

	for win.Running() {
		win.NextFrame()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		t := float32(win.Frame.Time)
		projection := camera.Perspective(90, win.Frame.Aspect(), 0.1, 100)
		viewProjection := projection.Mul4(camera.Spin(5, 90*t, mgl32.Vec3{1, 1, 1}))

		gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
		gl.BufferSubData(gl.UNIFORM_BUFFER, 0, mat4Size, gl.Ptr(&viewProjection[0]))
		gl.BindBufferRange(gl.UNIFORM_BUFFER, matricesBinding, ubo, 0, (1+len(models))*mat4Size)

		program.Use()
		cube.DrawInstanced(int32(len(models)))

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
layout(std140) uniform Matrices {
	mat4 ViewProjection;
	mat4 Model[8];
};

layout(location = 0) in vec4 vposition;
layout(location = 1) in vec4 vcolor;

out vec4 fcolor;

void main() {
	fcolor = vcolor;
	gl_Position = ViewProjection * Model[gl_InstanceID] * vposition;
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
