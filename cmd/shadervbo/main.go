// Command shadervbo draws two colored triangles from an interleaved
// vertex buffer.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

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
	cfg, err := config.Load(config.Default("shadervbo"), os.Args[1:])
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

	triangles := mesh.Upload(mesh.Triangles(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 3},
	)
	defer triangles.Delete()

	for win.Running() {
		win.NextFrame()

		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		triangles.Draw()

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
layout(location = 0) in vec4 vposition;
layout(location = 1) in vec4 vcolor;

out vec4 fcolor;

void main() {
	fcolor = vcolor;
	gl_Position = vposition;
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
